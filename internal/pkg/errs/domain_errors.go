package errs

// Remote platform failures shared by the Discord adapters and the usecase layer.
// Adapters mark their low-level errors with one of these; callers match with errors.Is.
var (
	// retryable up to a bound
	ErrTransientUnavailable = New("remote platform temporarily unavailable")
	// non-retryable for the current cycle
	ErrPermissionDenied = New("remote platform permission denied")
	// any other rejection (unknown guild, bad request)
	ErrRemoteRejected = New("remote platform rejected request")
)

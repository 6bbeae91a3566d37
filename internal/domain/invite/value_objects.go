package invite

import (
	"regexp"
	"strings"

	"invite-role-bridge/internal/pkg/discordid"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// invite codes are short url-safe tokens (vanity codes included)
var codeRegex = regexp.MustCompile(`^[A-Za-z0-9\-]{2,32}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if !codeRegex.MatchString(s) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func (c Code) Value() string {
	return c.value
}

// RoleID is the Discord role granted once the invite is confirmed.
type RoleID struct {
	value string
}

func NewRoleID(s string) (RoleID, error) {
	s = strings.TrimSpace(s)
	if err := discordid.Validate(s); err != nil {
		return RoleID{}, ErrInvalidRoleID
	}
	return RoleID{value: s}, nil
}

func (r RoleID) Value() string {
	return r.value
}

// VerificationPrompt points at the "accept rules" message posted for the member.
type VerificationPrompt struct {
	ChannelID string
	MessageID string
}

func (p VerificationPrompt) IsZero() bool {
	return p.ChannelID == "" && p.MessageID == ""
}

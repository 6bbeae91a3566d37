package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"invite-role-bridge/internal/domain/attribution"
	"invite-role-bridge/internal/domain/invite"
	"invite-role-bridge/internal/domain/snapshot"
	"invite-role-bridge/internal/infra/snapshotstore"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
)

const panicStackLines = 12

// JoinEvent is a membership-join as delivered by the gateway.
type JoinEvent struct {
	GuildID  string
	MemberID string
	JoinedAt time.Time
}

type State string

const (
	StateMatched   State = "matched"
	StateUnmatched State = "unmatched"
	// fetch or emit failed; the join is reported as unmatched
	StateFailed State = "failed"
)

// Outcome is the terminal record of one reconciliation.
type Outcome struct {
	EventID  uuid.UUID
	GuildID  string
	MemberID string
	State    State
	Result   attribution.Result
	// patches replayed on top of the fetched snapshot
	Replayed int
	// failure cause for StateFailed
	Err error
	// ledger refusal for a matched code; the attribution itself stands
	GateErr error
}

// JoinReconciler attributes joins to invite codes and hands matches to the gate.
// At most MaxConcurrent reconciliations fetch at once; others queue in FIFO order.
type JoinReconciler struct {
	store        SnapshotStore
	lister       InviteLister
	gate         EntitlementGate
	sem          *semaphore.Weighted
	fetchTimeout time.Duration
	logger       *slog.Logger
	tracer       trace.Tracer

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewJoinReconciler(store SnapshotStore, lister InviteLister, gate EntitlementGate, cfg config.Config, logger *slog.Logger) *JoinReconciler {
	permits := cfg.Reconciler.MaxConcurrent
	if permits < 1 {
		permits = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &JoinReconciler{
		store:        store,
		lister:       lister,
		gate:         gate,
		sem:          semaphore.NewWeighted(permits),
		fetchTimeout: cfg.Reconciler.FetchTimeout,
		logger:       logger,
		tracer:       otel.Tracer("invite-role-bridge/reconciler"),
		baseCtx:      ctx,
		cancel:       cancel,
	}
}

// Submit reconciles ev in the background. Each join is an independent task.
func (r *JoinReconciler) Submit(ev JoinEvent) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.Reconcile(r.baseCtx, ev)
	}()
}

// Wait blocks until every submitted reconciliation reached a terminal state.
func (r *JoinReconciler) Wait() {
	r.wg.Wait()
}

// Shutdown drains in-flight reconciliations. When ctx expires first the
// remaining ones are cancelled and finish as failed.
func (r *JoinReconciler) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.cancel()
		return nil
	case <-ctx.Done():
		r.cancel()
		<-done
		return ctx.Err()
	}
}

// Reconcile runs one join through admit, snapshot, fetch, resolve, commit and emit.
// It always returns a terminal outcome.
func (r *JoinReconciler) Reconcile(ctx context.Context, ev JoinEvent) Outcome {
	out := Outcome{
		EventID:  uuid.New(),
		GuildID:  ev.GuildID,
		MemberID: ev.MemberID,
	}

	ctx, span := r.tracer.Start(ctx, "JoinReconciler.Reconcile", trace.WithAttributes(
		attribute.String("reconcile.event_id", out.EventID.String()),
		attribute.String("discord.guild_id", ev.GuildID),
		attribute.String("discord.member_id", ev.MemberID),
	))
	defer span.End()

	logger := r.logger.With(
		"event_id", out.EventID.String(),
		"guild_id", ev.GuildID,
		"member_id", ev.MemberID,
	)

	// waiting queues the event, it never drops it
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return r.fail(logger, span, out, errs.Wrap(err, "waiting for reconciliation permit"))
	}
	defer r.sem.Release(1)

	old, ticket := r.store.Begin(ev.GuildID)

	fresh, err := r.fetch(ctx, ev.GuildID)
	if err != nil {
		r.store.Abort(ticket)
		return r.fail(logger, span, out, err)
	}

	out = r.resolveAndEmit(ctx, logger, out, old, fresh, ticket)
	r.record(logger, span, out)
	return out
}

// fetch lists the guild's invites. A panicking lister is reported as a failed fetch.
func (r *JoinReconciler) fetch(ctx context.Context, guildID string) (fresh snapshot.Snapshot, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errs.Newf("listing invites panicked: %v", p)
			r.logger.Error("recovered from panic while listing invites",
				"guild_id", guildID,
				"panic", p,
				"stack", errs.ExtractStackLines(err, panicStackLines))
		}
	}()

	if r.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.fetchTimeout)
		defer cancel()
	}
	return r.lister.ListInvites(ctx, guildID)
}

func (r *JoinReconciler) resolveAndEmit(ctx context.Context, logger *slog.Logger, out Outcome, old, fresh snapshot.Snapshot, ticket snapshotstore.Ticket) (res Outcome) {
	committed := false
	defer func() {
		if p := recover(); p != nil {
			if !committed {
				r.store.Abort(ticket)
			}
			err := errs.Newf("reconciliation panicked: %v", p)
			logger.Error("recovered from panic during reconciliation",
				"panic", p,
				"stack", errs.ExtractStackLines(err, panicStackLines))
			res = out
			res.State = StateFailed
			res.Result = attribution.Unmatched(nil)
			res.Err = err
		}
	}()

	out.Result = attribution.Resolve(old, fresh)

	// the fetched list is installed whether or not it explained the join
	out.Replayed = r.store.Commit(ticket, fresh)
	committed = true

	if !out.Result.IsMatched() {
		out.State = StateUnmatched
		return out
	}

	out.State = StateMatched
	if err := r.gate.Transition(ctx, out.Result.Code, invite.EventJoined, out.GuildID, out.MemberID); err != nil {
		if errs.Is(err, ErrNoSuchPendingInvite) {
			out.GateErr = err
			return out
		}
		// the match is withdrawn so the join surfaces for manual support
		logger.Warn("gate failed for attributed join",
			"invite_code", out.Result.Code,
			"error", err.Error())
		out.State = StateFailed
		out.Result = attribution.Unmatched(nil)
		out.Err = err
	}
	return out
}

func (r *JoinReconciler) fail(logger *slog.Logger, span trace.Span, out Outcome, err error) Outcome {
	out.State = StateFailed
	out.Result = attribution.Unmatched(nil)
	out.Err = err
	r.record(logger, span, out)
	return out
}

func (r *JoinReconciler) record(logger *slog.Logger, span trace.Span, out Outcome) {
	span.SetAttributes(
		attribute.String("reconcile.state", string(out.State)),
		attribute.String("reconcile.rule", string(out.Result.Rule)),
	)

	attrs := []any{
		"state", string(out.State),
		"rule", string(out.Result.Rule),
	}
	if out.Result.IsMatched() {
		span.SetAttributes(attribute.String("invite.code", out.Result.Code))
		attrs = append(attrs,
			"invite_code", out.Result.Code,
			"confidence", string(out.Result.Confidence))
	}
	if len(out.Result.Candidates) > 1 {
		attrs = append(attrs, "candidates", out.Result.Candidates)
	}
	if out.Replayed > 0 {
		attrs = append(attrs, "replayed_patches", out.Replayed)
	}

	switch {
	case out.State == StateFailed:
		span.RecordError(out.Err)
		span.SetStatus(codes.Error, out.Err.Error())
		logger.Warn("join could not be attributed, manual support required",
			append(attrs, "error", failureReason(out.Err))...)
	case out.State == StateUnmatched:
		logger.Info("join matched no tracked invite, manual support required", attrs...)
	case out.GateErr != nil:
		logger.Info("join attributed to an invite the ledger does not hold as pending",
			append(attrs, "error", out.GateErr.Error())...)
	case out.Result.IsAmbiguous():
		logger.Warn("join attributed with low confidence", attrs...)
	default:
		logger.Info("join attributed", attrs...)
	}
}

func failureReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrPermissionDenied):
		return "permission denied listing invites: " + err.Error()
	case errs.Is(err, errs.ErrTransientUnavailable):
		return "invite list unavailable: " + err.Error()
	default:
		return err.Error()
	}
}

// Prime installs the guild's initial snapshot. Patches delivered while the
// list is in flight are replayed on top of it.
func (r *JoinReconciler) Prime(ctx context.Context, guildID string) error {
	_, ticket := r.store.Begin(guildID)
	fresh, err := r.fetch(ctx, guildID)
	if err != nil {
		r.store.Abort(ticket)
		if errs.Is(err, errs.ErrPermissionDenied) {
			r.logger.Error("missing permission to list invites, joins will stay unmatched",
				"guild_id", guildID,
				"error", err.Error())
		} else {
			r.logger.Warn("failed to prime invite snapshot", "guild_id", guildID, "error", err.Error())
		}
		return err
	}

	replayed := r.store.Commit(ticket, fresh)
	r.logger.Info("invite snapshot primed",
		"guild_id", guildID,
		"invites", fresh.Len(),
		"replayed_patches", replayed)
	return nil
}

func (r *JoinReconciler) InviteCreated(guildID, code string, uses int) {
	r.store.PatchCreate(guildID, code, uses)
	r.logger.Debug("invite created", "guild_id", guildID, "invite_code", code, "uses", uses)
}

func (r *JoinReconciler) InviteDeleted(guildID, code string) {
	r.store.PatchDelete(guildID, code)
	r.logger.Debug("invite deleted", "guild_id", guildID, "invite_code", code)
}

//go:build unit

package commands_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"invite-role-bridge/internal/domain/attribution"
	"invite-role-bridge/internal/domain/invite"
	"invite-role-bridge/internal/domain/snapshot"
	"invite-role-bridge/internal/infra/snapshotstore"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/usecase/commands"
	commandsmock "invite-role-bridge/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type listerFunc func(ctx context.Context, guildID string) (snapshot.Snapshot, error)

func (f listerFunc) ListInvites(ctx context.Context, guildID string) (snapshot.Snapshot, error) {
	return f(ctx, guildID)
}

func staticLister(entries map[string]int) listerFunc {
	return func(context.Context, string) (snapshot.Snapshot, error) {
		return snapshot.MustNew(entries), nil
	}
}

func reconcilerConfig(permits int64, fetchTimeout time.Duration) config.Config {
	cfg := config.NewTestConfig()
	cfg.Reconciler.MaxConcurrent = permits
	cfg.Reconciler.FetchTimeout = fetchTimeout
	return cfg
}

func joinEvent(member string) commands.JoinEvent {
	return commands.JoinEvent{GuildID: guildID, MemberID: member, JoinedAt: gateNow}
}

func TestJoinReconciler_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("increment is matched and handed to the gate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		gate.EXPECT().Transition(gomock.Any(), "abc", invite.EventJoined, guildID, memberID).Return(nil)

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"abc": 1, "def": 0}))
		r := commands.NewJoinReconciler(store, staticLister(map[string]int{"abc": 2, "def": 0}), gate, reconcilerConfig(3, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))

		assert.Equal(t, commands.StateMatched, out.State)
		want := attribution.Matched("abc", attribution.RuleIncrement, attribution.ConfidenceHigh, []string{"abc"})
		if diff := cmp.Diff(want, out.Result); diff != "" {
			t.Errorf("result mismatch (-want +got):\n%s", diff)
		}
		assert.NoError(t, out.Err)
		assert.NoError(t, out.GateErr)
		assert.Equal(t, guildID, out.GuildID)
		assert.Equal(t, memberID, out.MemberID)
		assert.Equal(t, map[string]int{"abc": 2, "def": 0}, store.Get(guildID).Map())
	})

	t.Run("disappearance is matched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		gate.EXPECT().Transition(gomock.Any(), "once", invite.EventJoined, guildID, memberID).Return(nil)

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"abc": 1, "once": 0}))
		r := commands.NewJoinReconciler(store, staticLister(map[string]int{"abc": 1}), gate, reconcilerConfig(3, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))

		assert.Equal(t, commands.StateMatched, out.State)
		assert.Equal(t, attribution.RuleDisappearance, out.Result.Rule)
		assert.False(t, store.Get(guildID).Has("once"))
	})

	t.Run("no evidence is unmatched and still installs the fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"abc": 1}))
		r := commands.NewJoinReconciler(store, staticLister(map[string]int{"abc": 1, "new": 0}), gate, reconcilerConfig(3, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))

		assert.Equal(t, commands.StateUnmatched, out.State)
		assert.False(t, out.Result.IsMatched())
		assert.True(t, store.Get(guildID).Has("new"))
	})

	t.Run("several vanished codes stay unmatched with candidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"one": 0, "two": 0}))
		r := commands.NewJoinReconciler(store, staticLister(nil), gate, reconcilerConfig(3, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))

		assert.Equal(t, commands.StateUnmatched, out.State)
		assert.Equal(t, []string{"one", "two"}, out.Result.Candidates)
	})

	t.Run("ledger refusal keeps the attribution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		gate.EXPECT().Transition(gomock.Any(), "vanity", invite.EventJoined, guildID, memberID).
			Return(commands.ErrNoSuchPendingInvite)

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"vanity": 10}))
		r := commands.NewJoinReconciler(store, staticLister(map[string]int{"vanity": 11}), gate, reconcilerConfig(3, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))

		assert.Equal(t, commands.StateMatched, out.State)
		assert.True(t, errs.Is(out.GateErr, commands.ErrNoSuchPendingInvite))
		assert.NoError(t, out.Err)
	})

	t.Run("gate failure fails the join", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		gate.EXPECT().Transition(gomock.Any(), "abc", invite.EventJoined, guildID, memberID).Return(errDB)

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"abc": 0}))
		r := commands.NewJoinReconciler(store, staticLister(map[string]int{"abc": 1}), gate, reconcilerConfig(3, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))

		assert.Equal(t, commands.StateFailed, out.State)
		assert.True(t, errs.Is(out.Err, errDB))
		assert.False(t, out.Result.IsMatched())
		assert.Empty(t, out.Result.Code)
		assert.Equal(t, map[string]int{"abc": 1}, store.Get(guildID).Map())
	})

	t.Run("fetch failure leaves the snapshot untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			return snapshot.Snapshot{}, errs.Mark(errs.New("missing access"), errs.ErrPermissionDenied)
		})

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"abc": 1}))
		r := commands.NewJoinReconciler(store, lister, gate, reconcilerConfig(3, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))

		assert.Equal(t, commands.StateFailed, out.State)
		assert.False(t, out.Result.IsMatched())
		assert.True(t, errs.Is(out.Err, errs.ErrPermissionDenied))
		assert.Equal(t, map[string]int{"abc": 1}, store.Get(guildID).Map())
	})

	t.Run("fetch is bounded by the timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		lister := listerFunc(func(ctx context.Context, _ string) (snapshot.Snapshot, error) {
			<-ctx.Done()
			return snapshot.Snapshot{}, ctx.Err()
		})

		r := commands.NewJoinReconciler(snapshotstore.New(), lister, gate, reconcilerConfig(3, 20*time.Millisecond), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))

		assert.Equal(t, commands.StateFailed, out.State)
		assert.True(t, errs.Is(out.Err, context.DeadlineExceeded))
	})

	t.Run("panic while emitting is contained", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		gate.EXPECT().Transition(gomock.Any(), "abc", invite.EventJoined, guildID, memberID).
			DoAndReturn(func(context.Context, string, invite.Event, string, string) error {
				panic("boom")
			})
		gate.EXPECT().Transition(gomock.Any(), "abc", invite.EventJoined, guildID, "1400000000000000002").Return(nil)

		store := snapshotstore.New()
		uses := 0
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			uses++
			return snapshot.MustNew(map[string]int{"abc": uses}), nil
		})
		// one permit: a leaked permit would block the second join forever
		r := commands.NewJoinReconciler(store, lister, gate, reconcilerConfig(1, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))
		assert.Equal(t, commands.StateFailed, out.State)
		require.Error(t, out.Err)
		assert.Contains(t, out.Err.Error(), "boom")

		next, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		out = r.Reconcile(next, joinEvent("1400000000000000002"))
		assert.Equal(t, commands.StateMatched, out.State)
	})

	t.Run("panic while fetching is contained", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		gate.EXPECT().Transition(gomock.Any(), "abc", invite.EventJoined, guildID, "1400000000000000002").Return(nil)

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"abc": 1}))
		calls := 0
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			calls++
			if calls == 1 {
				panic("adapter nil deref")
			}
			return snapshot.MustNew(map[string]int{"abc": 2}), nil
		})
		// one permit: a leaked permit would block the second join forever
		r := commands.NewJoinReconciler(store, lister, gate, reconcilerConfig(1, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))
		assert.Equal(t, commands.StateFailed, out.State)
		assert.False(t, out.Result.IsMatched())
		require.Error(t, out.Err)
		assert.Contains(t, out.Err.Error(), "adapter nil deref")
		assert.Equal(t, map[string]int{"abc": 1}, store.Get(guildID).Map())

		// the aborted ticket no longer logs patches into a later commit
		next, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		out = r.Reconcile(next, joinEvent("1400000000000000002"))
		assert.Equal(t, commands.StateMatched, out.State)
		assert.Equal(t, "abc", out.Result.Code)
		assert.Zero(t, out.Replayed)
	})

	t.Run("invite created during the fetch is replayed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"abc": 1}))
		var r *commands.JoinReconciler
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			r.InviteCreated(guildID, "late", 0)
			return snapshot.MustNew(map[string]int{"abc": 1}), nil
		})
		r = commands.NewJoinReconciler(store, lister, gate, reconcilerConfig(3, time.Second), discardLogger())

		out := r.Reconcile(ctx, joinEvent(memberID))

		assert.Equal(t, commands.StateUnmatched, out.State)
		assert.Equal(t, 1, out.Replayed)
		assert.True(t, store.Get(guildID).Has("late"))
	})

	t.Run("cancelled context while queued fails without fetching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		release := make(chan struct{})
		var calls atomic.Int32
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			calls.Add(1)
			<-release
			return snapshot.Empty(), nil
		})
		r := commands.NewJoinReconciler(snapshotstore.New(), lister, gate, reconcilerConfig(1, 0), discardLogger())

		r.Submit(joinEvent(memberID))
		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

		queued, cancel := context.WithCancel(ctx)
		cancel()
		out := r.Reconcile(queued, joinEvent("1400000000000000002"))

		close(release)
		r.Wait()
		assert.Equal(t, commands.StateFailed, out.State)
		assert.True(t, errs.Is(out.Err, context.Canceled))
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestJoinReconciler_Concurrency(t *testing.T) {
	t.Run("never more fetches in flight than permits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)

		var inFlight, maxSeen, calls atomic.Int32
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			calls.Add(1)
			n := inFlight.Add(1)
			for {
				seen := maxSeen.Load()
				if n <= seen || maxSeen.CompareAndSwap(seen, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			return snapshot.Empty(), nil
		})
		r := commands.NewJoinReconciler(snapshotstore.New(), lister, gate, reconcilerConfig(2, time.Second), discardLogger())

		for range 5 {
			r.Submit(joinEvent(memberID))
		}
		r.Wait()

		assert.Equal(t, int32(5), calls.Load(), "every join must be processed")
		assert.LessOrEqual(t, maxSeen.Load(), int32(2))
		assert.Equal(t, int32(2), maxSeen.Load(), "both permits should have been used")
	})

	t.Run("permit is held until the gate returns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		release := make(chan struct{})
		gate.EXPECT().Transition(gomock.Any(), gomock.Any(), invite.EventJoined, guildID, gomock.Any()).
			DoAndReturn(func(context.Context, string, invite.Event, string, string) error {
				<-release
				return nil
			}).AnyTimes()

		var calls atomic.Int32
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			n := calls.Add(1)
			return snapshot.MustNew(map[string]int{"abc": int(n)}), nil
		})
		r := commands.NewJoinReconciler(snapshotstore.New(), lister, gate, reconcilerConfig(1, time.Second), discardLogger())

		r.Submit(joinEvent(memberID))
		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
		r.Submit(joinEvent("1400000000000000002"))

		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, int32(1), calls.Load(), "second fetch started before the first join was emitted")

		close(release)
		r.Wait()
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("concurrent joins on distinct codes are each attributed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)

		var mu sync.Mutex
		attributed := map[string]int{}
		gate.EXPECT().Transition(gomock.Any(), gomock.Any(), invite.EventJoined, guildID, gomock.Any()).
			DoAndReturn(func(_ context.Context, code string, _ invite.Event, _, _ string) error {
				mu.Lock()
				attributed[code]++
				mu.Unlock()
				return nil
			}).AnyTimes()

		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"aa": 0, "bb": 0, "cc": 0}))

		// the platform counts move one join at a time, each fetch seeing one more use
		var fetches atomic.Int32
		order := []string{"aa", "bb", "cc"}
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			n := int(fetches.Add(1))
			entries := map[string]int{"aa": 0, "bb": 0, "cc": 0}
			for _, code := range order[:n] {
				entries[code] = 1
			}
			return snapshot.MustNew(entries), nil
		})
		r := commands.NewJoinReconciler(store, lister, gate, reconcilerConfig(1, time.Second), discardLogger())

		for range order {
			r.Submit(joinEvent(memberID))
		}
		r.Wait()

		assert.Equal(t, map[string]int{"aa": 1, "bb": 1, "cc": 1}, attributed)
	})
}

func TestJoinReconciler_Shutdown(t *testing.T) {
	t.Run("drains in-flight joins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			time.Sleep(10 * time.Millisecond)
			return snapshot.Empty(), nil
		})
		r := commands.NewJoinReconciler(snapshotstore.New(), lister, gate, reconcilerConfig(2, time.Second), discardLogger())

		r.Submit(joinEvent(memberID))
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		assert.NoError(t, r.Shutdown(ctx))
	})

	t.Run("cancels joins still running at the deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := commandsmock.NewMockEntitlementGate(ctrl)
		var cancelled atomic.Bool
		lister := listerFunc(func(ctx context.Context, _ string) (snapshot.Snapshot, error) {
			<-ctx.Done()
			cancelled.Store(true)
			return snapshot.Snapshot{}, ctx.Err()
		})
		r := commands.NewJoinReconciler(snapshotstore.New(), lister, gate, reconcilerConfig(2, 0), discardLogger())

		r.Submit(joinEvent(memberID))
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := r.Shutdown(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, cancelled.Load())
	})
}

func TestJoinReconciler_SnapshotMaintenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := commandsmock.NewMockEntitlementGate(ctrl)

	t.Run("prime replaces the guild snapshot", func(t *testing.T) {
		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"stale": 4}))
		r := commands.NewJoinReconciler(store, staticLister(map[string]int{"abc": 1}), gate, reconcilerConfig(1, time.Second), discardLogger())

		require.NoError(t, r.Prime(context.Background(), guildID))
		assert.Equal(t, map[string]int{"abc": 1}, store.Get(guildID).Map())
	})

	t.Run("patch landing during prime survives", func(t *testing.T) {
		store := snapshotstore.New()
		var r *commands.JoinReconciler
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			r.InviteCreated(guildID, "issued", 0)
			return snapshot.MustNew(map[string]int{"abc": 1}), nil
		})
		r = commands.NewJoinReconciler(store, lister, gate, reconcilerConfig(1, time.Second), discardLogger())

		require.NoError(t, r.Prime(context.Background(), guildID))
		assert.Equal(t, map[string]int{"abc": 1, "issued": 0}, store.Get(guildID).Map())
	})

	t.Run("prime failure keeps what was cached", func(t *testing.T) {
		store := snapshotstore.New()
		store.Replace(guildID, snapshot.MustNew(map[string]int{"abc": 1}))
		lister := listerFunc(func(context.Context, string) (snapshot.Snapshot, error) {
			return snapshot.Snapshot{}, errs.Mark(errs.New("forbidden"), errs.ErrPermissionDenied)
		})
		r := commands.NewJoinReconciler(store, lister, gate, reconcilerConfig(1, time.Second), discardLogger())

		err := r.Prime(context.Background(), guildID)

		assert.True(t, errs.Is(err, errs.ErrPermissionDenied))
		assert.Equal(t, map[string]int{"abc": 1}, store.Get(guildID).Map())
	})

	t.Run("gateway notifications patch the snapshot", func(t *testing.T) {
		store := snapshotstore.New()
		r := commands.NewJoinReconciler(store, staticLister(nil), gate, reconcilerConfig(1, time.Second), discardLogger())

		r.InviteCreated(guildID, "abc", 0)
		r.InviteCreated(guildID, "def", 2)
		r.InviteDeleted(guildID, "abc")

		assert.Equal(t, map[string]int{"def": 2}, store.Get(guildID).Map())
	})
}

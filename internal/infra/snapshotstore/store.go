// Package snapshotstore keeps the per-guild invite snapshots in memory.
//
// The store is a cache of the remote invite list, rebuilt from the platform
// on restart. All operations take one mutex and never do I/O while holding it.
//
// A reconciliation brackets its remote fetch with Begin and Commit. Patches
// that land between the two are replayed on top of the fetched snapshot, so a
// create/delete notification is not lost to a fetch that started before it:
//   - a later delete always wins (a deleted invite never comes back);
//   - a later create wins only when the fetch did not see the code, since the
//     fetch reports counts at least as fresh as the notification.
//
// Between two overlapping Commits the one completing last wins.
package snapshotstore

import (
	"maps"
	"slices"
	"sync"

	"invite-role-bridge/internal/domain/snapshot"
)

type patchKind int

const (
	patchCreate patchKind = iota
	patchDelete
)

type patch struct {
	seq  uint64
	kind patchKind
	code string
	uses int
}

type guildState struct {
	snap snapshot.Snapshot
	seq  uint64
	// only retained while at least one ticket is open
	log []patch
	// ticket id -> seq observed at Begin
	tickets map[uint64]uint64
}

// Ticket marks the start of one remote fetch for a guild.
type Ticket struct {
	guildID string
	id      uint64
}

func (t Ticket) GuildID() string { return t.guildID }

type Store struct {
	mu         sync.Mutex
	guilds     map[string]*guildState
	nextTicket uint64
}

func New() *Store {
	return &Store{
		guilds: make(map[string]*guildState),
	}
}

// Get returns the guild's snapshot, empty if the guild was never seen.
func (s *Store) Get(guildID string) snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.guilds[guildID]
	if !ok {
		return snapshot.Empty()
	}
	return st.snap
}

// Replace swaps the guild's snapshot wholesale.
func (s *Store) Replace(guildID string, snap snapshot.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state(guildID).snap = snap.Clone()
}

func (s *Store) PatchCreate(guildID, code string, uses int) {
	if code == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(guildID)
	st.seq++
	st.snap = st.snap.With(code, uses)
	if len(st.tickets) > 0 {
		st.log = append(st.log, patch{seq: st.seq, kind: patchCreate, code: code, uses: uses})
	}
}

func (s *Store) PatchDelete(guildID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(guildID)
	st.seq++
	st.snap = st.snap.Without(code)
	if len(st.tickets) > 0 {
		st.log = append(st.log, patch{seq: st.seq, kind: patchDelete, code: code})
	}
}

// Begin returns the current snapshot together with a ticket for the fetch about to start.
func (s *Store) Begin(guildID string) (snapshot.Snapshot, Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(guildID)
	s.nextTicket++
	id := s.nextTicket
	st.tickets[id] = st.seq
	return st.snap, Ticket{guildID: guildID, id: id}
}

// Commit installs fresh and replays the patches applied since the ticket's Begin.
// It returns how many patches were replayed. An unknown ticket degrades to Replace.
func (s *Store) Commit(t Ticket, fresh snapshot.Snapshot) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(t.guildID)
	startSeq, ok := st.tickets[t.id]
	if !ok {
		st.snap = fresh.Clone()
		return 0
	}

	merged := fresh
	replayed := 0
	for _, p := range st.log {
		if p.seq <= startSeq {
			continue
		}
		switch p.kind {
		case patchDelete:
			merged = merged.Without(p.code)
			replayed++
		case patchCreate:
			if !merged.Has(p.code) {
				merged = merged.With(p.code, p.uses)
				replayed++
			}
		}
	}
	st.snap = merged.Clone()

	delete(st.tickets, t.id)
	st.prune()
	return replayed
}

// Abort closes a ticket whose fetch failed; the snapshot is left untouched.
func (s *Store) Abort(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.guilds[t.guildID]
	if !ok {
		return
	}
	delete(st.tickets, t.id)
	st.prune()
}

// Guilds lists every guild the store has seen, sorted.
func (s *Store) Guilds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Sorted(maps.Keys(s.guilds))
}

// state must be called with s.mu held.
func (s *Store) state(guildID string) *guildState {
	st, ok := s.guilds[guildID]
	if !ok {
		st = &guildState{tickets: make(map[uint64]uint64)}
		s.guilds[guildID] = st
	}
	return st
}

func (st *guildState) prune() {
	if len(st.tickets) == 0 {
		st.log = nil
		return
	}
	oldest := uint64(0)
	first := true
	for _, seq := range st.tickets {
		if first || seq < oldest {
			oldest = seq
			first = false
		}
	}
	keep := st.log[:0]
	for _, p := range st.log {
		if p.seq > oldest {
			keep = append(keep, p)
		}
	}
	st.log = keep
}

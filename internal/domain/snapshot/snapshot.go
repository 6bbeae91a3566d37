package snapshot

import (
	"errors"
	"maps"
	"slices"
)

var (
	ErrNegativeUses = errors.New("invite use count cannot be negative")
	ErrEmptyCode    = errors.New("invite code is required")
)

// Snapshot is a point-in-time copy of a guild's invite codes and their use counts.
// A code missing from the snapshot counts as zero uses. The zero value is an empty snapshot.
type Snapshot struct {
	uses map[string]int
}

func Empty() Snapshot {
	return Snapshot{}
}

// New validates entries and copies them.
func New(entries map[string]int) (Snapshot, error) {
	uses := make(map[string]int, len(entries))
	for code, n := range entries {
		if code == "" {
			return Snapshot{}, ErrEmptyCode
		}
		if n < 0 {
			return Snapshot{}, ErrNegativeUses
		}
		uses[code] = n
	}
	return Snapshot{uses: uses}, nil
}

// MustNew is for fixtures and tests.
func MustNew(entries map[string]int) Snapshot {
	s, err := New(entries)
	if err != nil {
		panic(err)
	}
	return s
}

// Uses reports the count for code and whether the code is present at all.
func (s Snapshot) Uses(code string) (int, bool) {
	n, ok := s.uses[code]
	return n, ok
}

func (s Snapshot) Has(code string) bool {
	_, ok := s.uses[code]
	return ok
}

func (s Snapshot) Len() int {
	return len(s.uses)
}

// Codes returns the codes in lexicographic order.
func (s Snapshot) Codes() []string {
	return slices.Sorted(maps.Keys(s.uses))
}

func (s Snapshot) Clone() Snapshot {
	if s.uses == nil {
		return Snapshot{}
	}
	return Snapshot{uses: maps.Clone(s.uses)}
}

// With returns a copy holding code at uses. Negative counts are clamped to zero.
func (s Snapshot) With(code string, uses int) Snapshot {
	if uses < 0 {
		uses = 0
	}
	next := make(map[string]int, len(s.uses)+1)
	maps.Copy(next, s.uses)
	next[code] = uses
	return Snapshot{uses: next}
}

// Without returns a copy lacking code.
func (s Snapshot) Without(code string) Snapshot {
	if !s.Has(code) {
		return s.Clone()
	}
	next := maps.Clone(s.uses)
	delete(next, code)
	return Snapshot{uses: next}
}

func (s Snapshot) Equal(other Snapshot) bool {
	return maps.Equal(s.uses, other.uses)
}

// Map returns a copy suitable for serialisation.
func (s Snapshot) Map() map[string]int {
	out := make(map[string]int, len(s.uses))
	maps.Copy(out, s.uses)
	return out
}

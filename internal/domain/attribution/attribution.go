// Package attribution decides which invite code a join consumed by comparing
// the snapshot taken before the join with one fetched after it.
//
// The platform offers no "invite used" signal, so the decision is inferred:
// a code whose use count grew is the strongest evidence, and a code that
// vanished (a single-use invite auto-deleted on consumption) is the fallback.
package attribution

import (
	"invite-role-bridge/internal/domain/snapshot"
)

type Kind string

const (
	KindMatched   Kind = "matched"
	KindUnmatched Kind = "unmatched"
)

type Rule string

const (
	RuleNone          Rule = "none"
	RuleIncrement     Rule = "increment"
	RuleDisappearance Rule = "disappearance"
)

type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	// several codes advanced between the two snapshots and one was picked by code order
	ConfidenceLow Confidence = "low"
)

type Result struct {
	Kind       Kind
	Code       string
	Rule       Rule
	Confidence Confidence
	// every code that satisfied the deciding rule, in code order
	Candidates []string
}

func Matched(code string, rule Rule, confidence Confidence, candidates []string) Result {
	return Result{
		Kind:       KindMatched,
		Code:       code,
		Rule:       rule,
		Confidence: confidence,
		Candidates: candidates,
	}
}

// Unmatched carries the disappearance candidates when several codes vanished at once.
func Unmatched(candidates []string) Result {
	return Result{
		Kind:       KindUnmatched,
		Rule:       RuleNone,
		Candidates: candidates,
	}
}

func (r Result) IsMatched() bool {
	return r.Kind == KindMatched
}

func (r Result) IsAmbiguous() bool {
	return r.Kind == KindMatched && r.Confidence == ConfidenceLow
}

// Resolve applies, in order, the increment rule and the disappearance rule.
// It never fails: an empty old snapshot is an all-zero baseline.
func Resolve(old, fresh snapshot.Snapshot) Result {
	if increased := increments(old, fresh); len(increased) > 0 {
		confidence := ConfidenceHigh
		if len(increased) > 1 {
			confidence = ConfidenceLow
		}
		return Matched(increased[0], RuleIncrement, confidence, increased)
	}

	gone := disappearances(old, fresh)
	if len(gone) == 1 {
		return Matched(gone[0], RuleDisappearance, ConfidenceHigh, gone)
	}
	return Unmatched(gone)
}

func increments(old, fresh snapshot.Snapshot) []string {
	var out []string
	for _, code := range fresh.Codes() {
		now, _ := fresh.Uses(code)
		before, _ := old.Uses(code)
		if now > before {
			out = append(out, code)
		}
	}
	return out
}

func disappearances(old, fresh snapshot.Snapshot) []string {
	var out []string
	for _, code := range old.Codes() {
		if !fresh.Has(code) {
			out = append(out, code)
		}
	}
	return out
}

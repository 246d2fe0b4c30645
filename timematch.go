// Package timematch provides date and time comparison matchers for tests:
// shared calendar field checks, strict chronological ordering checks,
// and tolerance based proximity checks over calendar dates and timestamps.
//
// Matchers are pure functions that return a MatchResult, so they can be
// composed or inspected without a live test context.
// The Should/ShouldNot/Must/MustNot entry points feed a matcher outcome
// into the hosting test framework through the TB capability.
package timematch

// MatchResult is the outcome of applying a Matcher to a value.
// A fresh MatchResult is produced per match call, it holds no shared state.
type MatchResult struct {
	// Passed tells whether the matched value satisfied the matcher.
	Passed bool
	// Failure is the message to report when the match was expected to hold, but didn't.
	Failure string
	// Negation is the message to report when the match was expected to not hold, but did.
	Negation string
}

// Matcher checks a single date/time value against an expectation,
// and explains the outcome both for the positive and the negated use.
type Matcher[T any] func(got T) MatchResult

// TB is the capability timematch requires from the hosting test framework
// in order to report a failed assertion.
// *testing.T, *testing.B, testing.TB and *testcase.T all implement it.
type TB interface {
	Helper()
	Error(args ...any)
	Fatal(args ...any)
}

// Should asserts that got satisfies the matcher.
// On a failed match it reports through TB.Error,
// so a failing check doesn't abort the remaining checks of the test.
func Should[T any](tb TB, got T, match Matcher[T]) {
	tb.Helper()
	if r := match(got); !r.Passed {
		tb.Error(r.Failure)
	}
}

// ShouldNot asserts that got does not satisfy the matcher.
func ShouldNot[T any](tb TB, got T, match Matcher[T]) {
	tb.Helper()
	if r := match(got); r.Passed {
		tb.Error(r.Negation)
	}
}

// Must is like Should, but a failed match halts the test through TB.Fatal.
func Must[T any](tb TB, got T, match Matcher[T]) {
	tb.Helper()
	if r := match(got); !r.Passed {
		tb.Fatal(r.Failure)
	}
}

// MustNot is like ShouldNot, but a passing match halts the test through TB.Fatal.
func MustNot[T any](tb TB, got T, match Matcher[T]) {
	tb.Helper()
	if r := match(got); r.Passed {
		tb.Fatal(r.Negation)
	}
}

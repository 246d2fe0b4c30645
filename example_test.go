package timematch_test

import (
	"testing"
	"time"

	"go.llib.dev/timematch"
	"go.llib.dev/timematch/datekit"
)

func ExampleShould() {
	var tb testing.TB // provided by the test framework

	timematch.Should(tb, datekit.DateOf(1998, time.February, 9),
		timematch.BeBefore(datekit.DateOf(1998, time.February, 10)))
}

func ExampleShouldNot() {
	var tb testing.TB // provided by the test framework

	timematch.ShouldNot(tb, datekit.DateOf(1998, time.February, 9),
		timematch.HaveSameMonth(datekit.DateOf(1998, time.March, 10)))
}

func ExampleHaveSameYear() {
	var tb testing.TB // provided by the test framework

	timematch.Should(tb, datekit.DateOf(1998, time.February, 9),
		timematch.HaveSameYear(datekit.DateOf(1998, time.March, 10)))
}

func ExampleHaveSameYear_timestamp() {
	var tb testing.TB // provided by the test framework

	got := datekit.ZonedOf(1998, time.February, 9, 23, 30, 0, 0, time.UTC)
	timematch.Should(tb, got,
		timematch.HaveSameYear(datekit.OffsetOf(1998, time.June, 1, 12, 0, 0, 0, 2*time.Hour)))
}

func ExampleBeWithin() {
	var tb testing.TB // provided by the test framework

	timematch.Should(tb, datekit.DateOf(1998, time.February, 9),
		timematch.BeWithin(datekit.Days(3), datekit.DateOf(1998, time.February, 10)))
}

func ExampleBeWithinDuration() {
	var tb testing.TB // provided by the test framework

	anchor := datekit.LocalDateTimeOf(1998, time.February, 9, 23, 30, 0, 0)
	timematch.Should(tb, anchor.Add(time.Minute),
		timematch.BeWithinDuration(time.Hour, anchor))
}

func ExampleMatcher() {
	// a Matcher is a pure function, it can be evaluated without a test context
	match := timematch.BeAfter(datekit.DateOf(1998, time.February, 9))
	result := match(datekit.DateOf(1998, time.February, 10))
	_ = result.Passed
	_ = result.Failure
	_ = result.Negation
}

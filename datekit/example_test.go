package datekit_test

import (
	"fmt"
	"time"

	"go.llib.dev/timematch/datekit"
)

func ExampleDateOf() {
	d := datekit.DateOf(1998, time.February, 9)
	fmt.Println(d)
	// Output: 1998-02-09
}

func ExamplePeriod_Parse() {
	p, err := datekit.Period{}.Parse("P1Y2M3D")
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Years, p.Months, p.Days)
	// Output: 1 2 3
}

func ExampleOffsetOf() {
	ts := datekit.OffsetOf(1998, time.February, 9, 23, 30, 0, 0, 2*time.Hour)
	_, offset := ts.Zone()
	fmt.Println(offset)
	// Output: 7200
}

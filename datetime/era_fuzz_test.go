// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"
	"time"

	"cloudeng.io/datefuzz/datetime"
)

func FuzzInBetween(f *testing.F) {
	for _, tc := range [][4]int32{
		{0, 100, 10, 50},
		{1, 100, 10, 7},
		{100, 0, 10, 50},
		{-10, 10, 3, 0},
		{1, 2019, 400, 1000},
	} {
		f.Add(tc[0], tc[1], tc[2], tc[3])
	}
	f.Fuzz(func(t *testing.T, start, end, div, mid int32) {
		// Keep clear of overflow in the sums below.
		start, end, mid = start>>2, end>>2, mid>>2
		if div <= 0 {
			if div == -div {
				return
			}
			div = -div
		}
		got := datetime.InBetween(start, end, div)
		if want := -datetime.InBetween(end, start, div); got != want {
			t.Errorf("InBetween(%v, %v, %v): got %v, want %v", start, end, div, got, want)
		}
		if want := datetime.InBetween(start, mid, div) + datetime.InBetween(mid, end, div); got != want {
			t.Errorf("InBetween(%v, %v, %v) via %v: got %v, want %v", start, end, div, mid, got, want)
		}
		if got, want := datetime.InBetween(start, end, 1), end-start; got != want {
			t.Errorf("InBetween(%v, %v, 1): got %v, want %v", start, end, got, want)
		}
	})
}

func FuzzDaysFromEraStart(f *testing.F) {
	for _, tc := range [][3]int{
		{1, 1, 1},
		{2000, 1, 1},
		{2019, 1, 1},
		{2023, 7, 29},
		{-2979, 7, 6},
		{0, 2, 29},
	} {
		f.Add(tc[0], tc[1], tc[2])
	}
	f.Fuzz(func(t *testing.T, year, month, day int) {
		// Restrict to four digit years.
		year %= 9998
		when := time.Date(year, time.Month(month%13), day%32, 0, 0, 0, 0, time.UTC)
		if when.Year() < -9999 || when.Year() > 9999 {
			return
		}
		n := datetime.DaysFromEraStart(when)
		if got, want := n, fromTime(when); got != want {
			t.Errorf("%v: got %v, want %v", when, got, want)
		}
		cd := datetime.CalendarDateFromTime(when)
		if got, want := datetime.CalendarDateFromEraDay(n), cd; got != want {
			t.Errorf("%v: got %v, want %v", n, got, want)
		}
		if got, want := cd.Tomorrow().DaysFromEraStart()-n, int32(1); got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
		if got, want := cd.AddDays(25), datetime.CalendarDateFromTime(when.AddDate(0, 0, 25)); got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
	})
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import "fmt"

// OrdinalDate is implemented by any date that can report its proleptic
// Gregorian year and its 1-based day within that year. time.Time and
// CalendarDate both implement OrdinalDate.
type OrdinalDate interface {
	Year() int
	YearDay() int
}

// DivEuclid returns the quotient of x / div rounded towards negative
// infinity for a positive div, that is, the quotient for which RemEuclid
// is non-negative.
func DivEuclid(x, div int32) int32 {
	q := x / div
	if x%div < 0 {
		if div > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// RemEuclid returns the non-negative remainder of x / div.
func RemEuclid(x, div int32) int32 {
	r := x % div
	if r < 0 {
		if div < 0 {
			r -= div
		} else {
			r += div
		}
	}
	return r
}

// ceilQuotient returns the lowest multiple of div that is greater than or
// equal to x, divided by div.
func ceilQuotient(x, div int32) int32 {
	q := DivEuclid(x, div)
	if RemEuclid(x, div) != 0 {
		q++
	}
	return q
}

// InBetween returns the number of multiples of div in the half-open
// range [start, end).
//
// If start is greater than end the result is defined by:
//
//	InBetween(start, end, div) == -InBetween(end, start, div)
//
// When div is 1 the result is end - start, ie. the length of the range.
// Negative values of start and end are handled using Euclidean division
// so that ranges spanning zero are counted correctly.
//
// InBetween panics if div is not positive.
func InBetween(start, end, div int32) int32 {
	if div <= 0 {
		panic(fmt.Sprintf("datetime.InBetween: nonpositive div = %d", div))
	}
	return ceilQuotient(end, div) - ceilQuotient(start, div)
}

// DaysFromEraStart returns the number of the day represented by date counted
// from January 1st of year 1 in the proleptic Gregorian calendar, which is
// day 1. Dates before year 1 yield zero or negative values.
//
// The computation is performed using 32 bit arithmetic and overflows for
// years close to math.MaxInt32/366.
func DaysFromEraStart[D OrdinalDate](date D) int32 {
	year := int32(date.Year())
	diff := func(div int32) int32 { return InBetween(1, year, div) }
	// 365 days a year, plus one for every leap year; leap years are
	// multiples of 4 but not of 100, unless also a multiple of 400.
	return int32(date.YearDay()) + 365*diff(1) + diff(4) - diff(100) + diff(400)
}

const (
	daysPer400Years = 146097
)

// daysBeforeYearInCycle returns the number of days in the years
// [1, 1+y) which is also the number of days preceding year y of any
// 400 year cycle that starts at a year congruent to 1 modulo 400.
func daysBeforeYearInCycle(y int32) int32 {
	end := 1 + y
	return 365*y + InBetween(1, end, 4) - InBetween(1, end, 100) + InBetween(1, end, 400)
}

// CalendarDateFromEraDay returns the CalendarDate for the specified day
// as numbered by DaysFromEraStart. It is the inverse of DaysFromEraStart.
func CalendarDateFromEraDay(day int32) CalendarDate {
	// Days since the era start, zero based.
	d := day - 1
	cycle := DivEuclid(d, daysPer400Years)
	inCycle := RemEuclid(d, daysPer400Years)
	y := inCycle / 365
	for daysBeforeYearInCycle(y) > inCycle {
		y--
	}
	yearDay := inCycle - daysBeforeYearInCycle(y) + 1
	year := int(cycle)*400 + 1 + int(y)
	date := DateFromDay(year, int(yearDay))
	return CalendarDate{year: year, month: date.Month, day: date.Day}
}

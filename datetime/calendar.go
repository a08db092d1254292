// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a year, month and day do not
// identify a day in the proleptic Gregorian calendar.
var ErrInvalidDate = errors.New("invalid date")

// CalendarDate represents a validated year, month and day. The zero value
// is not a valid date; use NewCalendarDate, CalendarDateFromTime or
// CalendarDateFromEraDay to create one. CalendarDate values are comparable.
type CalendarDate struct {
	year  int
	month Month
	day   int
}

// NewCalendarDate returns the CalendarDate for the specified year, month
// and day or an error wrapping ErrInvalidDate if month is not in the
// range 1-12 or day is not a valid day for that month and year.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if month < 1 || month > 12 {
		return CalendarDate{}, fmt.Errorf("%w: month %d for %04d-??-%02d", ErrInvalidDate, month, year, day)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("%w: day %d for %04d-%02d", ErrInvalidDate, day, year, month)
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// CalendarDateFromTime returns the CalendarDate for t in t's location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: Month(m), day: d}
}

// Year returns the year, which may be zero or negative.
func (cd CalendarDate) Year() int {
	return cd.year
}

// Month returns the month in the range 1-12.
func (cd CalendarDate) Month() Month {
	return cd.month
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return cd.day
}

// Date returns the Date for the CalendarDate.
func (cd CalendarDate) Date() Date {
	return Date{cd.month, cd.day}
}

// YearDay returns the day of the year, 1 for January 1st.
func (cd CalendarDate) YearDay() int {
	return cd.Date().DayOfYear(cd.year)
}

// DaysFromEraStart is a convenience for DaysFromEraStart(cd).
func (cd CalendarDate) DaysFromEraStart() int32 {
	return DaysFromEraStart(cd)
}

// Tomorrow returns the date of the next day, 12/31 wraps to 1/1 of the
// following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.day < DaysInMonth(cd.year, cd.month) {
		cd.day++
		return cd
	}
	if cd.month == 12 {
		return CalendarDate{year: cd.year + 1, month: 1, day: 1}
	}
	cd.month++
	cd.day = 1
	return cd
}

// Yesterday returns the date of the previous day, 1/1 wraps to 12/31
// of the preceding year.
func (cd CalendarDate) Yesterday() CalendarDate {
	if cd.day > 1 {
		cd.day--
		return cd
	}
	if cd.month == 1 {
		return CalendarDate{year: cd.year - 1, month: 12, day: 31}
	}
	cd.month--
	cd.day = DaysInMonth(cd.year, cd.month)
	return cd
}

// AddDays returns the date n days after cd, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateFromEraDay(DaysFromEraStart(cd) + int32(n))
}

// Time returns the time.Time for midnight on cd in the specified location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.year, time.Month(cd.month), cd.day, 0, 0, 0, 0, loc)
}

// String returns the date as YYYY-MM-DD, negative years are prefixed with
// a minus sign.
func (cd CalendarDate) String() string {
	if cd.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -cd.year, cd.month, cd.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", cd.year, cd.month, cd.day)
}

// YearOrdinal is an unvalidated year and day of year pair that
// implements OrdinalDate.
type YearOrdinal struct {
	year, ordinal int
}

// NewYearOrdinal returns a YearOrdinal for the specified year and
// 1-based day of that year.
func NewYearOrdinal(year, ordinal int) YearOrdinal {
	return YearOrdinal{year: year, ordinal: ordinal}
}

// Year implements OrdinalDate.
func (yo YearOrdinal) Year() int {
	return yo.year
}

// YearDay implements OrdinalDate.
func (yo YearOrdinal) YearDay() int {
	return yo.ordinal
}

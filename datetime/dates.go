// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides proleptic Gregorian calendar arithmetic: counting
// multiples within integer ranges, numbering days from the start of the
// common era and a simple calendar date type that supports both.
package datetime

import (
	"fmt"
	"time"
)

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// Month as an int.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// IsLeap returns true if the given year is a leap year. Years before
// year 1 follow the same rule, so year 0 is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

// Date as Month and Day. Use CalendarDate to specify a year.
type Date struct {
	Month Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%s %02d", d.Month, d.Day)
}

// DayOfYear returns the day of the year for the given year as
// 1-365 for non-leap years and 1-366 for leap years.
// It will silently treat days that exceed those for a given month as the last
// day of that month.
func (d Date) DayOfYear(year int) int {
	md := d.Day
	if IsLeap(year) {
		if md > daysInMonthLeap[d.Month-1] {
			md = daysInMonthLeap[d.Month-1]
		}
		return dayOfYearLeap[d.Month-1] + md
	}
	if md > daysInMonth[d.Month-1] {
		md = daysInMonth[d.Month-1]
	}
	return dayOfYear[d.Month-1] + md
}

func dateFromDay(day int, daysInMonth []int) Date {
	for month := 0; month < 12; month++ {
		if day <= daysInMonth[month] {
			return Date{Month(month + 1), day}
		}
		day -= daysInMonth[month]
	}
	panic("unreachable")
}

// DateFromDay returns the Date for the given day of the year. A day of
// <= 0 is treated as Jan-01 and a day of > 365/366 is treated as Dec-31.
func DateFromDay(year, day int) Date {
	if day <= 0 {
		return Date{Month(1), 1}
	}
	if day > DaysInYear(year) {
		return Date{Month(12), 31}
	}
	return dateFromDay(day, daysInMonthForYear(year))
}

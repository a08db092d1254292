// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package eracheck evaluates sets of calendar arithmetic cases, typically
// regression anchors read from a yaml configuration, and cross checks
// datetime.DaysFromEraStart against the time package.
package eracheck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloudeng.io/datefuzz/datetime"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

// ErrMismatch is returned when a case does not produce its expected value.
var ErrMismatch = errors.New("mismatch")

// Result represents the outcome of evaluating a single case.
type Result struct {
	Case string
	Got  int32
	Want int32
}

// OK returns true if the case produced the expected value.
func (r Result) OK() bool {
	return r.Got == r.Want
}

func (r Result) String() string {
	return fmt.Sprintf("%v: got %v, want %v", r.Case, r.Got, r.Want)
}

// Results contains the results for all of the cases in a Config, in the
// order in which they appear in that Config.
type Results struct {
	InBetween []Result
	Days      []Result
}

// Failed returns the results that did not match their expectations.
func (r Results) Failed() []Result {
	var failed []Result
	for _, res := range append(append([]Result{}, r.InBetween...), r.Days...) {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Run validates cfg and then evaluates all of its cases using up to
// cfg.Concurrency goroutines. The returned error wraps ErrMismatch for
// every case that failed.
func Run(ctx context.Context, cfg Config) (Results, error) {
	if err := cfg.Validate(); err != nil {
		return Results{}, err
	}
	results := Results{
		InBetween: make([]Result, len(cfg.InBetween)),
		Days:      make([]Result, len(cfg.Days)),
	}
	logger := ctxlog.Logger(ctx)
	g := errgroup.WithConcurrency(&errgroup.T{}, max(cfg.Concurrency, 1))
	for i, c := range cfg.InBetween {
		g.GoContext(ctx, func() error {
			results.InBetween[i] = evalInBetween(logger, c)
			return nil
		})
	}
	for i, c := range cfg.Days {
		g.GoContext(ctx, func() error {
			results.Days[i] = evalDays(logger, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	var errs errors.M
	for _, r := range results.Failed() {
		errs.Append(fmt.Errorf("%v: %w", r, ErrMismatch))
	}
	return results, errs.Err()
}

func evalInBetween(logger *slog.Logger, c InBetweenCase) Result {
	got := datetime.InBetween(c.Start, c.End, c.Div)
	logger.Debug("in_between", "case", c.String(), "start", c.Start, "end", c.End, "div", c.Div, "got", got, "want", c.Want)
	return Result{Case: c.String(), Got: got, Want: c.Want}
}

func evalDays(logger *slog.Logger, c DaysCase) Result {
	od := c.OrdinalDate()
	got := datetime.DaysFromEraStart(od)
	logger.Debug("days_from_era_start", "case", c.String(), "year", od.Year(), "ordinal", od.YearDay(), "got", got, "want", c.Want)
	return Result{Case: c.String(), Got: got, Want: c.Want}
}

var eraStart = time.Date(1, 1, 1, 12, 0, 0, 0, time.UTC)

// CrossCheck walks every day from from to to, inclusive, and verifies that
// consecutive days are numbered consecutively, that the number of days in
// each complete year matches its last ordinal and the leap year rule, and
// that the day numbers agree with those obtained using time.Time.
func CrossCheck(ctx context.Context, from, to datetime.CalendarDate) error {
	last := to.DaysFromEraStart()
	if from.DaysFromEraStart() > last {
		return fmt.Errorf("%v is after %v", from, to)
	}
	logger := ctxlog.Logger(ctx)
	var errs errors.M
	prev := from.DaysFromEraStart() - 1
	yearStart, haveYearStart := int32(0), false
	for cd := from; ; cd = cd.Tomorrow() {
		n := cd.DaysFromEraStart()
		if n != prev+1 {
			errs.Append(fmt.Errorf("%v: %w: day %d follows day %d", cd, ErrMismatch, n, prev))
		}
		if want := fromTime(cd.Time(time.UTC)); n != want {
			errs.Append(fmt.Errorf("%v: %w: got %d, want %d", cd, ErrMismatch, n, want))
		}
		if cd.YearDay() == 1 {
			if err := ctx.Err(); err != nil {
				errs.Append(err)
				break
			}
			yearStart, haveYearStart = n, true
		}
		if cd.Month() == 12 && cd.Day() == 31 && haveYearStart {
			length := int(n-yearStart) + 1
			if length != cd.YearDay() || length != datetime.DaysInYear(cd.Year()) {
				errs.Append(fmt.Errorf("year %d: %w: %d days", cd.Year(), ErrMismatch, length))
			}
			logger.Debug("cross check", "year", cd.Year(), "first", yearStart, "last", n)
		}
		prev = n
		if n >= last {
			break
		}
	}
	return errs.Err()
}

func fromTime(t time.Time) int32 {
	t = time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	return int32((t.Unix()-eraStart.Unix())/(24*60*60)) + 1
}

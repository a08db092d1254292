// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datefuzz/datetime"
	"cloudeng.io/datefuzz/eracheck"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

// CheckFlags are used by the check command.
type CheckFlags struct {
	CommonFlags
	Config      string `subcmd:"config,,'yaml file containing the cases to check, the built in regression anchors are used if not specified'"`
	Concurrency int    `subcmd:"concurrency,0,'overrides the concurrency specified in the configuration if non-zero'"`
}

var stdout io.Writer = os.Stdout

// withLogger returns a context carrying the logger configured by cf
// and a function to close any log file.
func (cf *CommonFlags) withLogger(ctx context.Context) (context.Context, func() error, error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), logger.Close, nil
}

func parseInt32(name, val string) (int32, error) {
	v, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %q: %w", name, val, err)
	}
	return int32(v), nil
}

func parseInts(names []string, args []string) ([]int32, error) {
	vals := make([]int32, len(args))
	for i, a := range args {
		v, err := parseInt32(names[i], a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func inBetween(ctx context.Context, values any, args []string) error {
	fv := values.(*CommonFlags)
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	vals, err := parseInts([]string{"start", "end", "div"}, args)
	if err != nil {
		return err
	}
	start, end, div := vals[0], vals[1], vals[2]
	if div <= 0 {
		return fmt.Errorf("%w: %d", eracheck.ErrNonPositiveDivisor, div)
	}
	n := datetime.InBetween(start, end, div)
	ctxlog.Info(ctx, "in-between", "start", start, "end", end, "div", div, "result", n)
	fmt.Fprintln(stdout, n)
	return nil
}

func days(ctx context.Context, values any, args []string) error {
	fv := values.(*CommonFlags)
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	vals, err := parseInts([]string{"year", "month", "day"}, args)
	if err != nil {
		return err
	}
	cd, err := datetime.NewCalendarDate(int(vals[0]), datetime.Month(vals[1]), int(vals[2]))
	if err != nil {
		return err
	}
	n := cd.DaysFromEraStart()
	ctxlog.Info(ctx, "days", "date", cd.String(), "ordinal", cd.YearDay(), "result", n)
	fmt.Fprintln(stdout, n)
	return nil
}

func check(ctx context.Context, values any, _ []string) error {
	fv := values.(*CheckFlags)
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	cfg := eracheck.DefaultConfig()
	if len(fv.Config) > 0 {
		if cfg, err = eracheck.ParseConfigFile(ctx, fv.Config); err != nil {
			return err
		}
	}
	if fv.Concurrency > 0 {
		cfg.Concurrency = fv.Concurrency
	}
	results, err := eracheck.Run(ctx, cfg)
	for _, r := range append(results.InBetween, results.Days...) {
		status := "ok"
		if !r.OK() {
			status = "FAIL"
		}
		fmt.Fprintf(stdout, "%-4s %v\n", status, r)
	}
	if err != nil {
		return err
	}
	ctxlog.Info(ctx, "check", "in_between", len(results.InBetween), "days", len(results.Days))
	return nil
}

func crossCheck(ctx context.Context, values any, args []string) error {
	fv := values.(*CommonFlags)
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	vals, err := parseInts([]string{"from-year", "to-year"}, args)
	if err != nil {
		return err
	}
	from, err := datetime.NewCalendarDate(int(vals[0]), 1, 1)
	if err != nil {
		return err
	}
	to, err := datetime.NewCalendarDate(int(vals[1]), 12, 31)
	if err != nil {
		return err
	}
	if err := eracheck.CrossCheck(ctx, from, to); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%v - %v: ok, days %d - %d\n", from, to, from.DaysFromEraStart(), to.DaysFromEraStart())
	return nil
}

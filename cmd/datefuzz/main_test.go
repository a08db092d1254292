// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/datefuzz/datetime"
	"cloudeng.io/datefuzz/eracheck"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	stdout = out
	defer func() { stdout = os.Stdout }()
	err := cli().DispatchWithArgs(context.Background(), "datefuzz", args...)
	return out.String(), err
}

func TestInBetweenCommand(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"0", "100", "10"}, "10\n"},
		{[]string{"1", "100", "10"}, "9\n"},
		{[]string{"100", "0", "10"}, "-10\n"},
		{[]string{"--", "-10", "10", "3"}, "7\n"},
	} {
		out, err := run(t, append([]string{"in-between"}, tc.args...)...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got, want := out, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.args, got, want)
		}
	}

	_, err := run(t, "in-between", "0", "10", "0")
	if !errors.Is(err, eracheck.ErrNonPositiveDivisor) {
		t.Errorf("missing or unexpected error: %v", err)
	}
	if _, err := run(t, "in-between", "0", "10", "x"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestDaysCommand(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"1", "1", "1"}, "1\n"},
		{[]string{"2000", "1", "1"}, "730120\n"},
		{[]string{"2019", "1", "1"}, "737060\n"},
	} {
		out, err := run(t, append([]string{"days"}, tc.args...)...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got, want := out, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.args, got, want)
		}
	}
	_, err := run(t, "days", "2023", "2", "29")
	if !errors.Is(err, datetime.ErrInvalidDate) {
		t.Errorf("missing or unexpected error: %v", err)
	}
}

func TestCommandLogging(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "datefuzz.log")
	out, err := run(t, "days", "--log-level=2", "--log-format=json", "--log-file="+logfile, "2000", "1", "1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "730120\n"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	buf, err := os.ReadFile(logfile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"msg":"days"`, `"date":"2000-01-01"`, `"result":730120`} {
		if !strings.Contains(string(buf), want) {
			t.Errorf("%s does not contain %s", buf, want)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.Count(out, "ok "), 18; got != want {
		t.Errorf("got %v, want %v: %s", got, want, out)
	}

	filename := filepath.Join(t.TempDir(), "cases.yaml")
	spec := `in_between: [{start: 0, end: 100, div: 10, want: 9}]`
	if err := os.WriteFile(filename, []byte(spec), 0600); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "check", "--config="+filename, "--concurrency=3")
	if !errors.Is(err, eracheck.ErrMismatch) {
		t.Errorf("missing or unexpected error: %v", err)
	}
	if got, want := out, "FAIL in_between(0, 100, 10): got 10, want 9\n"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCrossCheckCommand(t *testing.T) {
	out, err := run(t, "cross-check", "1999", "2001")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "1999-01-01 - 2001-12-31: ok, days 729755 - 730850\n"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

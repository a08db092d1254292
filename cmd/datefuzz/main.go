// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datefuzz evaluates the calendar arithmetic provided by
// cloudeng.io/datefuzz/datetime for explicitly chosen inputs, checks
// regression anchors and cross checks day numbering against the
// time package.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: datefuzz
summary: evaluate and check proleptic Gregorian calendar arithmetic
commands:
  - name: in-between
    summary: print the number of multiples of <div> in [<start>, <end>)
    arguments:
      - <start>
      - <end>
      - <div>
  - name: days
    summary: print the day number of the specified date counted from 0001-01-01, which is day 1
    arguments:
      - <year>
      - <month>
      - <day>
  - name: check
    summary: evaluate the built in or configured regression anchors
  - name: cross-check
    summary: verify day numbering for every day of the specified years against the time package
    arguments:
      - <from-year>
      - <to-year>
`

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("in-between").MustRunnerAndFlags(
		inBetween, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("days").MustRunnerAndFlags(
		days, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("check").MustRunnerAndFlags(
		check, subcmd.MustRegisteredFlagSet(&CheckFlags{}))
	cmdSet.Set("cross-check").MustRunnerAndFlags(
		crossCheck, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	return cmdSet
}

func main() {
	cli().MustDispatch(context.Background())
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package eracheck

import (
	"context"
	_ "embed"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datefuzz/datetime"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

//go:embed anchors.yaml
var anchorsYAML []byte

var (
	// ErrNonPositiveDivisor is returned for an InBetween case whose
	// divisor is zero or negative.
	ErrNonPositiveDivisor = errors.New("divisor must be positive")
	// ErrInvalidCase is returned for a days case that specifies neither
	// a valid date nor a valid year and ordinal.
	ErrInvalidCase = errors.New("invalid case")
)

// Config represents the set of cases to be checked.
type Config struct {
	Concurrency int             `yaml:"concurrency" cmd:"number of cases to evaluate concurrently, defaults to 1"`
	InBetween   []InBetweenCase `yaml:"in_between" cmd:"cases for datetime.InBetween"`
	Days        []DaysCase      `yaml:"days" cmd:"cases for datetime.DaysFromEraStart"`
}

// InBetweenCase is a single invocation of datetime.InBetween and its
// expected result.
type InBetweenCase struct {
	Name  string `yaml:"name"`
	Start int32  `yaml:"start"`
	End   int32  `yaml:"end"`
	Div   int32  `yaml:"div"`
	Want  int32  `yaml:"want"`
}

func (c InBetweenCase) String() string {
	if len(c.Name) > 0 {
		return c.Name
	}
	return fmt.Sprintf("in_between(%d, %d, %d)", c.Start, c.End, c.Div)
}

// DaysCase is a single invocation of datetime.DaysFromEraStart and its
// expected result. Either Date or both of Year and Ordinal must be set.
type DaysCase struct {
	Name    string    `yaml:"name"`
	Date    *DateSpec `yaml:"date"`
	Year    int       `yaml:"year"`
	Ordinal int       `yaml:"ordinal"`
	Want    int32     `yaml:"want"`
}

func (c DaysCase) String() string {
	if len(c.Name) > 0 {
		return c.Name
	}
	if c.Date != nil {
		return fmt.Sprintf("days(%v)", c.Date)
	}
	return fmt.Sprintf("days(%d/%d)", c.Year, c.Ordinal)
}

// OrdinalDate returns the date to be used for this case.
func (c DaysCase) OrdinalDate() datetime.OrdinalDate {
	if c.Date != nil {
		return c.Date.CalendarDate
	}
	return datetime.NewYearOrdinal(c.Year, c.Ordinal)
}

// DateSpec is a datetime.CalendarDate that is specified in yaml as a
// sequence of three integers, ie. [year, month, day].
type DateSpec struct {
	datetime.CalendarDate
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ds *DateSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 3 {
		return fmt.Errorf("line %d: date must be specified as [year, month, day]", value.Line)
	}
	var ymd [3]int
	for i, n := range value.Content {
		if err := n.Decode(&ymd[i]); err != nil {
			return err
		}
	}
	cd, err := datetime.NewCalendarDate(ymd[0], datetime.Month(ymd[1]), ymd[2])
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	ds.CalendarDate = cd
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (ds DateSpec) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{ds.Year(), int(ds.Month()), ds.Day()} {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprintf("%d", v),
		})
	}
	return n, nil
}

// Validate checks that every case can be evaluated, in particular
// that no InBetween case has a non-positive divisor.
func (c Config) Validate() error {
	var errs errors.M
	if c.Concurrency < 0 {
		errs.Append(fmt.Errorf("concurrency must not be negative: %d", c.Concurrency))
	}
	for _, ib := range c.InBetween {
		if ib.Div <= 0 {
			errs.Append(fmt.Errorf("%v: %w: %d", ib, ErrNonPositiveDivisor, ib.Div))
		}
	}
	for _, dc := range c.Days {
		if dc.Date != nil {
			continue
		}
		if dc.Ordinal < 1 || dc.Ordinal > datetime.DaysInYear(dc.Year) {
			errs.Append(fmt.Errorf("%v: %w: ordinal %d is not a day of year %d", dc, ErrInvalidCase, dc.Ordinal, dc.Year))
		}
	}
	return errs.Err()
}

// ParseConfig parses the supplied yaml specification and validates it.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfig(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseConfigFile reads, parses and validates the named yaml file.
func ParseConfigFile(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// DefaultConfig returns the built in set of regression anchors.
func DefaultConfig() Config {
	cfg, err := ParseConfig(anchorsYAML)
	if err != nil {
		panic(fmt.Sprintf("invalid built in anchors: %v", err))
	}
	return cfg
}

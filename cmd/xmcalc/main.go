// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command xmcalc evaluates xm vector and plane operations on vectors given
// on the command line.
//
// Usage:
//
//	xmcalc [flags] <operation> <x,y,z,w>...
//
// A single number is replicated into every lane. Run with -list to see the
// available operations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-xmath/xm"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			newLogger(os.Stderr, false).Error("xmcalc failed", "err", err)
		}
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("xmcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		list    = fs.Bool("list", false, "List the available operations")
		bits    = fs.Bool("bits", false, "Print raw lane bit patterns instead of floats")
		noFMA   = fs.Bool("no-fma", false, "Round the product before the add in multiply-add")
		verbose = fs.Bool("v", false, "Enable debug logging")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: xmcalc [flags] <operation> <x,y,z,w>...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, *verbose)

	if *list {
		printList(stdout)
		return nil
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return errUsage
	}

	if *noFMA || xm.NoFMAEnv() {
		prev := xm.SetFusedMultiplyAdd(false)
		defer xm.SetFusedMultiplyAdd(prev)
	}
	logger.Debug("dispatch selected", "name", xm.CurrentName(), "fused", xm.HasFusedMultiplyAdd())

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown operation %q (see -list)", name)
	}
	operands := fs.Args()[1:]
	if len(operands) != len(cmd.args) {
		return fmt.Errorf("%s takes %d operands (%s), got %d",
			name, len(cmd.args), strings.Join(cmd.args, " "), len(operands))
	}

	vecs := make([]xm.Vector, len(operands))
	for i, s := range operands {
		v, err := parseVector(s)
		if err != nil {
			return fmt.Errorf("%s operand %s: %w", name, cmd.args[i], err)
		}
		logger.Debug("operand", "name", cmd.args[i], "value", v.String())
		vecs[i] = v
	}

	for _, r := range cmd.fn(vecs) {
		fmt.Fprintln(stdout, formatVector(r, *bits))
		if xm.Vector4IsNaN(r) {
			logger.Debug("degenerate result", "op", name, "bits", formatVector(r, true))
		}
	}
	if rec, ok := recordCommands[name]; ok {
		fmt.Fprintln(stdout, rec(vecs[0], vecs[1]))
	}
	return nil
}

func printList(w io.Writer) {
	title := cases.Title(language.English)
	for _, name := range commandNames() {
		cmd := commands[name]
		heading := title.String(strings.ReplaceAll(name, "-", " "))
		fmt.Fprintf(w, "%-16s %-28s %s: %s\n", name, strings.Join(cmd.args, " "), heading, cmd.about)
	}
}

// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package app provides the common entry point of the command line tools:
// flag parsing, logging setup, signal handling and exit codes.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ValveSoftware/vogl-sub006/core/app/flags"
	"github.com/ValveSoftware/vogl-sub006/core/log"
)

// ExitCode is the value the process exits with. Panicking with an ExitCode
// inside Run exits cleanly with that code.
type ExitCode int

const (
	SuccessExit ExitCode = 0
	FatalExit   ExitCode = 1
	UsageExit   ExitCode = 2
)

var (
	// Name is the name of the application.
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))

	// ShortHelp is printed at the top of the usage text.
	ShortHelp = ""

	// ShortUsage describes the non-flag arguments.
	ShortUsage = ""

	// Flags are the command line flags of the application. Flags declared
	// with the flag package are also parsed.
	Flags = flags.Set{Raw: flag.CommandLine}

	// ExitFuncForTesting replaces os.Exit.
	ExitFuncForTesting = os.Exit

	// Output is where usage text is written.
	Output io.Writer = os.Stderr
)

// Usage prints message and the usage text, then exits with UsageExit.
func Usage(ctx context.Context, message string, args ...interface{}) {
	if message != "" {
		fmt.Fprintf(Output, message+"\n\n", args...)
	}
	printUsage(Output)
	panic(UsageExit)
}

func printUsage(w io.Writer) {
	if ShortHelp != "" {
		fmt.Fprintf(w, "%s: %s\n", Name, ShortHelp)
	}
	fmt.Fprintf(w, "Usage: %s [flags] %s\nFlags:\n%s", Name, ShortUsage, Flags.Usage())
}

// Run parses the command line, builds a context carrying the configured
// logger that is cancelled on interrupt, and runs main with it. An error
// from main is logged as fatal.
func Run(main func(ctx context.Context) error) {
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			ExitFuncForTesting(int(cause))
		default:
			panic(cause)
		}
	}()

	logFlags := logDefaults()
	Flags.Bind("log", &logFlags, "")
	Flags.Raw.Usage = func() { printUsage(Output) }
	if err := Flags.Parse(os.Args[1:]...); err != nil {
		panic(UsageExit)
	}
	ctx, closeLog, err := prepareContext(context.Background(), logFlags)
	if err != nil {
		Usage(ctx, "%v", err)
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()
	if err := main(ctx); err != nil {
		log.F(ctx, true, "Main failed\nError: %v", err)
	}
}

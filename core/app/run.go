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

// Package app provides the common entry point for the command line tools:
// flag parsing, the root logging context and exit code handling.
package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jingyan/apkxml/core/app/flags"
	"github.com/jingyan/apkxml/core/log"
)

var (
	// Name is the full name of the application.
	Name string
	// ExitFuncForTesting can be set to change the behaviour when there is a
	// command line parsing failure. It defaults to os.Exit.
	ExitFuncForTesting = os.Exit
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
)

// ExitCode is the type for named return values from the application main
// entry point. Panicking with an ExitCode ends the process with that code.
type ExitCode int

const (
	// SuccessExit is the exit code for successful exit.
	SuccessExit ExitCode = iota
	// FatalExit is the exit code if something logs at a fatal severity.
	FatalExit
	// UsageExit is the exit code if the usage function was invoked.
	UsageExit
)

// Task is the signature of an application main function.
type Task func(ctx context.Context) error

// AppFlags are the flags every application accepts.
type AppFlags struct {
	Log LogFlags
}

func init() {
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

// Run performs all the work needed to start up an application.
// It parses the main command line arguments, builds the root context with
// the log handler installed, and then invokes main.
// A non-nil error from main is logged as fatal and exits with FatalExit.
func Run(main Task) {
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			ExitFuncForTesting(int(cause))
		default:
			panic(cause)
		}
	}()

	appFlags := &AppFlags{Log: logDefaults()}
	ctx := prepareContext(&appFlags.Log)

	set := &flags.Set{Raw: *flag.CommandLine}
	set.Bind("", appFlags, "")
	set.Raw.Usage = func() { Usage(ctx, "") }
	set.Parse(os.Args[1:]...)
	flag.CommandLine = &set.Raw

	ctx = updateContext(ctx, &appFlags.Log)
	defer LogHandler.Close()

	if err := main(ctx); err != nil {
		log.F(ctx, true, "Main failed\nError: %v", err)
	}
}

// Usage prints message followed by the usage text, and then exits with
// UsageExit.
func Usage(ctx context.Context, message string, args ...interface{}) {
	out := os.Stderr
	if message != "" {
		fmt.Fprintf(out, message, args...)
		fmt.Fprintln(out)
		fmt.Fprintln(out)
	}
	if ShortHelp != "" {
		fmt.Fprintf(out, "%s: %s\n", Name, ShortHelp)
	}
	fmt.Fprintf(out, "Usage: %s [flags] %s\n", Name, ShortUsage)
	usage := flags.Set{Raw: *flag.CommandLine}
	fmt.Fprintln(out, usage.Usage())
	panic(UsageExit)
}

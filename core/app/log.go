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

package app

import (
	"context"
	"fmt"
	"os"

	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/file"
)

const logChanBufferSize = 100

// LogHandler is the handler installed in the root context by Run.
var LogHandler log.Indirect

// LogFlags controls the root log handler.
type LogFlags struct {
	Level log.Severity `help:"Sets the log level for the application."`
	Style log.Style    `help:"Sets the style of log output."`
	File  file.Path    `help:"Also appends the log output to this file."`
}

func logDefaults() LogFlags {
	return LogFlags{
		Level: log.Info,
		Style: log.Normal,
	}
}

func wrapHandler(to log.Handler) log.Handler {
	to = log.Channel(to, logChanBufferSize)
	return log.NewHandler(func(m *log.Message) {
		to.Handle(m)
		if m.StopProcess {
			to.Close()
			panic(FatalExit)
		}
	}, to.Close)
}

// handler returns the handler described by the flags. When a log file is
// named, messages go to both the standard streams and the file.
func (f *LogFlags) handler() log.Handler {
	std := f.Style.Handler(log.Std())
	if f.File.IsEmpty() {
		return std
	}
	if err := file.Mkdir(f.File.Parent()); err != nil {
		fmt.Fprintf(os.Stderr, "Could not create log directory: %v\n", err)
		return std
	}
	out, err := os.OpenFile(f.File.System(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		return std
	}
	return log.Broadcast{
		std,
		log.OnClosed(f.Style.Handler(log.Stream(out)), func() { out.Close() }),
	}
}

func prepareContext(flags *LogFlags) context.Context {
	LogHandler.SetTarget(wrapHandler(flags.handler()))
	ctx := context.Background()
	ctx = log.PutProcess(ctx, Name)
	ctx = log.PutFilter(ctx, log.SeverityFilter(flags.Level))
	ctx = log.PutHandler(ctx, &LogHandler)
	return ctx
}

func updateContext(ctx context.Context, flags *LogFlags) context.Context {
	if old := LogHandler.SetTarget(wrapHandler(flags.handler())); old != nil {
		old.Close()
	}
	return log.PutFilter(ctx, log.SeverityFilter(flags.Level))
}

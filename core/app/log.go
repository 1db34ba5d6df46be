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
	"strings"

	"github.com/pkg/errors"

	"github.com/ValveSoftware/vogl-sub006/core/log"
)

// LogFlags configure the logger built by Run.
type LogFlags struct {
	Level string `help:"the minimum severity to log: Debug, Info, Warning, Error or Fatal"`
	Style string `help:"the log style: raw, brief, normal or detailed"`
	File  string `help:"write the log to this file instead of stderr"`
}

func logDefaults() LogFlags {
	return LogFlags{Level: log.Info.String(), Style: log.Brief.Name}
}

// stopOnFatal panics with FatalExit after a message that asks for the
// process to stop.
func stopOnFatal(to log.Handler) log.Handler {
	return log.NewHandler(func(m *log.Message) {
		to.Handle(m)
		if m.StopProcess {
			to.Close()
			panic(FatalExit)
		}
	}, to.Close)
}

func prepareContext(ctx context.Context, flags LogFlags) (context.Context, func(), error) {
	severity, ok := log.ParseSeverity(flags.Level)
	if !ok {
		return ctx, nil, fmt.Errorf("Unknown log level %q", flags.Level)
	}
	style, ok := log.FindStyle(flags.Style)
	if !ok {
		names := []string{}
		for _, s := range log.Styles {
			names = append(names, s.Name)
		}
		return ctx, nil, fmt.Errorf("Unknown log style %q, expected one of %v", flags.Style, strings.Join(names, ", "))
	}
	handler := log.Stderr(style)
	if flags.File != "" {
		f, err := os.Create(flags.File)
		if err != nil {
			return ctx, nil, errors.Wrap(err, "Creating log file")
		}
		handler = log.NewHandler(log.Writer(style, f).Handle, func() { f.Close() })
	}
	handler = stopOnFatal(handler)
	ctx = log.PutHandler(ctx, handler)
	ctx = log.PutFilter(ctx, log.SeverityFilter(severity))
	return ctx, handler.Close, nil
}

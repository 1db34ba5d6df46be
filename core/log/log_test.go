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

package log_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ValveSoftware/vogl-sub006/core/log"
)

func TestMessageValuesAndTrace(t *testing.T) {
	h, msgs := log.Buffer()
	ctx := log.PutHandler(context.Background(), h)
	ctx = log.PutClock(ctx, log.NoClock)
	ctx = log.Enter(ctx, "outer")
	ctx = log.Enter(ctx, "inner")
	ctx = log.V{"b": 2, "a": 1}.Bind(ctx)
	ctx = log.V{"a": 3}.Bind(ctx)

	log.I(ctx, "hello %d", 42)

	got := msgs()
	if len(got) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(got))
	}
	m := got[0]
	if m.Text != "hello 42" || m.Severity != log.Info {
		t.Errorf("Unexpected message: %+v", m)
	}
	if strings.Join(m.Trace, ",") != "outer,inner" {
		t.Errorf("Unexpected trace: %v", m.Trace)
	}
	if len(m.Values) != 2 || m.Values.Get("a") != 3 || m.Values.Get("b") != 2 {
		t.Errorf("Unexpected values: %v", m.Values)
	}
	if s := log.Brief.Print(m); s != "I: hello 42" {
		t.Errorf("Brief print was %q", s)
	}
}

func TestSeverityFilter(t *testing.T) {
	h, msgs := log.Buffer()
	ctx := log.PutHandler(context.Background(), h)
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "debug")
	log.I(ctx, "info")
	log.W(ctx, "warn")
	if got := msgs(); len(got) != 1 || got[0].Text != "warn" {
		t.Errorf("Filter let through %v messages", len(got))
	}
}

func TestErrCause(t *testing.T) {
	ctx := log.PutClock(context.Background(), log.FixedClock(time.Unix(0, 0)))
	ctx = log.Enter(ctx, "restore")
	cause := errors.New("boom")
	err := log.Errf(ctx, cause, "level %d", 3)
	if c, ok := err.(interface{ Cause() error }); !ok || c.Cause() != cause {
		t.Errorf("Cause not preserved")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is did not find cause")
	}
	if !strings.HasPrefix(err.Error(), "restore: level 3") {
		t.Errorf("Unexpected error text %q", err.Error())
	}
}

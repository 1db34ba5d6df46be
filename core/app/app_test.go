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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/log"
)

func TestPrepareContext(t *testing.T) {
	assert := assert.To(t)
	path := filepath.Join(t.TempDir(), "out.log")
	ctx, closeLog, err := prepareContext(context.Background(), LogFlags{Level: "W", Style: "raw", File: path})
	if !assert.For("prepare").ThatError(err).Succeeded() {
		return
	}
	log.I(ctx, "hidden")
	log.W(ctx, "shown")
	closeLog()
	data, _ := os.ReadFile(path)
	assert.For("log").ThatString(string(data)).Equals("shown\n")

	_, _, err = prepareContext(context.Background(), LogFlags{Level: "Loud", Style: "raw"})
	assert.For("bad level").ThatError(err).HasMessage(`Unknown log level "Loud"`)
	_, _, err = prepareContext(context.Background(), LogFlags{Level: "Info", Style: "fancy"})
	assert.For("bad style").ThatError(err).Failed()
}

func TestFatalExits(t *testing.T) {
	assert := assert.To(t)
	h, messages := log.Buffer()
	ctx := log.PutHandler(context.Background(), stopOnFatal(h))
	code := func() (code ExitCode) {
		defer func() { code = recover().(ExitCode) }()
		log.F(ctx, true, "stop")
		return SuccessExit
	}()
	assert.For("code").That(code).Equals(FatalExit)
	assert.For("messages").ThatSlice(messages()).IsLength(1)
}

func TestUsage(t *testing.T) {
	assert := assert.To(t)
	out := &bytes.Buffer{}
	Output, Name, ShortHelp, ShortUsage = out, "tool", "does things", "<files>"
	defer func() { Output = os.Stderr }()
	code := func() (code ExitCode) {
		defer func() { code = recover().(ExitCode) }()
		Usage(context.Background(), "missing %v", "input")
		return SuccessExit
	}()
	assert.For("code").That(code).Equals(UsageExit)
	assert.For("message").ThatString(out.String()).HasPrefix("missing input\n\ntool: does things\nUsage: tool [flags] <files>\n")
}

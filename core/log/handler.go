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

package log

import (
	"io"
	"os"
	"sync"
)

// Handler is the handler of log messages.
type Handler interface {
	Handle(*Message)
	Close()
}

type handler struct {
	handle func(*Message)
	close  func()
}

func (h handler) Handle(m *Message) { h.handle(m) }
func (h handler) Close()            { h.close() }

// NewHandler returns a Handler that calls handle for each message and close
// when the handler is closed. close may be nil.
func NewHandler(handle func(*Message), close func()) Handler {
	if close == nil {
		close = func() {}
	}
	return handler{handle, close}
}

// Writer returns a Handler that uses the style s to write records to to.
// Writes are serialized.
func Writer(s Style, to io.Writer) Handler {
	mu := sync.Mutex{}
	return handler{
		handle: func(m *Message) {
			mu.Lock()
			defer mu.Unlock()
			io.WriteString(to, s.Print(m)+"\n")
		},
		close: func() {},
	}
}

// Stdout returns a Handler that writes to os.Stdout.
func Stdout(s Style) Handler { return Writer(s, os.Stdout) }

// Stderr returns a Handler that writes to os.Stderr.
func Stderr(s Style) Handler { return Writer(s, os.Stderr) }

// Buffer returns a Handler that accumulates messages in memory. The returned
// function returns a copy of the messages handled so far.
func Buffer() (Handler, func() []*Message) {
	mu := sync.Mutex{}
	var msgs []*Message
	h := handler{
		handle: func(m *Message) {
			mu.Lock()
			defer mu.Unlock()
			msgs = append(msgs, m)
		},
		close: func() {},
	}
	return h, func() []*Message {
		mu.Lock()
		defer mu.Unlock()
		return append([]*Message{}, msgs...)
	}
}

// Fork forwards all messages to all supplied handlers.
func Fork(handlers ...Handler) Handler {
	return handler{
		handle: func(m *Message) {
			for _, h := range handlers {
				h.Handle(m)
			}
		},
		close: func() {
			for _, h := range handlers {
				h.Close()
			}
		},
	}
}

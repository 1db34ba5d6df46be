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

package blob

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// NewInMemory builds a new in memory blob store.
func NewInMemory(ctx context.Context) Manager {
	return &memory{records: map[string][]byte{}}
}

type memory struct {
	mutex   sync.Mutex
	records map[string][]byte
}

// Implements Manager
func (m *memory) Add(ctx context.Context, prefix string, data []byte) (string, error) {
	id := MakeID(prefix, data)
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, got := m.records[id]; !got {
		m.records[id] = append([]byte{}, data...)
	}
	return id, nil
}

// Implements Manager
func (m *memory) Get(ctx context.Context, id string) ([]byte, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	data, ok := m.records[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "Blob %q", id)
	}
	return data, nil
}

// Implements Manager
func (m *memory) Contains(ctx context.Context, id string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	_, ok := m.records[id]
	return ok
}

// Implements Manager
func (m *memory) IDs(ctx context.Context) ([]string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	ids := make([]string, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

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

package ktx

import "bytes"

// AddKeyValue appends a key/value entry. Keys may repeat.
func (t *Texture) AddKeyValue(key string, value []byte) {
	t.keyValues = append(t.keyValues, KeyValue{Key: key, Value: append([]byte(nil), value...)})
	t.Header.BytesOfKeyValueData = t.keyValueBytes()
}

// AddKeyValueString appends a key/value entry with a NUL terminated string
// value.
func (t *Texture) AddKeyValueString(key, value string) {
	t.AddKeyValue(key, append([]byte(value), 0))
}

// KeyValue returns the value of the first entry with the given key.
func (t *Texture) KeyValue(key string) ([]byte, bool) {
	for _, kv := range t.keyValues {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// KeyValueString returns the value of the first entry with the given key,
// without its NUL terminator.
func (t *Texture) KeyValueString(key string) (string, bool) {
	v, ok := t.KeyValue(key)
	if !ok {
		return "", false
	}
	if i := bytes.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return string(v), true
}

// KeyValues returns all the key/value entries in order.
func (t *Texture) KeyValues() []KeyValue { return t.keyValues }

// ClearKeyValues removes all key/value entries.
func (t *Texture) ClearKeyValues() {
	t.keyValues = nil
	t.Header.BytesOfKeyValueData = 0
}

func keyValueEntrySize(kv KeyValue) uint32 {
	return uint32(len(kv.Key) + 1 + len(kv.Value))
}

func (t *Texture) keyValueBytes() uint32 {
	total := uint32(0)
	for _, kv := range t.keyValues {
		total += 4 + align4(keyValueEntrySize(kv))
	}
	return total
}

func align4(v uint32) uint32 { return (v + 3) &^ 3 }

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

// Package blob implements content addressed stores for binary blobs.
//
// A blob ID is a descriptive prefix followed by an underscore and the SHA-1
// of the blob's contents, so identical contents added with the same prefix
// share one entry.
package blob

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/ValveSoftware/vogl-sub006/core/data/id"
	"github.com/ValveSoftware/vogl-sub006/core/fault"
)

// ErrNotFound is returned when a blob ID is not in the store.
const ErrNotFound = fault.Const("Blob not found")

// Manager is the interface to a blob store.
type Manager interface {
	// Add stores data and returns its ID.
	Add(ctx context.Context, prefix string, data []byte) (string, error)
	// Get returns the data of the blob with the given ID.
	Get(ctx context.Context, id string) ([]byte, error)
	// Contains returns true if the store has a blob with the given ID.
	Contains(ctx context.Context, id string) bool
	// IDs returns the IDs of all the blobs in sorted order.
	IDs(ctx context.Context) ([]string, error)
}

// MakeID returns the ID of data added with prefix.
func MakeID(prefix string, data []byte) string {
	return sanitize(prefix) + "_" + id.OfBytes(data).String()
}

// sanitize restricts prefixes to characters that are safe in file names.
func sanitize(prefix string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			return r
		}
		return '_'
	}, prefix)
}

// Verify returns an error if data does not hash to the content part of id.
func Verify(blobID string, data []byte) error {
	i := strings.LastIndexByte(blobID, '_')
	if i < 0 || blobID[i+1:] != id.OfBytes(data).String() {
		return errors.Errorf("Blob contents do not match ID %v", blobID)
	}
	return nil
}

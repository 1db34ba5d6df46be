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
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ValveSoftware/vogl-sub006/core/log"
)

const blobExt = ".blob"

// NewDirectory returns a blob store that keeps one file per blob in dir. The
// directory is created if it does not exist.
func NewDirectory(ctx context.Context, dir string) (Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "Creating blob directory %v", dir)
	}
	return &directory{dir: dir}, nil
}

type directory struct {
	dir string
}

func (d *directory) path(id string) (string, error) {
	if id == "" || sanitize(id) != id {
		return "", errors.Wrapf(ErrNotFound, "Invalid blob ID %q", id)
	}
	return filepath.Join(d.dir, id+blobExt), nil
}

// Implements Manager
func (d *directory) Add(ctx context.Context, prefix string, data []byte) (string, error) {
	id := MakeID(prefix, data)
	path, err := d.path(id)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return id, nil
	}
	tmp, err := ioutil.TempFile(d.dir, "tmp-")
	if err != nil {
		return "", errors.Wrap(err, "Creating blob file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", errors.Wrapf(err, "Writing blob %v", id)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrapf(err, "Writing blob %v", id)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", errors.Wrapf(err, "Storing blob %v", id)
	}
	log.D(ctx, "Stored blob %v (%d bytes)", id, len(data))
	return id, nil
}

// Implements Manager
func (d *directory) Get(ctx context.Context, id string) ([]byte, error) {
	path, err := d.path(id)
	if err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "Blob %q", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Reading blob %v", id)
	}
	if err := Verify(id, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Implements Manager
func (d *directory) Contains(ctx context.Context, id string) bool {
	path, err := d.path(id)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Implements Manager
func (d *directory) IDs(ctx context.Context) ([]string, error) {
	files, err := ioutil.ReadDir(d.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "Listing blob directory %v", d.dir)
	}
	ids := []string{}
	for _, f := range files {
		if name := f.Name(); !f.IsDir() && strings.HasSuffix(name, blobExt) {
			ids = append(ids, strings.TrimSuffix(name, blobExt))
		}
	}
	sort.Strings(ids)
	return ids, nil
}

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

package pixfmt

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ValveSoftware/vogl-sub006/gl"
)

var (
	initOnce sync.Once
	byFmt    map[gl.Enum]*Descriptor
	sorted   []*Descriptor
)

// Init builds the catalog. It is safe to call more than once; only the first
// call does any work. Find and All call it implicitly.
func Init() {
	initOnce.Do(func() {
		entries := table()
		byFmt = make(map[gl.Enum]*Descriptor, len(entries))
		sorted = make([]*Descriptor, 0, len(entries))
		for i := range entries {
			d := &entries[i]
			if err := d.validate(); err != nil {
				panic(err)
			}
			if _, dup := byFmt[d.Fmt]; dup {
				panic(fmt.Errorf("Duplicate pixel format %v", d.Fmt))
			}
			byFmt[d.Fmt] = d
			sorted = append(sorted, d)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fmt < sorted[j].Fmt })
	})
}

// Find returns the descriptor for the internal format f, or nil if the format
// is not supported.
func Find(f gl.Enum) *Descriptor {
	Init()
	return byFmt[f]
}

// All returns every descriptor in the catalog, ordered by enum value.
func All() []*Descriptor {
	Init()
	return sorted
}

func (d *Descriptor) validate() error {
	if d.ActualInternalFmt == gl.NONE {
		return fmt.Errorf("%v has no actual internal format", d.Name)
	}
	if d.BlockWidth < 1 || d.BlockHeight < 1 || d.ImageBytesPerPixelOrBlock < 1 {
		return fmt.Errorf("%v has an invalid block size", d.Name)
	}
	if d.Compressed {
		if d.NumComponents() != 0 {
			return fmt.Errorf("Compressed format %v has a component table", d.Name)
		}
		if d.OptimumGetImageFmt != gl.NONE || d.OptimumGetImageType != gl.NONE {
			return fmt.Errorf("Compressed format %v has a get image format", d.Name)
		}
	} else if d.BlockWidth != 1 || d.BlockHeight != 1 {
		return fmt.Errorf("Uncompressed format %v has a block size", d.Name)
	}
	return nil
}

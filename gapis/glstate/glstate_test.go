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

package glstate_test

import (
	"context"
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gapis/glstate"
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/gltest"
)

func setup(t *testing.T) (context.Context, *gltest.Driver, *glstate.Context) {
	ctx := log.Testing(t)
	d := gltest.New()
	c, err := glstate.NewContext(ctx, d, gltest.NewSplitter(d))
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	return ctx, d, c
}

func fill(n int, seed byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = seed + byte(i)
	}
	return out
}

// newTexture2D creates a texture with the given RGBA8 levels and leaves
// TEXTURE_2D unbound.
func newTexture2D(d *gltest.Driver, width, height int, levels map[int][]byte) uint32 {
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D, tex)
	for level, data := range levels {
		w, h := width>>uint(level), height>>uint(level)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		d.TexImage2D(gl.TEXTURE_2D, int32(level), gl.RGBA8, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, data)
	}
	d.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func image(d *gltest.Driver, tex uint32, face gl.Enum, level int) *gltest.Image {
	t := d.Texture(tex)
	if t == nil {
		return nil
	}
	return t.Images[gltest.ImageKey{Face: face, Level: level}]
}

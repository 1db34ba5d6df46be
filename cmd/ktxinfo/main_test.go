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

package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

func writeKTX(t *testing.T, tex *ktx.Texture) string {
	path := filepath.Join(t.TempDir(), "test.ktx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()
	if err := tex.Write(f); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	return path
}

func TestDescribe(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	tex := &ktx.Texture{}
	tex.Init2D(4, 2, 2, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)
	tex.AddImage(0, 0, 0, 0, make([]byte, 32))
	tex.AddImage(1, 0, 0, 0, make([]byte, 8))
	tex.AddKeyValueString(ktx.KeyOrientation, "S=r,T=u")
	path := writeKTX(t, tex)

	opts = options{Check: true, Images: true}
	defer func() { opts = options{} }()
	out := &bytes.Buffer{}
	if !assert.For("describe").ThatError(describe(ctx, out, path)).Succeeded() {
		return
	}
	text := out.String()
	assert.For("format").ThatString(text).Contains("GL_RGBA8")
	assert.For("size").ThatString(text).Contains("4x2x0")
	assert.For("key").ThatString(text).Contains(`KTXorientation = "S=r,T=u"`)
	assert.For("mip 1").ThatString(text).Contains("mip 1: 2x1x1, 8 bytes per image")
	assert.For("image").ThatString(text).Contains("array 0 face 0 zslice 0: 32 bytes")
	assert.For("check").ThatString(text).Contains("consistency check passed")
}

func TestDescribeBadFile(t *testing.T) {
	ctx := log.Testing(t)
	path := filepath.Join(t.TempDir(), "bad.ktx")
	os.WriteFile(path, []byte("not a ktx file"), 0666)
	assert.To(t).For("describe").ThatError(describe(ctx, &bytes.Buffer{}, path)).Failed()
}

func TestPrintable(t *testing.T) {
	assert := assert.To(t)
	assert.For("string").ThatString(printable([]byte("abc\x00"))).Equals(`"abc"`)
	assert.For("binary").ThatString(printable([]byte{1, 2})).Equals("01 02")
}

func TestExportImages(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	tex := &ktx.Texture{}
	tex.Init2D(2, 2, 1, gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE)
	// Bottom row red, top row blue.
	tex.AddImage(0, 0, 0, 0, []byte{
		255, 0, 0, 255, 0, 0,
		0, 0, 255, 0, 0, 255,
	})
	tex.AddKeyValueString(ktx.KeyOrientation, "S=r,T=u")
	dir := t.TempDir()
	files, err := exportImages(ctx, tex, "test", dir, 2)
	if !assert.For("export").ThatError(err).Succeeded() {
		return
	}
	assert.For("files").ThatSlice(files).Equals([]string{filepath.Join(dir, "test_a0_f0_z0.png")})

	f, err := os.Open(files[0])
	if !assert.For("open").ThatError(err).Succeeded() {
		return
	}
	defer f.Close()
	img, err := png.Decode(f)
	if !assert.For("decode").ThatError(err).Succeeded() {
		return
	}
	assert.For("bounds").That(img.Bounds()).Equals(image.Rect(0, 0, 4, 4))
	r, _, b, a := img.At(3, 0).RGBA()
	assert.For("top blue").ThatInteger(int(b >> 8)).Equals(255)
	assert.For("top red").ThatInteger(int(r >> 8)).Equals(0)
	assert.For("opaque").ThatInteger(int(a >> 8)).Equals(255)
	r, _, _, _ = img.At(0, 3).RGBA()
	assert.For("bottom red").ThatInteger(int(r >> 8)).Equals(255)

	compressed := &ktx.Texture{}
	compressed.Init2D(4, 4, 1, gl.COMPRESSED_RGB_S3TC_DXT1_EXT, gl.NONE, gl.NONE)
	_, err = exportImages(ctx, compressed, "dxt", dir, 1)
	assert.For("compressed").ThatError(err).Failed()
}

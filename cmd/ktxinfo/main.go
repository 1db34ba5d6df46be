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

// The ktxinfo command prints the header, key/value data and image sizes of
// KTX files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ValveSoftware/vogl-sub006/core/app"
	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

type options struct {
	Check  bool   `help:"run a consistency check on every file"`
	Images bool   `help:"list the size of every image"`
	Export string `help:"write the level 0 images of 8 bit formats to this directory as PNG"`
	Scale  int    `help:"the magnification of exported images"`
}

var opts options

func main() {
	app.ShortHelp = "ktxinfo prints the contents of KTX files"
	app.ShortUsage = "<files>"
	app.Flags.Bind("", &opts, "")
	app.Run(run)
}

func run(ctx context.Context) error {
	files := app.Flags.Args()
	if len(files) == 0 {
		app.Usage(ctx, "At least one file is required")
	}
	failed := 0
	for _, path := range files {
		if err := describe(ctx, os.Stdout, path); err != nil {
			log.E(ctx, "%v: %v", path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func describe(ctx context.Context, w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	tex, err := ktx.Read(f)
	if err != nil {
		return err
	}
	h := tex.Header
	fmt.Fprintf(w, "%s:\n", path)
	fmt.Fprintf(w, "  internal format: %v\n", gl.Enum(h.GLInternalFormat))
	fmt.Fprintf(w, "  base format:     %v\n", gl.Enum(h.GLBaseInternalFormat))
	fmt.Fprintf(w, "  format/type:     %v %v\n", tex.Format(), tex.Type())
	fmt.Fprintf(w, "  size:            %dx%dx%d\n", h.PixelWidth, h.PixelHeight, h.PixelDepth)
	fmt.Fprintf(w, "  array elements:  %d\n", h.NumberOfArrayElements)
	fmt.Fprintf(w, "  faces:           %d\n", h.NumberOfFaces)
	fmt.Fprintf(w, "  mip levels:      %d\n", h.NumberOfMipmapLevels)
	if tex.IsCompressed() {
		bw, bh, bytes := tex.BlockSize()
		fmt.Fprintf(w, "  blocks:          %dx%d, %d bytes\n", bw, bh, bytes)
	}
	kvs := tex.KeyValues()
	fmt.Fprintf(w, "  key/values:      %d (%d bytes)\n", len(kvs), h.BytesOfKeyValueData)
	for _, kv := range kvs {
		fmt.Fprintf(w, "    %s = %s\n", kv.Key, printable(kv.Value))
	}
	for mip := 0; mip < tex.NumMips(); mip++ {
		mw, mh, md := tex.MipDimensions(mip)
		fmt.Fprintf(w, "  mip %d: %dx%dx%d, %d bytes per image\n", mip, mw, mh, md, tex.ExpectedImageSize(mip))
		if !opts.Images {
			continue
		}
		for array := 0; array < tex.ArraySize(); array++ {
			for face := 0; face < tex.NumFaces(); face++ {
				for z := 0; z < md; z++ {
					fmt.Fprintf(w, "    array %d face %d zslice %d: %d bytes\n",
						array, face, z, len(tex.ImageData(mip, array, face, z)))
				}
			}
		}
	}
	if opts.Check {
		if err := tex.ConsistencyCheck(); err != nil {
			return err
		}
		fmt.Fprintf(w, "  consistency check passed\n")
	}
	if opts.Export != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		files, err := exportImages(ctx, tex, name, opts.Export, opts.Scale)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  exported %d images to %v\n", len(files), opts.Export)
	}
	return nil
}

// printable returns v as text when it is a NUL terminated UTF-8 string and
// as hex otherwise.
func printable(v []byte) string {
	if n := len(v); n > 0 && v[n-1] == 0 && utf8.Valid(v[:n-1]) {
		return fmt.Sprintf("%q", v[:n-1])
	}
	return fmt.Sprintf("% x", v)
}

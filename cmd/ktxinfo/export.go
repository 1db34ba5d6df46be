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
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

// channelCounts lists the 8 bit per channel formats that can be exported.
var channelCounts = map[gl.Enum]int{
	gl.RED:  1,
	gl.RG:   2,
	gl.RGB:  3,
	gl.RGBA: 4,
}

// toNRGBA converts one tightly packed 8 bit image to an NRGBA image. Rows are
// flipped when flip is set. Missing channels are 0, alpha defaults to opaque.
func toNRGBA(data []byte, width, height, channels int, flip bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := y
		if flip {
			row = height - 1 - y
		}
		for x := 0; x < width; x++ {
			src := data[(row*width+x)*channels:]
			dst := img.Pix[y*img.Stride+x*4:]
			dst[3] = 0xff
			copy(dst[:channels], src[:channels])
		}
	}
	return img
}

// exportImages writes every level 0 image of tex to dir as PNG, scaled up by
// scale with nearest neighbour filtering. The names of the written files are
// returned.
func exportImages(ctx context.Context, tex *ktx.Texture, name, dir string, scale int) ([]string, error) {
	channels, ok := channelCounts[tex.Format()]
	if tex.IsCompressed() || tex.Type() != gl.UNSIGNED_BYTE || !ok {
		return nil, fmt.Errorf("Cannot export %v %v images", tex.Format(), tex.Type())
	}
	if scale < 1 {
		scale = 1
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	orientation, _ := tex.KeyValueString(ktx.KeyOrientation)
	flip := strings.Contains(orientation, "T=u")
	w, h, depth := tex.MipDimensions(0)
	out := []string{}
	for array := 0; array < tex.ArraySize(); array++ {
		for face := 0; face < tex.NumFaces(); face++ {
			for z := 0; z < depth; z++ {
				data := tex.ImageData(0, array, face, z)
				if len(data) < w*h*channels {
					log.W(ctx, "Skipping incomplete image array %d face %d zslice %d", array, face, z)
					continue
				}
				src := toNRGBA(data, w, h, channels, flip)
				dst := image.NewNRGBA(image.Rect(0, 0, w*scale, h*scale))
				xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
				path := filepath.Join(dir, fmt.Sprintf("%s_a%d_f%d_z%d.png", name, array, face, z))
				if err := writePNG(path, dst); err != nil {
					return out, err
				}
				out = append(out, path)
			}
		}
	}
	return out, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

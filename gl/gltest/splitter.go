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

package gltest

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ValveSoftware/vogl-sub006/gapis/glstate"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

// Splitter moves samples directly between the images of a Driver.
type Splitter struct {
	D *Driver
}

var _ glstate.MSAASplitter = (*Splitter)(nil)

// NewSplitter returns a splitter for the textures of d.
func NewSplitter(d *Driver) *Splitter { return &Splitter{D: d} }

func (s *Splitter) image(target gl.Enum, tex uint32) (*Image, error) {
	t := s.D.textures[tex]
	if t == nil || t.Target != target {
		return nil, errors.Errorf("Texture %d is not a %v texture", tex, target)
	}
	img := t.Images[ImageKey{target, 0}]
	if img == nil {
		return nil, errors.Errorf("Texture %d has no storage", tex)
	}
	return img, nil
}

func (s *Splitter) newPlane(target gl.Enum, shape *Image, format gl.Enum, data []byte) uint32 {
	n := s.D.GenTexture()
	t := s.D.textures[n]
	t.Target = target
	t.Params[gl.TEXTURE_MAX_LEVEL] = []float32{0}
	t.Images[ImageKey{target, 0}] = &Image{
		Width:          shape.Width,
		Height:         shape.Height,
		Depth:          shape.Depth,
		InternalFormat: format,
		Samples:        1,
		Data:           [][]byte{data},
	}
	return n
}

func (s *Splitter) Split(ctx context.Context, src gl.Enum, srcTex uint32) ([]uint32, error) {
	img, err := s.image(src, srcTex)
	if err != nil {
		return nil, err
	}
	layout, hasStencil := glstate.FindStencilLayout(img.InternalFormat)
	planes := []uint32{}
	for _, sample := range img.Data {
		data := append([]byte(nil), sample...)
		if hasStencil {
			for i := layout.Offset; i < len(data); i += layout.Stride {
				data[i] = 0
			}
		}
		planes = append(planes, s.newPlane(glstate.SplitTarget(src), img, img.InternalFormat, data))
	}
	return planes, nil
}

func (s *Splitter) SplitStencil(ctx context.Context, src gl.Enum, srcTex uint32) ([]uint32, error) {
	img, err := s.image(src, srcTex)
	if err != nil {
		return nil, err
	}
	layout, ok := glstate.FindStencilLayout(img.InternalFormat)
	if !ok {
		return nil, errors.Errorf("%v has no stencil", img.InternalFormat)
	}
	planes := []uint32{}
	for _, sample := range img.Data {
		proxy := make([]byte, img.Width*img.Height*img.Depth*4)
		layout.ExtractStencil(sample, proxy)
		planes = append(planes, s.newPlane(glstate.SplitTarget(src), img, glstate.StencilProxyFormat, proxy))
	}
	return planes, nil
}

func (s *Splitter) planes(dst gl.Enum, img *Image, planes []uint32) ([][]byte, error) {
	if len(planes) != img.Samples {
		return nil, errors.Errorf("%d planes for %d samples", len(planes), img.Samples)
	}
	out := make([][]byte, len(planes))
	for i, p := range planes {
		plane, err := s.image(glstate.SplitTarget(dst), p)
		if err != nil {
			return nil, err
		}
		if plane.Width != img.Width || plane.Height != img.Height || plane.Depth != img.Depth {
			return nil, errors.Errorf("Plane %d is %dx%dx%d, expected %dx%dx%d", i,
				plane.Width, plane.Height, plane.Depth, img.Width, img.Height, img.Depth)
		}
		out[i] = plane.Data[0]
	}
	return out, nil
}

func (s *Splitter) Combine(ctx context.Context, planes []uint32, dst gl.Enum, dstTex uint32) error {
	img, err := s.image(dst, dstTex)
	if err != nil {
		return err
	}
	data, err := s.planes(dst, img, planes)
	if err != nil {
		return err
	}
	layout, hasStencil := glstate.FindStencilLayout(img.InternalFormat)
	for i, in := range data {
		out := img.Data[i]
		if len(in) != len(out) {
			return errors.Errorf("Plane %d holds %d bytes, expected %d", i, len(in), len(out))
		}
		for j := range out {
			if hasStencil && j%layout.Stride == layout.Offset {
				continue
			}
			out[j] = in[j]
		}
	}
	return nil
}

func (s *Splitter) CombineStencil(ctx context.Context, planes []uint32, dst gl.Enum, dstTex uint32) error {
	img, err := s.image(dst, dstTex)
	if err != nil {
		return err
	}
	layout, ok := glstate.FindStencilLayout(img.InternalFormat)
	if !ok {
		return errors.Errorf("%v has no stencil", img.InternalFormat)
	}
	data, err := s.planes(dst, img, planes)
	if err != nil {
		return err
	}
	for i, proxy := range data {
		layout.MergeStencil(proxy, img.Data[i])
	}
	return nil
}

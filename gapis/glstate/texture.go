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

package glstate

import (
	"context"
	"strconv"

	"github.com/ValveSoftware/vogl-sub006/core/fault"
	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/pixfmt"
)

// MaxSamples is the largest sample count a texture snapshot accepts.
const MaxSamples = 32

// Sentinel bytes placed after every readback buffer.
var guardBytes = [2]byte{0xD3, 0x5A}

// LevelKey identifies the level parameters of one face and level. Face is the
// cube face index, 0 for every other target.
type LevelKey struct {
	Face  int
	Level int
}

// TextureState is the captured state of a texture object: its parameters,
// per level parameters and the image data of every sample, one KTX
// container per sample.
type TextureState struct {
	handle      uint64
	target      gl.Enum
	buffer      uint64
	params      ParamTable
	levelParams map[LevelKey]ParamTable
	numSamples  int
	textures    []*ktx.Texture
	unquerable  bool
	valid       bool
}

var _ ObjectState = (*TextureState)(nil)

func (s *TextureState) Kind() Kind             { return KindTexture }
func (s *TextureState) SnapshotHandle() uint64 { return s.handle }
func (s *TextureState) Target() gl.Enum        { return s.target }
func (s *TextureState) IsValid() bool          { return s.valid }

// IsUnquerable returns true if the texture had no defined levels when it was
// captured. Only its parameters are restored.
func (s *TextureState) IsUnquerable() bool { return s.unquerable }

// Buffer returns the buffer backing a TEXTURE_BUFFER texture.
func (s *TextureState) Buffer() uint64 { return s.buffer }

// NumSamples returns the number of samples captured, 0 if there is no image
// data.
func (s *TextureState) NumSamples() int { return s.numSamples }

// Params returns the captured texture parameters.
func (s *TextureState) Params() ParamTable { return s.params }

// LevelParams returns the parameters of the given face and level, or nil if
// the level was not defined.
func (s *TextureState) LevelParams(face, level int) ParamTable {
	return s.levelParams[LevelKey{face, level}]
}

// Texture returns the KTX container of the given sample, or nil.
func (s *TextureState) Texture(sample int) *ktx.Texture {
	if sample < 0 || sample >= len(s.textures) {
		return nil
	}
	return s.textures[sample]
}

func (s *TextureState) Clear() { *s = TextureState{} }

// RemapHandles rewrites the backing buffer of buffer textures. The texture
// name itself is remapped by Restore.
func (s *TextureState) RemapHandles(r HandleRemapper) {
	if s.buffer != 0 && r != nil {
		s.buffer = r.RemapHandle(Buffers, s.buffer)
	}
}

// Snapshot captures the texture handle, which must have been bound to target
// at least once. A target of NONE captures a name that was generated but
// never bound. On failure the state is cleared.
func (s *TextureState) Snapshot(ctx context.Context, c *Context, handle uint64, target gl.Enum) (err error) {
	ctx = log.Enter(ctx, "TextureState.Snapshot")
	ctx = log.V{"handle": handle, "target": target}.Bind(ctx)
	s.Clear()
	defer func() {
		if err != nil {
			s.Clear()
		}
	}()
	s.handle, s.target = handle, target
	s.levelParams = map[LevelKey]ParamTable{}
	if target == gl.NONE {
		s.valid = true
		return nil
	}
	if gl.TextureBinding(target) == gl.NONE {
		return log.Errf(ctx, ErrUnsupportedTarget, "Texture target %v", target)
	}
	if err := gl.CheckError(c.GL); err != nil {
		log.W(ctx, "Discarding pending error: %v", err)
	}

	t := newTweaker(c.GL)
	defer t.revert(ctx)
	t.neutralizePixelTransfer()
	t.bindTexture(target, uint32(handle))
	if err := gl.CheckError(c.GL); err != nil {
		return log.Errf(ctx, err, "Binding texture")
	}

	if target == gl.TEXTURE_BUFFER {
		return s.snapshotBuffer(ctx, c)
	}
	s.params = captureTextureParams(ctx, c, target)
	if err := s.snapshotImages(ctx, c, t); err != nil {
		return err
	}
	s.valid = true
	return nil
}

func (s *TextureState) snapshotBuffer(ctx context.Context, c *Context) error {
	buffer := gl.GetTexLevelParameter(c.GL, gl.TEXTURE_BUFFER, 0, gl.TEXTURE_BUFFER_DATA_STORE_BINDING)
	format := gl.GetTexLevelParameter(c.GL, gl.TEXTURE_BUFFER, 0, gl.TEXTURE_INTERNAL_FORMAT)
	if err := gl.CheckError(c.GL); err != nil {
		return log.Errf(ctx, err, "Querying the texture buffer")
	}
	s.buffer = uint64(buffer)
	lp := ParamTable{}
	lp.SetInts(gl.TEXTURE_INTERNAL_FORMAT, format)
	s.levelParams[LevelKey{}] = lp
	s.valid = true
	return nil
}

// shape is the level 0 geometry of a texture.
type shape struct {
	width, height, depth int
	layers               int
	mips                 int
}

// slices returns the number of 2D images a GL readback of level holds.
func (sh shape) slices(target gl.Enum, level int) int {
	switch target {
	case gl.TEXTURE_3D:
		return mipSize(sh.depth, level)
	case gl.TEXTURE_1D_ARRAY, gl.TEXTURE_2D_ARRAY, gl.TEXTURE_2D_MULTISAMPLE_ARRAY:
		return sh.layers
	case gl.TEXTURE_CUBE_MAP_ARRAY:
		return sh.layers * 6
	}
	return 1
}

func mipSize(d, level int) int {
	if d = d >> uint(level); d < 1 {
		return 1
	}
	return d
}

func mipCount(dims ...int) int {
	max := 0
	for _, d := range dims {
		if d > max {
			max = d
		}
	}
	n := 1
	for max > 1 {
		max >>= 1
		n++
	}
	return n
}

func faceTarget(target gl.Enum, face int) gl.Enum {
	if target == gl.TEXTURE_CUBE_MAP {
		return gl.CubeFaces[face]
	}
	return target
}

func (s *TextureState) snapshotImages(ctx context.Context, c *Context, t *tweaker) error {
	target := s.target
	probe := faceTarget(target, 0)
	levelWidth := func(level int) int32 {
		w := gl.GetTexLevelParameter(c.GL, probe, int32(level), gl.TEXTURE_WIDTH)
		if gl.CheckError(c.GL) != nil {
			return 0
		}
		return w
	}

	highest := -1
	for level := c.Info.MaxTextureLevels(target) - 1; level >= 0; level-- {
		if levelWidth(level) > 0 {
			highest = level
			break
		}
	}
	if highest < 0 {
		log.W(ctx, "Texture has no defined levels, only its parameters are captured")
		s.unquerable = true
		return nil
	}
	if max, ok := s.params.Int(gl.TEXTURE_MAX_LEVEL); ok && int(max) < highest {
		log.W(ctx, "Highest defined level %d is above MAX_LEVEL %d", highest, max)
	}

	base := 0
	if b, ok := s.params.Int(gl.TEXTURE_BASE_LEVEL); ok && b >= 0 && int(b) <= highest {
		base = int(b)
	}
	if levelWidth(base) == 0 {
		for base = 0; base < highest && levelWidth(base) == 0; base++ {
		}
	}

	query := func(level int, pname gl.Enum) (int, error) {
		v := gl.GetTexLevelParameter(c.GL, probe, int32(level), pname)
		if err := gl.CheckError(c.GL); err != nil {
			return 0, log.Errf(ctx, err, "Querying %v of level %d", pname, level)
		}
		return int(v), nil
	}
	var width, height, depth, format, samples int
	for _, q := range []struct {
		pname gl.Enum
		out   *int
	}{
		{gl.TEXTURE_WIDTH, &width},
		{gl.TEXTURE_HEIGHT, &height},
		{gl.TEXTURE_DEPTH, &depth},
		{gl.TEXTURE_INTERNAL_FORMAT, &format},
		{gl.TEXTURE_SAMPLES, &samples},
	} {
		v, err := query(base, q.pname)
		if err != nil {
			return err
		}
		*q.out = v
	}

	// Level 0 geometry. Shifting the base level up only restores dimensions
	// that never rounded down, so a defined level 0 is queried instead.
	w0, h0, d0 := width<<uint(base), height<<uint(base), depth<<uint(base)
	if base > 0 && levelWidth(0) > 0 {
		for _, q := range []struct {
			pname gl.Enum
			out   *int
		}{
			{gl.TEXTURE_WIDTH, &w0},
			{gl.TEXTURE_HEIGHT, &h0},
			{gl.TEXTURE_DEPTH, &d0},
		} {
			v, err := query(0, q.pname)
			if err != nil {
				return err
			}
			*q.out = v
		}
	}
	internalFormat := gl.Enum(format)
	desc := pixfmt.Find(internalFormat)
	if desc == nil {
		return log.Errf(ctx, ErrUnsupportedFormat, "Internal format %v", internalFormat)
	}
	ctx = log.V{"format": internalFormat}.Bind(ctx)

	ms := gl.IsMultisampleTarget(target)
	if samples < 1 {
		samples = 1
	}
	switch {
	case samples > 1 && !ms:
		return log.Errf(ctx, ErrInconsistentState, "%d samples reported for single sample target", samples)
	case samples > MaxSamples:
		return log.Errf(ctx, ErrInconsistentState, "%d samples exceeds the limit of %d", samples, MaxSamples)
	}

	sh := shape{width: w0}
	switch target {
	case gl.TEXTURE_1D:
	case gl.TEXTURE_1D_ARRAY:
		sh.layers = height
	case gl.TEXTURE_3D:
		sh.height, sh.depth = h0, d0
	case gl.TEXTURE_2D_ARRAY, gl.TEXTURE_2D_MULTISAMPLE_ARRAY:
		sh.height, sh.layers = h0, depth
	case gl.TEXTURE_CUBE_MAP_ARRAY:
		sh.height, sh.layers = h0, depth/6
	default:
		sh.height = h0
	}
	sh.mips = highest + 1
	if n := mipCount(sh.width, sh.height, sh.depth); sh.mips > n {
		sh.mips = n
	}

	s.numSamples = samples
	s.textures = make([]*ktx.Texture, samples)
	for i := range s.textures {
		tex, err := newContainer(target, sh, internalFormat, desc)
		if err != nil {
			return log.Errf(ctx, err, "Initializing the container of a %dx%dx%d texture with %d layers and %d levels",
				sh.width, sh.height, sh.depth, sh.layers, sh.mips)
		}
		s.textures[i] = tex
	}

	var failed fault.List
	faces := 1
	if target == gl.TEXTURE_CUBE_MAP {
		faces = 6
	}
	if ms {
		if err := s.readMultisample(ctx, c, t, sh, desc, &failed); err != nil {
			return err
		}
	} else {
		for face := 0; face < faces; face++ {
			for level := 0; level < sh.mips; level++ {
				if err := s.readLevel(ctx, c, sh, desc, face, level, &failed); err != nil {
					return err
				}
			}
		}
	}
	if len(failed) > 0 {
		log.W(ctx, "%d level parameters could not be queried:\n%v", len(failed), failed)
	}

	maxLevel := highest
	if m, ok := s.params.Int(gl.TEXTURE_MAX_LEVEL); ok {
		maxLevel = int(m)
	}
	for _, tex := range s.textures {
		tex.AddKeyValueString(ktx.KeyOrientation, orientation(target))
		tex.AddKeyValueString(ktx.KeyTarget, strconv.Itoa(int(target)))
		tex.AddKeyValueString(ktx.KeyBaseLevel, strconv.Itoa(base))
		tex.AddKeyValueString(ktx.KeyMaxLevel, strconv.Itoa(maxLevel))
		if err := tex.ConsistencyCheck(); err != nil {
			return log.Err(ctx, err, "Captured texture is inconsistent")
		}
	}
	return nil
}

func orientation(target gl.Enum) string {
	switch target {
	case gl.TEXTURE_1D:
		return "S=r"
	case gl.TEXTURE_3D:
		return "S=r,T=u,R=o"
	}
	return "S=r,T=u"
}

func newContainer(target gl.Enum, sh shape, f gl.Enum, desc *pixfmt.Descriptor) (*ktx.Texture, error) {
	tex := &ktx.Texture{}
	format, ty := desc.OptimumGetImageFmt, desc.OptimumGetImageType
	var err error
	switch target {
	case gl.TEXTURE_1D:
		err = tex.Init1D(sh.width, sh.mips, f, format, ty)
	case gl.TEXTURE_1D_ARRAY:
		err = tex.Init1DArray(sh.width, sh.layers, sh.mips, f, format, ty)
	case gl.TEXTURE_2D_ARRAY, gl.TEXTURE_2D_MULTISAMPLE_ARRAY:
		err = tex.Init2DArray(sh.width, sh.height, sh.layers, sh.mips, f, format, ty)
	case gl.TEXTURE_3D:
		err = tex.Init3D(sh.width, sh.height, sh.depth, sh.mips, f, format, ty)
	case gl.TEXTURE_CUBE_MAP:
		err = tex.InitCubemap(sh.width, sh.mips, f, format, ty)
	case gl.TEXTURE_CUBE_MAP_ARRAY:
		err = tex.InitCubemapArray(sh.width, sh.layers, sh.mips, f, format, ty)
	default:
		err = tex.Init2D(sh.width, sh.height, sh.mips, f, format, ty)
	}
	if err != nil {
		return nil, err
	}
	return tex, nil
}

// levelPresent reports whether the level parameters describe the expected
// image of level in format f.
func levelPresent(target gl.Enum, lp ParamTable, sh shape, level int, f gl.Enum) bool {
	w, _ := lp.Int(gl.TEXTURE_WIDTH)
	h, _ := lp.Int(gl.TEXTURE_HEIGHT)
	d, _ := lp.Int(gl.TEXTURE_DEPTH)
	ifmt, _ := lp.Int(gl.TEXTURE_INTERNAL_FORMAT)
	if w == 0 || gl.Enum(ifmt) != f || int(w) != mipSize(sh.width, level) {
		return false
	}
	switch target {
	case gl.TEXTURE_1D:
		return true
	case gl.TEXTURE_1D_ARRAY:
		return int(h) == sh.layers
	case gl.TEXTURE_3D:
		return int(h) == mipSize(sh.height, level) && int(d) == mipSize(sh.depth, level)
	case gl.TEXTURE_2D_ARRAY, gl.TEXTURE_2D_MULTISAMPLE_ARRAY:
		return int(h) == mipSize(sh.height, level) && int(d) == sh.layers
	case gl.TEXTURE_CUBE_MAP_ARRAY:
		return int(h) == mipSize(sh.height, level) && int(d) == sh.layers*6
	}
	return int(h) == mipSize(sh.height, level)
}

// readback reads size bytes with read, failing if the driver writes past the
// end of the buffer.
func readback(ctx context.Context, c *Context, size int, what string, read func([]byte)) ([]byte, error) {
	buf := make([]byte, size+len(guardBytes))
	copy(buf[size:], guardBytes[:])
	read(buf)
	if err := gl.CheckError(c.GL); err != nil {
		return nil, log.Errf(ctx, err, "Reading %s", what)
	}
	if buf[size] != guardBytes[0] || buf[size+1] != guardBytes[1] {
		return nil, log.Errf(ctx, ErrBufferOverrun, "Reading %s of %d bytes", what, size)
	}
	return buf[:size:size], nil
}

func (s *TextureState) readLevel(ctx context.Context, c *Context, sh shape, desc *pixfmt.Descriptor, face, level int, failed *fault.List) error {
	target := faceTarget(s.target, face)
	tex := s.textures[0]
	imageSize := tex.ExpectedImageSize(level)
	slices := sh.slices(s.target, level)
	size := imageSize * slices

	var data []byte
	lp := captureLevelParams(c, target, level, failed)
	if levelPresent(s.target, lp, sh, level, desc.ActualInternalFmt) || levelPresent(s.target, lp, sh, level, desc.Fmt) {
		s.levelParams[LevelKey{face, level}] = lp
		what := "level " + strconv.Itoa(level) + " of " + target.String()
		var err error
		if desc.Compressed {
			if n, _ := lp.Int(gl.TEXTURE_COMPRESSED_IMAGE_SIZE); int(n) != size {
				return log.Errf(ctx, ErrInconsistentState, "Compressed size of %s is %d, expected %d", what, n, size)
			}
			data, err = readback(ctx, c, size, what, func(b []byte) {
				c.GL.GetCompressedTexImage(target, int32(level), b)
			})
		} else {
			data, err = readback(ctx, c, size, what, func(b []byte) {
				c.GL.GetTexImage(target, int32(level), desc.OptimumGetImageFmt, desc.OptimumGetImageType, b)
			})
		}
		if err != nil {
			return err
		}
	} else {
		// Levels that are missing or do not match the base level are stored
		// as zeroed placeholders sized from the base level format.
		data = make([]byte, size)
	}
	return addSlices(tex, s.target, face, level, imageSize, data)
}

// addSlices stores the GL readback data of one face and level in tex.
func addSlices(tex *ktx.Texture, target gl.Enum, face, level, imageSize int, data []byte) error {
	slices := len(data) / imageSize
	if slices == 1 {
		return tex.AddImageGrantOwnership(level, 0, face, 0, &data)
	}
	for i := 0; i < slices; i++ {
		part := data[i*imageSize : (i+1)*imageSize]
		var err error
		switch target {
		case gl.TEXTURE_3D:
			err = tex.AddImage(level, 0, 0, i, part)
		case gl.TEXTURE_CUBE_MAP_ARRAY:
			err = tex.AddImage(level, i/6, i%6, 0, part)
		default:
			err = tex.AddImage(level, i, 0, 0, part)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// gatherSlices concatenates the images of one face and level in GL upload
// order.
func gatherSlices(tex *ktx.Texture, target gl.Enum, face, level, slices int) []byte {
	out := make([]byte, 0, tex.ExpectedImageSize(level)*slices)
	for i := 0; i < slices; i++ {
		switch target {
		case gl.TEXTURE_3D:
			out = append(out, tex.ImageData(level, 0, 0, i)...)
		case gl.TEXTURE_CUBE_MAP_ARRAY:
			out = append(out, tex.ImageData(level, i/6, i%6, 0)...)
		case gl.TEXTURE_1D_ARRAY, gl.TEXTURE_2D_ARRAY, gl.TEXTURE_2D_MULTISAMPLE_ARRAY:
			out = append(out, tex.ImageData(level, i, 0, 0)...)
		default:
			out = append(out, tex.ImageData(level, 0, face, 0)...)
		}
	}
	return out
}

func (s *TextureState) readMultisample(ctx context.Context, c *Context, t *tweaker, sh shape, desc *pixfmt.Descriptor, failed *fault.List) error {
	if c.Splitter == nil {
		return log.Err(ctx, ErrNoSplitter, "Capturing multisample texture")
	}
	lp := captureLevelParams(c, s.target, 0, failed)
	s.levelParams[LevelKey{}] = lp
	splitTarget := SplitTarget(s.target)
	imageSize := s.textures[0].ExpectedImageSize(0)
	slices := sh.slices(s.target, 0)
	size := imageSize * slices

	planes := make([][]byte, s.numSamples)
	if desc.HasDepth() || !desc.HasStencil() {
		names, err := c.Splitter.Split(ctx, s.target, uint32(s.handle))
		if err != nil {
			return log.Err(ctx, err, "Splitting samples")
		}
		t.deleteTexturesOnRevert(names)
		if len(names) != s.numSamples {
			return log.Errf(ctx, ErrInconsistentState, "Split returned %d planes for %d samples", len(names), s.numSamples)
		}
		for i, name := range names {
			t.bindTexture(splitTarget, name)
			data, err := readback(ctx, c, size, "sample "+strconv.Itoa(i), func(b []byte) {
				c.GL.GetTexImage(splitTarget, 0, desc.OptimumGetImageFmt, desc.OptimumGetImageType, b)
			})
			if err != nil {
				return err
			}
			planes[i] = data
		}
	} else {
		for i := range planes {
			planes[i] = make([]byte, size)
		}
	}

	if desc.HasStencil() {
		layout, ok := FindStencilLayout(desc.ActualInternalFmt)
		if !ok {
			return log.Errf(ctx, ErrUnsupportedFormat, "No stencil layout")
		}
		names, err := c.Splitter.SplitStencil(ctx, s.target, uint32(s.handle))
		if err != nil {
			return log.Err(ctx, err, "Splitting stencil samples")
		}
		t.deleteTexturesOnRevert(names)
		if len(names) != s.numSamples {
			return log.Errf(ctx, ErrInconsistentState, "SplitStencil returned %d planes for %d samples", len(names), s.numSamples)
		}
		proxySize := sh.width * sh.height * slices * 4
		for i, name := range names {
			t.bindTexture(splitTarget, name)
			proxy, err := readback(ctx, c, proxySize, "stencil of sample "+strconv.Itoa(i), func(b []byte) {
				c.GL.GetTexImage(splitTarget, 0, gl.RGBA, gl.UNSIGNED_BYTE, b)
			})
			if err != nil {
				return err
			}
			layout.MergeStencil(proxy, planes[i])
		}
	}

	for i, data := range planes {
		if err := addSlices(s.textures[i], s.target, 0, 0, imageSize, data); err != nil {
			return log.Errf(ctx, err, "Storing sample %d", i)
		}
	}
	return nil
}

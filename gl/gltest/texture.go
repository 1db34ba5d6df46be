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
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/pixfmt"
)

const maxLevels = 13 // log2(MaxTextureSize) + 1

// Texture is the storage of a texture object.
type Texture struct {
	Target gl.Enum
	Params map[gl.Enum][]float32
	// Images is keyed by face target (the texture target for non cube maps)
	// and level.
	Images map[ImageKey]*Image
	// Buffer and BufferFormat are set for buffer textures.
	Buffer       uint32
	BufferFormat gl.Enum
}

// ImageKey identifies one image of a texture.
type ImageKey struct {
	Face  gl.Enum
	Level int
}

// Image is one level of one face of a texture. Height holds the layer count
// of 1D arrays and Depth the layer count of 2D and cube map arrays (times 6
// for the latter).
type Image struct {
	Width, Height, Depth int
	InternalFormat       gl.Enum
	Samples              int
	FixedLocations       bool
	// Data holds one tightly packed buffer per sample.
	Data [][]byte
}

func (i *Image) desc() *pixfmt.Descriptor { return pixfmt.Find(i.InternalFormat) }

func (i *Image) size() int { return i.desc().ImageSize(i.Width, i.Height, i.Depth) }

var textureParamDefaults = map[gl.Enum][]float32{
	gl.TEXTURE_MIN_FILTER:             {float32(gl.NEAREST_MIPMAP_LINEAR)},
	gl.TEXTURE_MAG_FILTER:             {float32(gl.LINEAR)},
	gl.TEXTURE_WRAP_S:                 {float32(gl.REPEAT)},
	gl.TEXTURE_WRAP_T:                 {float32(gl.REPEAT)},
	gl.TEXTURE_WRAP_R:                 {float32(gl.REPEAT)},
	gl.TEXTURE_MIN_LOD:                {-1000},
	gl.TEXTURE_MAX_LOD:                {1000},
	gl.TEXTURE_BASE_LEVEL:             {0},
	gl.TEXTURE_MAX_LEVEL:              {1000},
	gl.TEXTURE_LOD_BIAS:               {0},
	gl.TEXTURE_COMPARE_MODE:           {float32(gl.NONE)},
	gl.TEXTURE_COMPARE_FUNC:           {float32(gl.LEQUAL)},
	gl.TEXTURE_SWIZZLE_R:              {float32(gl.RED)},
	gl.TEXTURE_SWIZZLE_G:              {float32(gl.GREEN)},
	gl.TEXTURE_SWIZZLE_B:              {float32(gl.BLUE)},
	gl.TEXTURE_SWIZZLE_A:              {float32(gl.ALPHA)},
	gl.TEXTURE_BORDER_COLOR:           {0, 0, 0, 0},
	gl.TEXTURE_MAX_ANISOTROPY_EXT:     {1},
	gl.TEXTURE_SRGB_DECODE_EXT:        {float32(gl.DECODE_EXT)},
	gl.DEPTH_STENCIL_TEXTURE_MODE:     {float32(gl.DEPTH_COMPONENT)},
	gl.TEXTURE_IMMUTABLE_FORMAT:       {0},
	gl.TEXTURE_IMMUTABLE_LEVELS:       {0},
	gl.TEXTURE_FIXED_SAMPLE_LOCATIONS: {1},
}

var readOnlyTextureParams = map[gl.Enum]bool{
	gl.TEXTURE_IMMUTABLE_FORMAT:       true,
	gl.TEXTURE_IMMUTABLE_LEVELS:       true,
	gl.TEXTURE_FIXED_SAMPLE_LOCATIONS: true,
}

func (d *Driver) GenTexture() uint32 {
	n := d.genName()
	d.textures[n] = &Texture{Params: map[gl.Enum][]float32{}, Images: map[ImageKey]*Image{}}
	return n
}

func (d *Driver) DeleteTexture(texture uint32) {
	if texture == 0 {
		return
	}
	delete(d.textures, texture)
	for k, v := range d.texBindings {
		if v == texture {
			delete(d.texBindings, k)
		}
	}
	for _, fb := range d.framebuffers {
		for a, at := range fb.attachments {
			if at.texture == texture {
				delete(fb.attachments, a)
			}
		}
	}
}

func (d *Driver) IsTexture(texture uint32) bool {
	t, ok := d.textures[texture]
	return ok && t.Target != gl.NONE
}

// Texture returns the storage of the texture name, or nil.
func (d *Driver) Texture(texture uint32) *Texture { return d.textures[texture] }

func (d *Driver) ActiveTexture(unit gl.Enum) {
	if unit < gl.TEXTURE0 || unit >= gl.TEXTURE0+32 {
		d.setError(gl.INVALID_ENUM)
		return
	}
	d.activeUnit = int(unit - gl.TEXTURE0)
}

func (d *Driver) BindTexture(target gl.Enum, texture uint32) {
	if gl.TextureBinding(target) == gl.NONE {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if texture != 0 {
		t, ok := d.textures[texture]
		switch {
		case !ok:
			d.setError(gl.INVALID_OPERATION)
			return
		case t.Target == gl.NONE:
			t.Target = target
		case t.Target != target:
			d.setError(gl.INVALID_OPERATION)
			return
		}
	}
	d.texBindings[unitTarget{d.activeUnit, target}] = texture
}

// bound returns the texture bound to target, which may be a cube face.
func (d *Driver) bound(target gl.Enum) (*Texture, gl.Enum) {
	bindTarget := target
	if gl.IsCubeFace(target) {
		bindTarget = gl.TEXTURE_CUBE_MAP
	}
	if gl.TextureBinding(bindTarget) == gl.NONE {
		d.setError(gl.INVALID_ENUM)
		return nil, gl.NONE
	}
	t := d.textures[d.texBindings[unitTarget{d.activeUnit, bindTarget}]]
	if t == nil {
		d.setError(gl.INVALID_OPERATION)
		return nil, gl.NONE
	}
	return t, bindTarget
}

func samplerStateAllowed(target gl.Enum) bool {
	return !gl.IsMultisampleTarget(target) && target != gl.TEXTURE_BUFFER
}

func (d *Driver) TexParameteriv(target, pname gl.Enum, params []int32) {
	v := make([]float32, len(params))
	for i := range params {
		v[i] = float32(params[i])
	}
	d.TexParameterfv(target, pname, v)
}

func (d *Driver) TexParameterfv(target, pname gl.Enum, params []float32) {
	t, _ := d.bound(target)
	if t == nil {
		return
	}
	def, ok := textureParamDefaults[pname]
	if !ok || readOnlyTextureParams[pname] || d.Faults.RejectTexParams[pname] {
		d.setError(gl.INVALID_ENUM)
		return
	}
	switch pname {
	case gl.TEXTURE_BASE_LEVEL, gl.TEXTURE_MAX_LEVEL, gl.DEPTH_STENCIL_TEXTURE_MODE:
	default:
		if !samplerStateAllowed(target) {
			d.setError(gl.INVALID_ENUM)
			return
		}
	}
	if len(params) < len(def) {
		d.setError(gl.INVALID_VALUE)
		return
	}
	t.Params[pname] = append([]float32(nil), params[:len(def)]...)
}

func (d *Driver) GetTexParameterfv(target, pname gl.Enum, params []float32) {
	t, _ := d.bound(target)
	if t == nil {
		return
	}
	if e, ok := d.Faults.TexParamErrors[pname]; ok {
		d.setError(e)
		return
	}
	def, ok := textureParamDefaults[pname]
	if !ok {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if v, ok := t.Params[pname]; ok {
		def = v
	}
	switch pname {
	case gl.TEXTURE_IMMUTABLE_FORMAT, gl.TEXTURE_IMMUTABLE_LEVELS:
		def = []float32{0}
	}
	copy(params, def)
}

func (d *Driver) GetTexParameteriv(target, pname gl.Enum, params []int32) {
	v := make([]float32, len(params))
	d.GetTexParameterfv(target, pname, v)
	for i := range v {
		params[i] = int32(v[i])
	}
}

func (d *Driver) GetTexLevelParameteriv(target gl.Enum, level int32, pname gl.Enum, params []int32) {
	if target == gl.TEXTURE_CUBE_MAP {
		d.setError(gl.INVALID_ENUM)
		return
	}
	t, _ := d.bound(target)
	if t == nil {
		return
	}
	if level < 0 || level >= maxLevels {
		d.setError(gl.INVALID_VALUE)
		return
	}
	if e, ok := d.Faults.LevelParamErrors[pname]; ok {
		d.setError(e)
		return
	}
	img := t.Images[ImageKey{target, int(level)}]
	if target == gl.TEXTURE_BUFFER && level == 0 && d.buffers[t.Buffer] != nil {
		b := d.buffers[t.Buffer]
		desc := pixfmt.Find(t.BufferFormat)
		img = &Image{Width: len(b.Data) / desc.ImageBytesPerPixelOrBlock, Height: 1, Depth: 1, InternalFormat: t.BufferFormat, Samples: 1}
	}
	switch pname {
	case gl.TEXTURE_WIDTH, gl.TEXTURE_HEIGHT, gl.TEXTURE_DEPTH, gl.TEXTURE_SAMPLES,
		gl.TEXTURE_FIXED_SAMPLE_LOCATIONS, gl.TEXTURE_COMPRESSED:
		if img == nil {
			params[0] = 0
			return
		}
	}
	switch pname {
	case gl.TEXTURE_WIDTH:
		params[0] = int32(img.Width)
	case gl.TEXTURE_HEIGHT:
		params[0] = int32(img.Height)
	case gl.TEXTURE_DEPTH:
		params[0] = int32(img.Depth)
	case gl.TEXTURE_SAMPLES:
		if img.Samples > 1 {
			params[0] = int32(img.Samples)
		} else {
			params[0] = 0
		}
	case gl.TEXTURE_FIXED_SAMPLE_LOCATIONS:
		params[0] = boolToInt(img.FixedLocations)
	case gl.TEXTURE_COMPRESSED:
		params[0] = boolToInt(img.desc().Compressed)
	case gl.TEXTURE_INTERNAL_FORMAT:
		if img == nil {
			params[0] = int32(gl.RGBA)
		} else {
			params[0] = int32(img.InternalFormat)
		}
	case gl.TEXTURE_COMPRESSED_IMAGE_SIZE:
		if img == nil || !img.desc().Compressed {
			d.setError(gl.INVALID_OPERATION)
			return
		}
		params[0] = int32(img.size())
	case gl.TEXTURE_BUFFER_DATA_STORE_BINDING:
		params[0] = int32(t.Buffer)
	case gl.TEXTURE_RED_SIZE, gl.TEXTURE_GREEN_SIZE, gl.TEXTURE_BLUE_SIZE, gl.TEXTURE_ALPHA_SIZE,
		gl.TEXTURE_LUMINANCE_SIZE, gl.TEXTURE_INTENSITY_SIZE, gl.TEXTURE_DEPTH_SIZE,
		gl.TEXTURE_STENCIL_SIZE, gl.TEXTURE_SHARED_SIZE:
		if img == nil {
			params[0] = 0
			return
		}
		params[0] = int32(componentSize(img.desc(), pname))
	default:
		d.setError(gl.INVALID_ENUM)
	}
}

func componentSize(desc *pixfmt.Descriptor, pname gl.Enum) int {
	switch pname {
	case gl.TEXTURE_RED_SIZE:
		return desc.CompSizes[pixfmt.Red]
	case gl.TEXTURE_GREEN_SIZE:
		return desc.CompSizes[pixfmt.Green]
	case gl.TEXTURE_BLUE_SIZE:
		return desc.CompSizes[pixfmt.Blue]
	case gl.TEXTURE_ALPHA_SIZE:
		return desc.CompSizes[pixfmt.Alpha]
	case gl.TEXTURE_LUMINANCE_SIZE:
		return desc.CompSizes[pixfmt.Luminance]
	case gl.TEXTURE_INTENSITY_SIZE:
		return desc.CompSizes[pixfmt.Intensity]
	case gl.TEXTURE_DEPTH_SIZE:
		return desc.CompSizes[pixfmt.Depth]
	case gl.TEXTURE_STENCIL_SIZE:
		return desc.CompSizes[pixfmt.Stencil]
	case gl.TEXTURE_SHARED_SIZE:
		return desc.SharedSize
	}
	return 0
}

func rowStride(rowBytes, align int) int {
	if align <= 1 {
		return rowBytes
	}
	return (rowBytes + align - 1) / align * align
}

// checkTransferState fails for pixel store state the driver does not model.
func (d *Driver) checkTransferState(pack bool) bool {
	names := []gl.Enum{gl.UNPACK_ROW_LENGTH, gl.UNPACK_SKIP_ROWS, gl.UNPACK_SKIP_PIXELS,
		gl.UNPACK_SKIP_IMAGES, gl.UNPACK_IMAGE_HEIGHT, gl.UNPACK_SWAP_BYTES, gl.UNPACK_LSB_FIRST}
	buffer := gl.PIXEL_UNPACK_BUFFER
	if pack {
		names = []gl.Enum{gl.PACK_ROW_LENGTH, gl.PACK_SKIP_ROWS, gl.PACK_SKIP_PIXELS,
			gl.PACK_SKIP_IMAGES, gl.PACK_IMAGE_HEIGHT, gl.PACK_SWAP_BYTES, gl.PACK_LSB_FIRST}
		buffer = gl.PIXEL_PACK_BUFFER
	}
	for _, n := range names {
		if d.pixelStore[n] != 0 {
			d.setError(gl.INVALID_OPERATION)
			return false
		}
	}
	if d.bufBindings[buffer] != 0 {
		d.setError(gl.INVALID_OPERATION)
		return false
	}
	return true
}

func (d *Driver) validTexImageTarget(target gl.Enum, dims int) bool {
	ok := false
	switch dims {
	case 1:
		ok = target == gl.TEXTURE_1D
	case 2:
		ok = target == gl.TEXTURE_2D || target == gl.TEXTURE_RECTANGLE ||
			target == gl.TEXTURE_1D_ARRAY || gl.IsCubeFace(target)
	case 3:
		ok = target == gl.TEXTURE_3D || target == gl.TEXTURE_2D_ARRAY || target == gl.TEXTURE_CUBE_MAP_ARRAY
	}
	if !ok {
		d.setError(gl.INVALID_ENUM)
	}
	return ok
}

func (d *Driver) texImage(target gl.Enum, level int32, internalFormat gl.Enum, w, h, depth int32, format, ty gl.Enum, pixels []byte, compressed bool) {
	t, _ := d.bound(target)
	if t == nil {
		return
	}
	desc := pixfmt.Find(internalFormat)
	if desc == nil || desc.Compressed != compressed {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if level < 0 || level >= maxLevels || (target == gl.TEXTURE_RECTANGLE && level != 0) {
		d.setError(gl.INVALID_VALUE)
		return
	}
	if w < 1 || h < 1 || depth < 1 || w > MaxTextureSize || h > MaxTextureSize || depth > MaxTextureSize {
		d.setError(gl.INVALID_VALUE)
		return
	}
	if target == gl.TEXTURE_CUBE_MAP_ARRAY && depth%6 != 0 {
		d.setError(gl.INVALID_VALUE)
		return
	}
	img := &Image{Width: int(w), Height: int(h), Depth: int(depth), InternalFormat: desc.ActualInternalFmt, Samples: 1}
	size := img.size()
	data := make([]byte, size)
	if pixels != nil {
		if !d.checkTransferState(false) {
			return
		}
		if compressed {
			if len(pixels) != size {
				d.setError(gl.INVALID_VALUE)
				return
			}
			copy(data, pixels)
		} else {
			if pixfmt.BytesPerPixel(format, ty) != desc.ImageBytesPerPixelOrBlock {
				d.setError(gl.INVALID_OPERATION)
				return
			}
			rowBytes := int(w) * desc.ImageBytesPerPixelOrBlock
			stride := rowStride(rowBytes, int(d.pixelStore[gl.UNPACK_ALIGNMENT]))
			rows := int(h) * int(depth)
			if len(pixels) < stride*(rows-1)+rowBytes {
				d.setError(gl.INVALID_OPERATION)
				return
			}
			for r := 0; r < rows; r++ {
				copy(data[r*rowBytes:(r+1)*rowBytes], pixels[r*stride:])
			}
		}
	}
	img.Data = [][]byte{data}
	t.Images[ImageKey{target, int(level)}] = img
}

func (d *Driver) TexImage1D(target gl.Enum, level int32, internalFormat gl.Enum, width int32, format, ty gl.Enum, pixels []byte) {
	if d.validTexImageTarget(target, 1) {
		d.texImage(target, level, internalFormat, width, 1, 1, format, ty, pixels, false)
	}
}

func (d *Driver) TexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height int32, format, ty gl.Enum, pixels []byte) {
	if d.validTexImageTarget(target, 2) {
		d.texImage(target, level, internalFormat, width, height, 1, format, ty, pixels, false)
	}
}

func (d *Driver) TexImage3D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, depth int32, format, ty gl.Enum, pixels []byte) {
	if d.validTexImageTarget(target, 3) {
		d.texImage(target, level, internalFormat, width, height, depth, format, ty, pixels, false)
	}
}

func (d *Driver) CompressedTexImage1D(target gl.Enum, level int32, internalFormat gl.Enum, width int32, data []byte) {
	if d.validTexImageTarget(target, 1) {
		d.texImage(target, level, internalFormat, width, 1, 1, gl.NONE, gl.NONE, data, true)
	}
}

func (d *Driver) CompressedTexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height int32, data []byte) {
	if d.validTexImageTarget(target, 2) {
		d.texImage(target, level, internalFormat, width, height, 1, gl.NONE, gl.NONE, data, true)
	}
}

func (d *Driver) CompressedTexImage3D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, depth int32, data []byte) {
	if d.validTexImageTarget(target, 3) {
		d.texImage(target, level, internalFormat, width, height, depth, gl.NONE, gl.NONE, data, true)
	}
}

func (d *Driver) texImageMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, w, h, depth int32, fixed bool) {
	t, _ := d.bound(target)
	if t == nil {
		return
	}
	desc := pixfmt.Find(internalFormat)
	if desc == nil || desc.Compressed {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if samples < 1 || samples > MaxSamples || w < 1 || h < 1 || depth < 1 {
		d.setError(gl.INVALID_VALUE)
		return
	}
	img := &Image{Width: int(w), Height: int(h), Depth: int(depth), InternalFormat: desc.ActualInternalFmt,
		Samples: int(samples), FixedLocations: fixed}
	for i := 0; i < int(samples); i++ {
		img.Data = append(img.Data, make([]byte, img.size()))
	}
	t.Images[ImageKey{target, 0}] = img
}

func (d *Driver) TexImage2DMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, width, height int32, fixed bool) {
	if target != gl.TEXTURE_2D_MULTISAMPLE {
		d.setError(gl.INVALID_ENUM)
		return
	}
	d.texImageMultisample(target, samples, internalFormat, width, height, 1, fixed)
}

func (d *Driver) TexImage3DMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, width, height, depth int32, fixed bool) {
	if target != gl.TEXTURE_2D_MULTISAMPLE_ARRAY {
		d.setError(gl.INVALID_ENUM)
		return
	}
	d.texImageMultisample(target, samples, internalFormat, width, height, depth, fixed)
}

func (d *Driver) TexBuffer(target, internalFormat gl.Enum, buffer uint32) {
	if target != gl.TEXTURE_BUFFER {
		d.setError(gl.INVALID_ENUM)
		return
	}
	t, _ := d.bound(target)
	if t == nil {
		return
	}
	if desc := pixfmt.Find(internalFormat); desc == nil || desc.Compressed {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if _, ok := d.buffers[buffer]; buffer != 0 && !ok {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	t.Buffer, t.BufferFormat = buffer, internalFormat
}

func (d *Driver) readImage(target gl.Enum, level int32) *Image {
	if gl.IsMultisampleTarget(target) || target == gl.TEXTURE_BUFFER || target == gl.TEXTURE_CUBE_MAP {
		d.setError(gl.INVALID_ENUM)
		return nil
	}
	t, _ := d.bound(target)
	if t == nil {
		return nil
	}
	if level < 0 || level >= maxLevels {
		d.setError(gl.INVALID_VALUE)
		return nil
	}
	if !d.checkTransferState(true) {
		return nil
	}
	return t.Images[ImageKey{target, int(level)}]
}

func (d *Driver) overrun(pixels []byte, end int) {
	for i := end; i < end+d.Faults.Overrun && i < len(pixels); i++ {
		pixels[i] = 0xEE
	}
}

func (d *Driver) GetTexImage(target gl.Enum, level int32, format, ty gl.Enum, pixels []byte) {
	img := d.readImage(target, level)
	if img == nil {
		return
	}
	desc := img.desc()
	if desc.Compressed || pixfmt.BytesPerPixel(format, ty) != desc.ImageBytesPerPixelOrBlock {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	rowBytes := img.Width * desc.ImageBytesPerPixelOrBlock
	stride := rowStride(rowBytes, int(d.pixelStore[gl.PACK_ALIGNMENT]))
	rows := img.Height * img.Depth
	end := stride*(rows-1) + rowBytes
	if len(pixels) < end {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	for r := 0; r < rows; r++ {
		copy(pixels[r*stride:r*stride+rowBytes], img.Data[0][r*rowBytes:])
	}
	d.overrun(pixels, end)
}

func (d *Driver) GetCompressedTexImage(target gl.Enum, level int32, pixels []byte) {
	img := d.readImage(target, level)
	if img == nil {
		return
	}
	if !img.desc().Compressed {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	if len(pixels) < len(img.Data[0]) {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	copy(pixels, img.Data[0])
	d.overrun(pixels, len(img.Data[0]))
}

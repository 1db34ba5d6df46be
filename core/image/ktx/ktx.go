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

// Package ktx implements the KTX 1.1 texture container.
//
// Images are held in a flat arena indexed by
// zslice + face·depth + array·(depth·faces) + mip·(depth·faces·arraySize),
// where depth, faces and arraySize are those of the base level. Slots for z
// slices past the depth of a smaller mip level stay empty. Images are stored
// with tightly packed rows; the 4 byte row alignment of the file format is
// applied when reading and writing.
package ktx

import (
	"fmt"

	"github.com/ValveSoftware/vogl-sub006/core/fault"
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/pixfmt"
)

const (
	// ErrInvalidMagic is returned when a stream does not start with the KTX
	// identifier.
	ErrInvalidMagic = fault.Const("Invalid KTX identifier")
	// ErrInvalidEndianness is returned for an unrecognized endianness marker.
	ErrInvalidEndianness = fault.Const("Invalid KTX endianness marker")
	// ErrUnsupportedFormat is returned for internal formats that are not in
	// the pixel format catalog.
	ErrUnsupportedFormat = fault.Const("Unsupported KTX internal format")
	// ErrInvalidDimensions is returned for zero or inconsistent dimensions.
	ErrInvalidDimensions = fault.Const("Invalid KTX dimensions")
	// ErrInvalidImage is returned when an image does not fit its slot.
	ErrInvalidImage = fault.Const("Invalid KTX image")
)

const (
	// EndiannessMarker is the value of Header.Endianness when read in the
	// byte order the file was written in.
	EndiannessMarker = 0x04030201
	// EndiannessSwapped is the marker as seen from the opposite byte order.
	EndiannessSwapped = 0x01020304

	// MaxMips is the largest number of mip levels a container may hold.
	MaxMips = 16
	// MaxArraySize is the largest number of array elements a container may hold.
	MaxArraySize = 1 << 16

	maxKeyValueBytes = 1 << 24
)

// Reserved key names.
const (
	KeyOrientation = "KTXorientation"
	KeyFourCC      = "VOGL_FOURCC"
	KeyTarget      = "VOGL_TARGET"
	KeyBaseLevel   = "VOGL_BASE_LEVEL"
	KeyMaxLevel    = "VOGL_MAX_LEVEL"
)

// Magic is the 12 byte file identifier.
var Magic = [12]byte{0xAB, 'K', 'T', 'X', ' ', '1', '1', 0xBB, '\r', '\n', 0x1A, '\n'}

// Header is the fixed part of a KTX file following the identifier.
type Header struct {
	Endianness            uint32
	GLType                uint32
	GLTypeSize            uint32
	GLFormat              uint32
	GLInternalFormat      uint32
	GLBaseInternalFormat  uint32
	PixelWidth            uint32
	PixelHeight           uint32
	PixelDepth            uint32
	NumberOfArrayElements uint32
	NumberOfFaces         uint32
	NumberOfMipmapLevels  uint32
	BytesOfKeyValueData   uint32
}

// KeyValue is a single entry of the key/value metadata.
type KeyValue struct {
	Key   string
	Value []byte
}

// Texture is an in-memory KTX container.
type Texture struct {
	Header Header

	keyValues []KeyValue
	images    [][]byte

	blockWidth    int
	blockHeight   int
	bytesPerBlock int

	// OppositeEndianness is set when the texture was read from a stream in
	// the non-native byte order.
	OppositeEndianness bool
}

// Init1D initializes t as a 1D texture.
func (t *Texture) Init1D(width, mips int, internalFmt, format, ty gl.Enum) error {
	return t.init(width, 0, 0, 0, 1, mips, internalFmt, format, ty)
}

// Init1DArray initializes t as a 1D array texture.
func (t *Texture) Init1DArray(width, arraySize, mips int, internalFmt, format, ty gl.Enum) error {
	if arraySize < 1 {
		return ErrInvalidDimensions
	}
	return t.init(width, 0, 0, arraySize, 1, mips, internalFmt, format, ty)
}

// Init2D initializes t as a 2D texture.
func (t *Texture) Init2D(width, height, mips int, internalFmt, format, ty gl.Enum) error {
	if height < 1 {
		return ErrInvalidDimensions
	}
	return t.init(width, height, 0, 0, 1, mips, internalFmt, format, ty)
}

// Init2DArray initializes t as a 2D array texture.
func (t *Texture) Init2DArray(width, height, arraySize, mips int, internalFmt, format, ty gl.Enum) error {
	if height < 1 || arraySize < 1 {
		return ErrInvalidDimensions
	}
	return t.init(width, height, 0, arraySize, 1, mips, internalFmt, format, ty)
}

// Init3D initializes t as a 3D texture.
func (t *Texture) Init3D(width, height, depth, mips int, internalFmt, format, ty gl.Enum) error {
	if height < 1 || depth < 1 {
		return ErrInvalidDimensions
	}
	return t.init(width, height, depth, 0, 1, mips, internalFmt, format, ty)
}

// InitCubemap initializes t as a cube map with square faces of size dim.
func (t *Texture) InitCubemap(dim, mips int, internalFmt, format, ty gl.Enum) error {
	return t.init(dim, dim, 0, 0, 6, mips, internalFmt, format, ty)
}

// InitCubemapArray initializes t as a cube map array of arraySize cubes.
func (t *Texture) InitCubemapArray(dim, arraySize, mips int, internalFmt, format, ty gl.Enum) error {
	if arraySize < 1 {
		return ErrInvalidDimensions
	}
	return t.init(dim, dim, 0, arraySize, 6, mips, internalFmt, format, ty)
}

func maxMipsFor(dims ...int) int {
	max := 1
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

func (t *Texture) init(width, height, depth, arraySize, faces, mips int, internalFmt, format, ty gl.Enum) error {
	*t = Texture{}
	if width < 1 || mips < 1 || mips > MaxMips || mips > maxMipsFor(width, height, depth) || arraySize > MaxArraySize {
		return fmt.Errorf("%w: %dx%dx%d, %d array elements, %d mips", ErrInvalidDimensions, width, height, depth, arraySize, mips)
	}
	t.Header = Header{
		Endianness:            EndiannessMarker,
		GLType:                uint32(ty),
		GLFormat:              uint32(format),
		GLInternalFormat:      uint32(internalFmt),
		PixelWidth:            uint32(width),
		PixelHeight:           uint32(height),
		PixelDepth:            uint32(depth),
		NumberOfArrayElements: uint32(arraySize),
		NumberOfFaces:         uint32(faces),
		NumberOfMipmapLevels:  uint32(mips),
	}
	if err := t.computeBlockInfo(); err != nil {
		*t = Texture{}
		return err
	}
	t.images = make([][]byte, t.NumImages())
	return nil
}

// computeBlockInfo derives the type size, base format and block metadata
// from the format fields of the header.
func (t *Texture) computeBlockInfo() error {
	h := &t.Header
	internalFmt, format, ty := gl.Enum(h.GLInternalFormat), gl.Enum(h.GLFormat), gl.Enum(h.GLType)
	desc := pixfmt.Find(internalFmt)
	if desc == nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, internalFmt)
	}
	if format == gl.NONE && ty == gl.NONE {
		if !desc.Compressed {
			return fmt.Errorf("%w: %v is not compressed but has no format or type", ErrUnsupportedFormat, internalFmt)
		}
		h.GLTypeSize = 1
		h.GLBaseInternalFormat = uint32(desc.BaseFmt)
		t.blockWidth, t.blockHeight = desc.BlockWidth, desc.BlockHeight
		t.bytesPerBlock = desc.ImageBytesPerPixelOrBlock
		return nil
	}
	if desc.Compressed {
		return fmt.Errorf("%w: compressed %v with format %v and type %v", ErrUnsupportedFormat, internalFmt, format, ty)
	}
	bpp := pixfmt.BytesPerPixel(format, ty)
	if bpp == 0 {
		return fmt.Errorf("%w: unknown format %v and type %v for %v", ErrUnsupportedFormat, format, ty, internalFmt)
	}
	h.GLTypeSize = uint32(pixfmt.TypeSize(ty))
	if h.GLBaseInternalFormat == 0 {
		h.GLBaseInternalFormat = uint32(desc.BaseFmt)
	}
	t.blockWidth, t.blockHeight, t.bytesPerBlock = 1, 1, bpp
	return nil
}

// Width returns the width of the base level.
func (t *Texture) Width() int { return int(t.Header.PixelWidth) }

// Height returns the height of the base level, which is 1 for 1D textures.
func (t *Texture) Height() int { return atLeastOne(t.Header.PixelHeight) }

// Depth returns the depth of the base level, which is 1 for non-3D textures.
func (t *Texture) Depth() int { return atLeastOne(t.Header.PixelDepth) }

// NumMips returns the number of mip levels.
func (t *Texture) NumMips() int { return atLeastOne(t.Header.NumberOfMipmapLevels) }

// ArraySize returns the number of array elements, which is 1 for non-arrays.
func (t *Texture) ArraySize() int { return atLeastOne(t.Header.NumberOfArrayElements) }

// NumFaces returns 6 for cube maps and 1 otherwise.
func (t *Texture) NumFaces() int { return atLeastOne(t.Header.NumberOfFaces) }

// NumImages returns the number of slots of the image arena.
func (t *Texture) NumImages() int {
	return t.NumMips() * t.NumFaces() * t.ArraySize() * t.Depth()
}

// Is1D returns true for 1D and 1D array textures.
func (t *Texture) Is1D() bool { return t.Header.PixelHeight == 0 }

// Is3D returns true for 3D textures.
func (t *Texture) Is3D() bool { return t.Header.PixelDepth > 0 }

// IsArray returns true for array textures.
func (t *Texture) IsArray() bool { return t.Header.NumberOfArrayElements > 0 }

// IsCubemap returns true for cube maps and cube map arrays.
func (t *Texture) IsCubemap() bool { return t.Header.NumberOfFaces == 6 }

// IsCompressed returns true for block compressed formats.
func (t *Texture) IsCompressed() bool {
	return t.Header.GLFormat == uint32(gl.NONE) && t.Header.GLType == uint32(gl.NONE)
}

// InternalFormat returns the GL internal format.
func (t *Texture) InternalFormat() gl.Enum { return gl.Enum(t.Header.GLInternalFormat) }

// Format returns the GL pixel transfer format, NONE when compressed.
func (t *Texture) Format() gl.Enum { return gl.Enum(t.Header.GLFormat) }

// Type returns the GL pixel transfer type, NONE when compressed.
func (t *Texture) Type() gl.Enum { return gl.Enum(t.Header.GLType) }

// BlockSize returns the block width, height and bytes per block. For
// uncompressed formats a block is a single pixel.
func (t *Texture) BlockSize() (w, h, bytes int) {
	return t.blockWidth, t.blockHeight, t.bytesPerBlock
}

// MipDimensions returns the size of the given mip level.
func (t *Texture) MipDimensions(mip int) (w, h, d int) {
	w = mipDim(t.Width(), mip)
	h = mipDim(t.Height(), mip)
	d = mipDim(t.Depth(), mip)
	return w, h, d
}

// ImageIndex returns the arena index of the image.
func (t *Texture) ImageIndex(mip, array, face, zslice int) int {
	depth, faces := t.Depth(), t.NumFaces()
	return zslice + face*depth + array*depth*faces + mip*depth*faces*t.ArraySize()
}

// Image returns the image at the arena index i.
func (t *Texture) Image(i int) []byte {
	if i < 0 || i >= len(t.images) {
		return nil
	}
	return t.images[i]
}

// ImageData returns the image of the given slice.
func (t *Texture) ImageData(mip, array, face, zslice int) []byte {
	if !t.validSlot(mip, array, face, zslice) {
		return nil
	}
	return t.images[t.ImageIndex(mip, array, face, zslice)]
}

// ExpectedImageSize returns the size of a single 2D image of the mip level.
func (t *Texture) ExpectedImageSize(mip int) int {
	bx, by := t.mipBlocks(mip)
	return bx * by * t.bytesPerBlock
}

func (t *Texture) mipBlocks(mip int) (bx, by int) {
	w, h, _ := t.MipDimensions(mip)
	return (w + t.blockWidth - 1) / t.blockWidth, (h + t.blockHeight - 1) / t.blockHeight
}

func (t *Texture) validSlot(mip, array, face, zslice int) bool {
	if mip < 0 || mip >= t.NumMips() || array < 0 || array >= t.ArraySize() ||
		face < 0 || face >= t.NumFaces() || zslice < 0 {
		return false
	}
	_, _, d := t.MipDimensions(mip)
	return zslice < d
}

// AddImage copies data into the given slot.
func (t *Texture) AddImage(mip, array, face, zslice int, data []byte) error {
	buf := append([]byte(nil), data...)
	return t.AddImageGrantOwnership(mip, array, face, zslice, &buf)
}

// AddImageGrantOwnership moves *data into the given slot without copying.
// *data is set to nil on success.
func (t *Texture) AddImageGrantOwnership(mip, array, face, zslice int, data *[]byte) error {
	if !t.validSlot(mip, array, face, zslice) {
		return fmt.Errorf("%w: slot mip %d array %d face %d zslice %d out of range", ErrInvalidImage, mip, array, face, zslice)
	}
	if expect := t.ExpectedImageSize(mip); len(*data) != expect {
		return fmt.Errorf("%w: mip %d has %d bytes, expected %d", ErrInvalidImage, mip, len(*data), expect)
	}
	i := t.ImageIndex(mip, array, face, zslice)
	if i >= len(t.images) {
		t.images = append(t.images, make([][]byte, i+1-len(t.images))...)
	}
	t.images[i] = *data
	*data = nil
	return nil
}

// ConsistencyCheck verifies that the header, block metadata and images agree.
func (t *Texture) ConsistencyCheck() error {
	h := t.Header
	if h.PixelWidth == 0 {
		return fmt.Errorf("%w: zero width", ErrInvalidDimensions)
	}
	if h.NumberOfFaces != 1 && h.NumberOfFaces != 6 {
		return fmt.Errorf("%w: %d faces", ErrInvalidDimensions, h.NumberOfFaces)
	}
	if t.IsCubemap() && (h.PixelWidth != h.PixelHeight || h.PixelDepth != 0) {
		return fmt.Errorf("%w: cube map faces are %dx%dx%d", ErrInvalidDimensions, h.PixelWidth, h.PixelHeight, h.PixelDepth)
	}
	if t.Is1D() && h.PixelDepth != 0 {
		return fmt.Errorf("%w: 1D texture with depth %d", ErrInvalidDimensions, h.PixelDepth)
	}
	check := Texture{Header: h}
	if err := check.computeBlockInfo(); err != nil {
		return err
	}
	if check.Header != h || check.blockWidth != t.blockWidth || check.blockHeight != t.blockHeight || check.bytesPerBlock != t.bytesPerBlock {
		return fmt.Errorf("%w: block metadata does not match format %v type %v", ErrUnsupportedFormat, t.Format(), t.Type())
	}
	if kv := t.keyValueBytes(); kv != h.BytesOfKeyValueData {
		return fmt.Errorf("Key/value size mismatch: header %d, actual %d", h.BytesOfKeyValueData, kv)
	}
	if len(t.images) != t.NumImages() {
		return fmt.Errorf("%w: %d images, expected %d", ErrInvalidImage, len(t.images), t.NumImages())
	}
	for mip := 0; mip < t.NumMips(); mip++ {
		_, _, depth := t.MipDimensions(mip)
		expect := t.ExpectedImageSize(mip)
		for array := 0; array < t.ArraySize(); array++ {
			for face := 0; face < t.NumFaces(); face++ {
				for z := 0; z < t.Depth(); z++ {
					img := t.images[t.ImageIndex(mip, array, face, z)]
					switch {
					case z >= depth && img != nil:
						return fmt.Errorf("%w: mip %d has data for zslice %d", ErrInvalidImage, mip, z)
					case z < depth && len(img) != expect:
						return fmt.Errorf("%w: mip %d array %d face %d zslice %d has %d bytes, expected %d",
							ErrInvalidImage, mip, array, face, z, len(img), expect)
					}
				}
			}
		}
	}
	return nil
}

func atLeastOne(v uint32) int {
	if v == 0 {
		return 1
	}
	return int(v)
}

func mipDim(d, mip int) int {
	d >>= uint(mip)
	if d < 1 {
		return 1
	}
	return d
}

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

import "github.com/ValveSoftware/vogl-sub006/gl"

// Buffer is the storage of a buffer object.
type Buffer struct {
	Data  []byte
	Usage gl.Enum
}

func validBufferTarget(target gl.Enum) bool {
	switch target {
	case gl.ARRAY_BUFFER, gl.ELEMENT_ARRAY_BUFFER, gl.PIXEL_PACK_BUFFER, gl.PIXEL_UNPACK_BUFFER,
		gl.TEXTURE_BUFFER, gl.UNIFORM_BUFFER, gl.COPY_READ_BUFFER, gl.COPY_WRITE_BUFFER:
		return true
	}
	return false
}

func (d *Driver) GenBuffer() uint32 {
	n := d.genName()
	d.buffers[n] = &Buffer{Usage: gl.STATIC_DRAW}
	return n
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	delete(d.buffers, buffer)
	for k, v := range d.bufBindings {
		if v == buffer {
			delete(d.bufBindings, k)
		}
	}
}

func (d *Driver) IsBuffer(buffer uint32) bool {
	_, ok := d.buffers[buffer]
	return ok
}

// Buffer returns the storage of the buffer name, or nil.
func (d *Driver) Buffer(buffer uint32) *Buffer { return d.buffers[buffer] }

func (d *Driver) BindBuffer(target gl.Enum, buffer uint32) {
	if !validBufferTarget(target) {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if _, ok := d.buffers[buffer]; buffer != 0 && !ok {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.bufBindings[target] = buffer
}

func (d *Driver) boundBuffer(target gl.Enum) *Buffer {
	if !validBufferTarget(target) {
		d.setError(gl.INVALID_ENUM)
		return nil
	}
	b := d.buffers[d.bufBindings[target]]
	if b == nil {
		d.setError(gl.INVALID_OPERATION)
	}
	return b
}

func (d *Driver) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	if b := d.boundBuffer(target); b != nil {
		b.Data, b.Usage = append([]byte{}, data...), usage
	}
}

func (d *Driver) GetBufferParameteriv(target, pname gl.Enum, params []int32) {
	b := d.boundBuffer(target)
	if b == nil {
		return
	}
	switch pname {
	case gl.BUFFER_SIZE:
		params[0] = int32(len(b.Data))
	case gl.BUFFER_USAGE:
		params[0] = int32(b.Usage)
	default:
		d.setError(gl.INVALID_ENUM)
	}
}

func (d *Driver) GetBufferSubData(target gl.Enum, offset int, data []byte) {
	b := d.boundBuffer(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(b.Data) {
		d.setError(gl.INVALID_VALUE)
		return
	}
	copy(data, b.Data[offset:])
}

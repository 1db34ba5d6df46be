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
	"fmt"

	"github.com/ValveSoftware/vogl-sub006/core/data/document"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gapis/blob"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

const bufferVersion = 1

// BufferState is the captured state of a buffer object.
type BufferState struct {
	handle uint64
	target gl.Enum
	usage  gl.Enum
	data   []byte
	valid  bool
}

var _ ObjectState = (*BufferState)(nil)

func (s *BufferState) Kind() Kind             { return KindBuffer }
func (s *BufferState) SnapshotHandle() uint64 { return s.handle }
func (s *BufferState) Target() gl.Enum        { return s.target }
func (s *BufferState) IsValid() bool          { return s.valid }
func (s *BufferState) Usage() gl.Enum         { return s.usage }
func (s *BufferState) Data() []byte           { return s.data }
func (s *BufferState) Clear()                 { *s = BufferState{} }

func (s *BufferState) RemapHandles(r HandleRemapper) {}

// Snapshot captures the size, usage and contents of buffer handle. target is
// recorded for Restore; the buffer is read through COPY_READ_BUFFER.
func (s *BufferState) Snapshot(ctx context.Context, c *Context, handle uint64, target gl.Enum) error {
	ctx = log.Enter(ctx, "BufferState.Snapshot")
	ctx = log.V{"handle": handle, "target": target}.Bind(ctx)
	s.Clear()
	gl.CheckError(c.GL)

	t := newTweaker(c.GL)
	defer t.revert(ctx)
	t.bindBuffer(gl.COPY_READ_BUFFER, uint32(handle))
	v := []int32{0}
	c.GL.GetBufferParameteriv(gl.COPY_READ_BUFFER, gl.BUFFER_SIZE, v)
	size := int(v[0])
	c.GL.GetBufferParameteriv(gl.COPY_READ_BUFFER, gl.BUFFER_USAGE, v)
	usage := gl.Enum(v[0])
	if err := gl.CheckError(c.GL); err != nil {
		return log.Errf(ctx, err, "Querying buffer")
	}
	data := make([]byte, size)
	if size > 0 {
		c.GL.GetBufferSubData(gl.COPY_READ_BUFFER, 0, data)
		if err := gl.CheckError(c.GL); err != nil {
			return log.Errf(ctx, err, "Reading %d bytes", size)
		}
	}
	s.handle, s.target, s.usage, s.data, s.valid = handle, target, usage, data, true
	return nil
}

// Restore recreates the buffer, generating a name when handle is 0.
func (s *BufferState) Restore(ctx context.Context, c *Context, remapper HandleRemapper, handle uint64) (uint64, error) {
	ctx = log.Enter(ctx, "BufferState.Restore")
	if !s.valid {
		return 0, log.Err(ctx, ErrNotValid, "Restoring buffer")
	}
	gl.CheckError(c.GL)
	name := uint32(handle)
	if handle == 0 {
		name = c.GL.GenBuffer()
		if remapper != nil {
			remapper.DeclareHandle(Buffers, s.handle, uint64(name), s.target)
		}
	}
	t := newTweaker(c.GL)
	defer t.revert(ctx)
	t.bindBuffer(gl.COPY_WRITE_BUFFER, name)
	c.GL.BufferData(gl.COPY_WRITE_BUFFER, s.data, s.usage)
	if err := gl.CheckError(c.GL); err != nil {
		if handle == 0 {
			if remapper != nil {
				remapper.DeleteHandleAndObject(Buffers, s.handle, uint64(name))
			} else {
				c.GL.DeleteBuffer(name)
			}
		}
		return 0, log.Errf(ctx, err, "Restoring %d bytes into buffer %d", len(s.data), name)
	}
	return uint64(name), nil
}

func (s *BufferState) Serialize(ctx context.Context, node *document.Node, blobs blob.Manager) error {
	if !s.valid {
		return log.Err(ctx, ErrNotValid, "Serializing buffer")
	}
	node.SetInt("version", bufferVersion)
	node.SetUint("handle", s.handle)
	serializeEnum(node, "target", s.target)
	serializeEnum(node, "usage", s.usage)
	node.SetInt("size", int64(len(s.data)))
	if len(s.data) > 0 {
		prefix := fmt.Sprintf("buf_%d_%d", s.handle, len(s.data))
		id, err := blobs.Add(ctx, prefix, s.data)
		if err != nil {
			return log.Err(ctx, err, "Storing buffer data")
		}
		node.SetString("data_blob_id", id)
	}
	return nil
}

func (s *BufferState) Deserialize(ctx context.Context, node *document.Node, blobs blob.Manager) (err error) {
	s.Clear()
	defer func() {
		if err != nil {
			s.Clear()
		}
	}()
	if version, err := node.GetInt("version"); err != nil {
		return err
	} else if version > bufferVersion {
		return log.Errf(ctx, ErrVersion, "Buffer version %d", version)
	}
	if s.handle, err = node.GetUint("handle"); err != nil {
		return err
	}
	if s.target, err = deserializeEnum(node, "target"); err != nil {
		return err
	}
	if s.usage, err = deserializeEnum(node, "usage"); err != nil {
		return err
	}
	size, err := node.GetInt("size")
	if err != nil {
		return err
	}
	s.data = []byte{}
	if size > 0 {
		id, err := node.GetString("data_blob_id")
		if err != nil {
			return err
		}
		if s.data, err = blobs.Get(ctx, id); err != nil {
			return err
		}
		if int64(len(s.data)) != size {
			return log.Errf(ctx, ErrInconsistentState, "Buffer blob holds %d bytes, expected %d", len(s.data), size)
		}
	}
	s.valid = true
	return nil
}

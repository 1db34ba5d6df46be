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
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ValveSoftware/vogl-sub006/core/data/document"
	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gapis/blob"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

const textureVersion = 1

func serializeEnum(n *document.Node, key string, e gl.Enum) { n.SetString(key, e.String()) }

func deserializeEnum(n *document.Node, key string) (gl.Enum, error) {
	s, err := n.GetString(key)
	if err != nil {
		return gl.NONE, err
	}
	e, ok := gl.EnumFromName(s)
	if !ok {
		return gl.NONE, errors.Errorf("Unknown enum %q for %q", s, key)
	}
	return e, nil
}

// blobPrefix is the human readable part of the blob ID of one sample.
func (s *TextureState) blobPrefix(sample int) string {
	tex := s.textures[sample]
	target := strings.TrimPrefix(s.target.String(), "GL_")
	format := strings.TrimPrefix(tex.InternalFormat().String(), "GL_")
	return fmt.Sprintf("tex_%d_%s_%dx%dx%d_%s_s%d", s.handle, target,
		tex.Width(), tex.Height(), tex.Depth(), format, sample)
}

// Serialize writes the state to node. Image data is stored in blobs, one
// KTX file per sample.
func (s *TextureState) Serialize(ctx context.Context, node *document.Node, blobs blob.Manager) error {
	ctx = log.Enter(ctx, "TextureState.Serialize")
	if !s.valid {
		return log.Err(ctx, ErrNotValid, "Serializing texture")
	}
	node.SetInt("version", textureVersion)
	node.SetUint("handle", s.handle)
	serializeEnum(node, "target", s.target)
	node.SetBool("is_unquerable", s.unquerable)
	node.SetUint("buffer", s.buffer)
	node.SetInt("num_samples", int64(s.numSamples))
	s.params.serialize(node.AddArray("params"))

	keys := make([]LevelKey, 0, len(s.levelParams))
	for k := range s.levelParams {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Face != keys[j].Face {
			return keys[i].Face < keys[j].Face
		}
		return keys[i].Level < keys[j].Level
	})
	levels := node.AddArray("level_params")
	for _, k := range keys {
		n := levels.AddNode()
		n.SetInt("face", int64(k.Face))
		n.SetInt("level", int64(k.Level))
		s.levelParams[k].serialize(n.AddArray("params"))
	}

	if len(s.textures) == 0 {
		return nil
	}
	ids := make([]string, len(s.textures))
	g, gctx := errgroup.WithContext(ctx)
	for i, tex := range s.textures {
		i, tex := i, tex
		g.Go(func() error {
			buf := bytes.Buffer{}
			if err := tex.Write(&buf); err != nil {
				return log.Errf(gctx, err, "Encoding sample %d", i)
			}
			id, err := blobs.Add(gctx, s.blobPrefix(i), buf.Bytes())
			if err != nil {
				return log.Errf(gctx, err, "Storing sample %d", i)
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if len(ids) == 1 {
		node.SetString("texture_data_blob_id", ids[0])
	} else {
		arr := node.AddArray("texture_data_blob_ids")
		for _, id := range ids {
			arr.AddString(id)
		}
	}
	return nil
}

// Deserialize reads a state written by Serialize. On failure the state is
// cleared.
func (s *TextureState) Deserialize(ctx context.Context, node *document.Node, blobs blob.Manager) (err error) {
	ctx = log.Enter(ctx, "TextureState.Deserialize")
	s.Clear()
	defer func() {
		if err != nil {
			s.Clear()
		}
	}()
	if version, err := node.GetInt("version"); err != nil {
		return err
	} else if version > textureVersion {
		return log.Errf(ctx, ErrVersion, "Texture version %d", version)
	}
	if s.handle, err = node.GetUint("handle"); err != nil {
		return err
	}
	if s.target, err = deserializeEnum(node, "target"); err != nil {
		return err
	}
	if s.unquerable, err = node.GetBool("is_unquerable"); err != nil {
		return err
	}
	if s.buffer, err = node.GetUint("buffer"); err != nil {
		return err
	}
	samples, err := node.GetInt("num_samples")
	if err != nil {
		return err
	}
	s.numSamples = int(samples)
	params, err := node.GetArray("params")
	if err != nil {
		return err
	}
	if s.params, err = deserializeParams(params); err != nil {
		return err
	}
	levels, err := node.GetArray("level_params")
	if err != nil {
		return err
	}
	s.levelParams = map[LevelKey]ParamTable{}
	for i := 0; i < levels.Len(); i++ {
		n, err := levels.GetNode(i)
		if err != nil {
			return err
		}
		face, err := n.GetInt("face")
		if err != nil {
			return err
		}
		level, err := n.GetInt("level")
		if err != nil {
			return err
		}
		a, err := n.GetArray("params")
		if err != nil {
			return err
		}
		if s.levelParams[LevelKey{int(face), int(level)}], err = deserializeParams(a); err != nil {
			return err
		}
	}

	var ids []string
	switch {
	case node.Has("texture_data_blob_id"):
		id, err := node.GetString("texture_data_blob_id")
		if err != nil {
			return err
		}
		ids = []string{id}
	case node.Has("texture_data_blob_ids"):
		arr, err := node.GetArray("texture_data_blob_ids")
		if err != nil {
			return err
		}
		for i := 0; i < arr.Len(); i++ {
			id, err := arr.GetString(i)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
	}
	hasData := s.target != gl.NONE && s.target != gl.TEXTURE_BUFFER && !s.unquerable
	if hasData != (len(ids) > 0) || (hasData && len(ids) != s.numSamples) {
		return log.Errf(ctx, ErrInconsistentState, "%d blobs for %d samples", len(ids), s.numSamples)
	}
	for i, id := range ids {
		data, err := blobs.Get(ctx, id)
		if err != nil {
			return log.Errf(ctx, err, "Loading sample %d", i)
		}
		tex, err := ktx.Read(bytes.NewReader(data))
		if err != nil {
			return log.Errf(ctx, err, "Decoding sample %d from %v", i, id)
		}
		if got := TargetForKTX(tex); got != containerTarget(s.target) {
			return log.Errf(ctx, ErrInconsistentState, "Sample %d holds a %v container", i, got)
		}
		if i > 0 && !sameShape(tex, s.textures[0]) {
			return log.Errf(ctx, ErrInconsistentState, "Sample %d does not match sample 0", i)
		}
		s.textures = append(s.textures, tex)
	}
	s.valid = true
	return nil
}

// containerTarget returns the target whose geometry the KTX containers of
// target have.
func containerTarget(target gl.Enum) gl.Enum {
	switch target {
	case gl.TEXTURE_RECTANGLE, gl.TEXTURE_2D_MULTISAMPLE:
		return gl.TEXTURE_2D
	case gl.TEXTURE_2D_MULTISAMPLE_ARRAY:
		return gl.TEXTURE_2D_ARRAY
	}
	return target
}

func sameShape(a, b *ktx.Texture) bool {
	return a.Width() == b.Width() && a.Height() == b.Height() && a.Depth() == b.Depth() &&
		a.NumMips() == b.NumMips() && a.ArraySize() == b.ArraySize() && a.NumFaces() == b.NumFaces() &&
		a.InternalFormat() == b.InternalFormat()
}

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

// The texsnap command loads a KTX file into a texture of a hidden GL context,
// captures the texture and writes the capture as a JSON document plus a
// directory of blobs.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ValveSoftware/vogl-sub006/core/app"
	"github.com/ValveSoftware/vogl-sub006/core/data/document"
	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gapis/blob"
	"github.com/ValveSoftware/vogl-sub006/gapis/glstate"
	"github.com/ValveSoftware/vogl-sub006/gl/gldriver"
)

type options struct {
	In          string `help:"the KTX file to load"`
	Out         string `help:"the directory to write state.json and the blobs to"`
	Verify      bool   `help:"restore the capture into a new texture and compare it with the original"`
	Framebuffer bool   `help:"also capture the default framebuffer"`
	Samples     int    `help:"the sample count of the default framebuffer"`
	Debug       bool   `help:"request a debug context"`
}

var opts = options{Out: "snapshot"}

func main() {
	app.ShortHelp = "texsnap captures a KTX texture through a live GL context"
	app.Flags.Bind("", &opts, "")
	app.Run(run)
}

func run(ctx context.Context) error {
	if opts.In == "" {
		app.Usage(ctx, "-in is required")
	}
	tex, err := readKTX(opts.In)
	if err != nil {
		return err
	}

	cfg := gldriver.DefaultConfig
	cfg.Samples = opts.Samples
	cfg.Debug = opts.Debug
	driver, err := gldriver.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer driver.Close()
	splitter := glstate.NewShaderSplitter(driver, driver)
	defer splitter.Release(ctx)
	c, err := glstate.NewContext(ctx, driver, splitter)
	if err != nil {
		return err
	}
	log.I(ctx, "GL %d.%d on %s", c.Info.Major, c.Info.Minor, c.Info.Renderer)

	name, target, err := glstate.UploadKTX(ctx, c, tex)
	if err != nil {
		return err
	}
	defer driver.DeleteTexture(name)

	objects := []glstate.ObjectState{}
	s := &glstate.TextureState{}
	if err := s.Snapshot(ctx, c, uint64(name), target); err != nil {
		return err
	}
	objects = append(objects, s)
	if opts.Framebuffer {
		w, h := driver.Size()
		attribs, err := glstate.QueryDefaultFramebufferAttribs(ctx, c, w, h)
		if err != nil {
			return err
		}
		fb := &glstate.DefaultFramebufferState{}
		if err := fb.Snapshot(ctx, c, attribs); err != nil {
			return err
		}
		objects = append(objects, fb)
	}

	if err := write(ctx, opts.Out, objects); err != nil {
		return err
	}
	if opts.Verify {
		return verify(ctx, c, opts.Out)
	}
	return nil
}

func readKTX(path string) (*ktx.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tex, err := ktx.Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Reading %v", path)
	}
	return tex, nil
}

func write(ctx context.Context, dir string, objects []glstate.ObjectState) error {
	blobs, err := blob.NewDirectory(ctx, filepath.Join(dir, "blobs"))
	if err != nil {
		return err
	}
	root := document.New()
	list := root.AddArray("objects")
	for _, obj := range objects {
		if err := glstate.SerializeObject(ctx, list.AddNode(), blobs, obj); err != nil {
			return err
		}
	}
	data, err := root.MarshalJSON()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "state.json")
	if err := os.WriteFile(path, data, 0666); err != nil {
		return err
	}
	log.I(ctx, "Wrote %d objects to %v", len(objects), path)
	return nil
}

// verify loads the document written to dir, restores every texture into a new
// object, captures it again and compares the two captures.
func verify(ctx context.Context, c *glstate.Context, dir string) error {
	data, err := os.ReadFile(filepath.Join(dir, "state.json"))
	if err != nil {
		return err
	}
	root, err := document.ParseJSON(data)
	if err != nil {
		return err
	}
	blobs, err := blob.NewDirectory(ctx, filepath.Join(dir, "blobs"))
	if err != nil {
		return err
	}
	list, err := root.GetArray("objects")
	if err != nil {
		return err
	}
	remapper := glstate.NewMapRemapper(c.GL)
	for i := 0; i < list.Len(); i++ {
		node, err := list.GetNode(i)
		if err != nil {
			return err
		}
		obj, err := glstate.DeserializeObject(ctx, node, blobs)
		if err != nil {
			return err
		}
		s, ok := obj.(*glstate.TextureState)
		if !ok {
			log.I(ctx, "Skipping %v", obj.Kind())
			continue
		}
		name, err := s.Restore(ctx, c, remapper, 0)
		if err != nil {
			return err
		}
		again := glstate.TextureState{}
		err = again.Snapshot(ctx, c, name, s.Target())
		remapper.DeleteHandleAndObject(glstate.Textures, s.SnapshotHandle(), name)
		if err != nil {
			return err
		}
		for sample := 0; sample < s.NumSamples(); sample++ {
			if !s.Texture(sample).Equal(again.Texture(sample)) {
				return log.Errf(ctx, glstate.ErrInconsistentState, "Texture %d sample %d differs after restore", s.SnapshotHandle(), sample)
			}
		}
		log.I(ctx, "Texture %d verified as %d", s.SnapshotHandle(), name)
	}
	return nil
}

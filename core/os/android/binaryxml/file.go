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

package binaryxml

import (
	"context"

	"github.com/jingyan/apkxml/core/fault"
	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/file"
	"github.com/pkg/errors"
)

// ErrNotRegularFile is returned by DecompressFile for directories, devices
// and other non-regular files.
const ErrNotRegularFile = fault.Const("Not a regular file")

// DecompressFile decompresses the binary XML in path with the default
// configuration and writes the text to destination. An empty destination
// overwrites the input.
func DecompressFile(ctx context.Context, path, destination string) error {
	return Config{}.DecompressFile(ctx, path, destination)
}

// DecompressFile decompresses the binary XML in path and writes the text to
// destination. An empty destination overwrites the input.
func (c Config) DecompressFile(ctx context.Context, path, destination string) error {
	src := file.Abs(path)
	ctx = log.V{"file": src}.Bind(ctx)
	if !src.IsRegular() {
		return log.Err(ctx, errors.Wrap(ErrNotRegularFile, path), "Decompressing binary XML file")
	}
	data, err := file.Read(ctx, src)
	if err != nil {
		return err
	}
	text, err := New(data, c).Decompress(ctx)
	if err != nil {
		return err
	}
	dst := src
	if destination != "" {
		dst = file.Abs(destination)
	}
	if err := file.Write(ctx, dst, []byte(text), src.Info().Mode().Perm()); err != nil {
		return err
	}
	log.D(ctx, "Wrote %d bytes to %v", len(text), dst)
	return nil
}

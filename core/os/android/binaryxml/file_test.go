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

package binaryxml_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/jingyan/apkxml/core/assert"
	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/android/binaryxml"
	"github.com/jingyan/apkxml/core/os/android/binaryxml/binaryxmltest"
)

func TestDecompressFile(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "AndroidManifest.xml")
	out := filepath.Join(dir, "AndroidManifest.txt")
	data := binaryxmltest.New().Start("manifest").End("manifest").EndDoc().Build()
	assert.For(ctx, "write").ThatError(ioutil.WriteFile(in, data, 0644)).Succeeded()

	err := binaryxml.DecompressFile(ctx, in, out)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	got, err := ioutil.ReadFile(out)
	assert.For(ctx, "read").ThatError(err).Succeeded()
	assert.For(ctx, "text").ThatString(got).Equals(lines("<manifest>", "</manifest>"))

	orig, err := ioutil.ReadFile(in)
	assert.For(ctx, "read input").ThatError(err).Succeeded()
	assert.For(ctx, "input untouched").ThatSlice(orig).Equals(data)
}

func TestDecompressFileInPlace(t *testing.T) {
	ctx := log.Testing(t)
	in := filepath.Join(t.TempDir(), "AndroidManifest.xml")
	data := binaryxmltest.New().Start("manifest").End("manifest").EndDoc().Build()
	assert.For(ctx, "write").ThatError(ioutil.WriteFile(in, data, 0644)).Succeeded()

	assert.For(ctx, "err").ThatError(binaryxml.DecompressFile(ctx, in, "")).Succeeded()
	got, err := ioutil.ReadFile(in)
	assert.For(ctx, "read").ThatError(err).Succeeded()
	assert.For(ctx, "text").ThatString(got).Equals(lines("<manifest>", "</manifest>"))
}

func TestDecompressFileNotRegular(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	err := binaryxml.DecompressFile(ctx, dir, filepath.Join(dir, "out.xml"))
	assert.For(ctx, "err").ThatError(err).HasCause(binaryxml.ErrNotRegularFile)
	_, err = os.Stat(filepath.Join(dir, "out.xml"))
	assert.For(ctx, "no output").That(os.IsNotExist(err)).Equals(true)
}

func TestDecompressFileBadInput(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.bin")
	out := filepath.Join(dir, "out.xml")
	data := binaryxmltest.New().Start("a").Build()
	assert.For(ctx, "write").ThatError(ioutil.WriteFile(in, data, 0644)).Succeeded()
	err := binaryxml.DecompressFile(ctx, in, out)
	assert.For(ctx, "err").ThatError(err).HasCause(binaryxml.ErrTruncatedInput)
	_, err = os.Stat(out)
	assert.For(ctx, "no output").That(os.IsNotExist(err)).Equals(true)
}

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

package file_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/jingyan/apkxml/core/assert"
	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/file"
)

func TestPath(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	p := file.Abs(dir).Join("res", "AndroidManifest.xml")
	assert.For(ctx, "basename").ThatString(p.Basename()).Equals("AndroidManifest.xml")
	assert.For(ctx, "ext").ThatString(p.Ext()).Equals(".xml")
	assert.For(ctx, "change ext").ThatString(p.ChangeExt(".txt").Basename()).Equals("AndroidManifest.txt")
	assert.For(ctx, "parent").ThatString(p.Parent().Basename()).Equals("res")
	assert.For(ctx, "exists").That(p.Exists()).Equals(false)
	assert.For(ctx, "dir").That(file.Abs(dir).IsDir()).Equals(true)
	assert.For(ctx, "abs").That(filepath.IsAbs(file.Abs("x.bin").System())).Equals(true)
	assert.For(ctx, "empty").That(file.Abs("").IsEmpty()).Equals(true)
}

func TestReadWrite(t *testing.T) {
	ctx := log.Testing(t)
	p := file.Abs(t.TempDir()).Join("out", "AndroidManifest.xml")
	err := file.Write(ctx, p, []byte("<manifest/>"), 0644)
	assert.For(ctx, "write").ThatError(err).Succeeded()
	assert.For(ctx, "regular").That(p.IsRegular()).Equals(true)
	got, err := file.Read(ctx, p)
	assert.For(ctx, "read").ThatError(err).Succeeded()
	assert.For(ctx, "data").ThatString(got).Equals("<manifest/>")

	_, err = file.Read(ctx, p.ChangeExt(".missing"))
	assert.For(ctx, "missing").ThatError(err).Is(os.ErrNotExist)
}

func TestPathFlag(t *testing.T) {
	ctx := log.Testing(t)
	var out file.Path
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Var(&out, "out", "output")
	assert.For(ctx, "parse").ThatError(set.Parse([]string{"-out", "manifest.xml"})).Succeeded()
	assert.For(ctx, "abs").That(filepath.IsAbs(out.System())).Equals(true)
	assert.For(ctx, "name").ThatString(out.Basename()).Equals("manifest.xml")
}

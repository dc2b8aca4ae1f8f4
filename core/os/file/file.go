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

package file

import (
	"context"
	"os"

	"github.com/jingyan/apkxml/core/fault"
	"github.com/jingyan/apkxml/core/log"
)

// Mkdir creates the directory specified.
func Mkdir(dir Path) error {
	if dir.IsEmpty() {
		return nil
	}
	return os.MkdirAll(dir.value, os.ModePerm)
}

// Read returns the contents of the file at p.
func Read(ctx context.Context, p Path) ([]byte, error) {
	data, err := os.ReadFile(p.value)
	if err != nil {
		return nil, log.Err(ctx, err, "Reading file")
	}
	return data, nil
}

// Write replaces the contents of the file at p with data, creating it and
// its parent directories with perm if needed.
func Write(ctx context.Context, p Path, data []byte, perm os.FileMode) error {
	ctx = log.V{"path": p}.Bind(ctx)
	if err := Mkdir(p.Parent()); err != nil {
		return log.Err(ctx, err, "Creating directory")
	}
	f, err := os.OpenFile(p.value, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return log.Err(ctx, err, "Creating file")
	}
	errs := fault.One{}
	_, err = f.Write(data)
	errs.Collect(err)
	errs.Collect(f.Close())
	if err := errs.First(); err != nil {
		return log.Err(ctx, err, "Writing file")
	}
	return nil
}

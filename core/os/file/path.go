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

// Package file provides an absolute path type and the file operations the
// command line tools share.
package file

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Path is a clean absolute path with platform specific separators.
type Path struct{ value string }

const homeDirTilde = "~"
const homeDirPrefix = homeDirTilde + string(filepath.Separator)

// Abs is the primary constructor of new Path objects from strings using either the / or system separator.
func Abs(path string) Path {
	if path == "" {
		return Path{}
	}
	if strings.HasPrefix(path, homeDirPrefix) {
		if u, err := user.Current(); err == nil {
			path = filepath.Join(u.HomeDir, strings.TrimPrefix(path, homeDirTilde))
		}
	}
	abs, err := filepath.Abs(filepath.FromSlash(path))
	if err != nil {
		return Path{path}
	}
	return Path{filepath.Clean(abs)}
}

// IsEmpty returns true if the path has no value.
func (p Path) IsEmpty() bool { return p.value == "" }

// IsDir returns true if the path exists and is a directory.
func (p Path) IsDir() bool {
	info := p.Info()
	return info != nil && info.IsDir()
}

// IsRegular returns true if the path exists and is a regular file.
func (p Path) IsRegular() bool {
	info := p.Info()
	return info != nil && info.Mode().IsRegular()
}

// System returns the full absolute path using the system separator.
func (p Path) System() string { return p.value }

// The default string form uses the system representation.
func (p Path) String() string { return p.value }

// Set assigns the value of the path.
// This conforms to the flag variable interface.
func (p *Path) Set(value string) error {
	*p = Abs(value)
	return nil
}

// Parent returns the parent directory of the path, if it has one.
func (p Path) Parent() Path { return Path{filepath.Dir(p.value)} }

// Basename returns the file name of the path.
func (p Path) Basename() string { return filepath.Base(p.value) }

// Ext returns the file extension of the path, including the dot.
func (p Path) Ext() string { return filepath.Ext(p.value) }

// ChangeExt returns the path with its extension replaced by ext.
func (p Path) ChangeExt(ext string) Path {
	return Path{strings.TrimSuffix(p.value, p.Ext()) + ext}
}

// Join returns the path with the elements appended.
func (p Path) Join(join ...string) Path {
	return Path{filepath.Join(append([]string{p.value}, join...)...)}
}

// Info returns the file information for ths path.
func (p Path) Info() os.FileInfo {
	info, _ := os.Stat(p.value)
	return info
}

// Exists returns true if this File exists.
func (p Path) Exists() bool {
	return p.Info() != nil
}

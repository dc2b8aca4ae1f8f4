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

// Package apk reads the contents of Android application packages.
package apk

import (
	"archive/zip"
	"bytes"
	"context"
	"io/ioutil"
	"sort"
	"strings"

	"github.com/jingyan/apkxml/core/fault"
	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/android/binaryxml"
)

const (
	// ManifestName is the archive path of the compiled manifest.
	ManifestName = "AndroidManifest.xml"

	// ErrNoManifest is returned when an archive has no compiled manifest.
	ErrNoManifest = fault.Const("APK has no AndroidManifest.xml")
)

var zipMagic = []byte("PK\x03\x04")

// IsArchive returns true if data starts with a zip local file header.
func IsArchive(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic)
}

// Read returns the files held in the APK.
func Read(ctx context.Context, apkData []byte) ([]*zip.File, error) {
	r, err := zip.NewReader(bytes.NewReader(apkData), int64(len(apkData)))
	if err != nil {
		return nil, log.Err(ctx, err, "Opening APK")
	}
	return r.File, nil
}

// ManifestData returns the compiled AndroidManifest.xml held in the APK.
func ManifestData(ctx context.Context, apkData []byte) ([]byte, error) {
	files, err := Read(ctx, apkData)
	if err != nil {
		return nil, err
	}
	return manifestData(ctx, files)
}

func manifestData(ctx context.Context, files []*zip.File) ([]byte, error) {
	for _, f := range files {
		if f.Name != ManifestName {
			continue
		}
		r, err := f.Open()
		if err != nil {
			return nil, log.Err(ctx, err, "Opening manifest entry")
		}
		defer r.Close()
		data, err := ioutil.ReadAll(r)
		if err != nil {
			return nil, log.Err(ctx, err, "Reading manifest entry")
		}
		log.D(ctx, "Manifest entry is %d bytes", len(data))
		return data, nil
	}
	return nil, log.Err(ctx, ErrNoManifest, "Finding manifest")
}

// ManifestXML returns the decompressed text of the APK's manifest.
func ManifestXML(ctx context.Context, apkData []byte, cfg binaryxml.Config) (string, error) {
	data, err := ManifestData(ctx, apkData)
	if err != nil {
		return "", err
	}
	return binaryxml.New(data, cfg).Decompress(ctx)
}

// GatherABIs returns the sorted names of the ABIs that the APK carries
// native libraries for.
func GatherABIs(files []*zip.File) []string {
	seen := map[string]bool{}
	abis := []string{}
	for _, f := range files {
		parts := strings.Split(f.Name, "/")
		if len(parts) != 3 || parts[0] != "lib" || parts[2] == "" {
			continue
		}
		if abi := parts[1]; !seen[abi] {
			seen[abi] = true
			abis = append(abis, abi)
		}
	}
	sort.Strings(abis)
	return abis
}

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

package apk

import (
	"archive/zip"
	"context"
	"path/filepath"

	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/android/binaryxml"
	"github.com/jingyan/apkxml/core/os/android/manifest"
)

// engineSignatures is used to identify the middleware engine used based on
// files found in the APK.
var engineSignatures = map[string]string{
	"libunity.so":         "unity",
	"libUnrealEngine3.so": "unreal3",
	"libUE4.so":           "unreal4",
	"libgodot_android.so": "godot",
}

// Information is the summary of an APK.
type Information struct {
	Package     string
	VersionCode int
	VersionName string
	Activity    string
	Action      string
	Engine      string
	ABI         []string
	Debuggable  bool
}

// Analyze parses the APK file and returns the APK's information.
// An APK without a main activity is not an error; Activity and Action are
// left empty.
func Analyze(ctx context.Context, apkData []byte, cfg binaryxml.Config) (*Information, error) {
	files, err := Read(ctx, apkData)
	if err != nil {
		return nil, err
	}
	data, err := manifestData(ctx, files)
	if err != nil {
		return nil, err
	}
	m, err := manifest.Decode(ctx, data, cfg)
	if err != nil {
		return nil, err
	}
	info := Summarize(ctx, m)
	info.Engine = engine(files)
	info.ABI = GatherABIs(files)
	return info, nil
}

// Summarize returns the information held in the manifest alone.
func Summarize(ctx context.Context, m manifest.Manifest) *Information {
	activity, action, err := m.MainActivity(ctx)
	if err != nil {
		log.D(ctx, "No launch activity: %v", err)
	}
	return &Information{
		Package:     m.Package,
		VersionCode: int(m.VersionCode),
		VersionName: m.VersionName,
		Activity:    activity,
		Action:      action,
		Debuggable:  bool(m.Application.Debuggable),
	}
}

func engine(files []*zip.File) string {
	for _, file := range files {
		_, name := filepath.Split(file.Name)
		if engine, ok := engineSignatures[name]; ok {
			return engine
		}
	}
	return "<unknown>"
}

// URI returns the intent URI that launches the main activity.
func (i *Information) URI() string {
	var uri string
	if i.Action != "" {
		uri = i.Action + ":"
	}
	uri += i.Package
	if i.Activity != "" {
		uri += "/" + i.Activity
	}
	return uri
}

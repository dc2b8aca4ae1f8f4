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

// Package manifest provides a typed view of an application's
// AndroidManifest.xml.
package manifest

import (
	"context"
	"encoding/xml"

	"github.com/jingyan/apkxml/core/fault"
	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/android/binaryxml"
	"github.com/jingyan/apkxml/core/text/xmlchars"
)

const (
	// ActionMain is the action treated as the main entry point, which does not
	// expect to receive data.
	ActionMain = "android.intent.action.MAIN"

	// CategoryInfo provides information about the package it is in; typically
	// used if a package does not contain a CATEGORY_LAUNCHER to provide a
	// front-door to the user without having to be shown in the all apps list.
	CategoryInfo = "android.intent.category.INFO"

	// CategoryLauncher means the action should be displayed in the top-level
	// launcher.
	CategoryLauncher = "android.intent.category.LAUNCHER"

	// ErrNoActivityFound is returned by MainActivity when no activity handles
	// the main action in a suitable category.
	ErrNoActivityFound = fault.Const("No suitable activity found")
)

// Manifest represents an APK's AndroidManifest.xml file.
type Manifest struct {
	Package     string       `xml:"package,attr"`
	VersionCode Int          `xml:"versionCode,attr"`
	VersionName string       `xml:"versionName,attr"`
	SDK         SDK          `xml:"uses-sdk"`
	Application Application  `xml:"application"`
	Features    []Feature    `xml:"uses-feature"`
	Permissions []Permission `xml:"uses-permission"`
}

// Parse parses the AndroidManifest XML string.
func Parse(ctx context.Context, s string) (Manifest, error) {
	m := Manifest{}
	if err := xml.Unmarshal([]byte(s), &m); err != nil {
		return Manifest{}, log.Err(ctx, err, "Parsing manifest")
	}
	return m, nil
}

// Decode decompresses a binary AndroidManifest.xml and parses it.
func Decode(ctx context.Context, data []byte, cfg binaryxml.Config) (Manifest, error) {
	text, err := binaryxml.New(data, cfg).Decompress(ctx)
	if err != nil {
		return Manifest{}, err
	}
	return Parse(ctx, xmlchars.Strip(text))
}

// SDK holds the platform versions the package declares.
type SDK struct {
	MinSDKVersion    Int `xml:"minSdkVersion,attr"`
	TargetSDKVersion Int `xml:"targetSdkVersion,attr"`
}

// Application represents an application declared in an APK.
type Application struct {
	Activities []Activity `xml:"activity"`
	Debuggable Bool       `xml:"debuggable,attr"`
}

// Activity represents an activity declared in an Application.
type Activity struct {
	Name          string         `xml:"name,attr"`
	IntentFilters []IntentFilter `xml:"intent-filter"`
}

// IntentFilter represents an intent filter declared in an Activity.
type IntentFilter struct {
	Action     Action     `xml:"action"`
	Categories []Category `xml:"category"`
}

// Action represents an action of an IntentFilter.
type Action struct {
	Name string `xml:"name,attr"`
}

// Category represents the category of an IntentFilter.
type Category struct {
	Name string `xml:"name,attr"`
}

// Feature represents a feature used by an APK.
type Feature struct {
	Name        string `xml:"name,attr"`
	Required    Bool   `xml:"required,attr"`
	GlEsVersion string `xml:"glEsVersion,attr"`
}

// Permission represents a permission used by an APK.
type Permission struct {
	Name string `xml:"name,attr"`
}

// MainActivity returns the name of the activity to launch and the action
// that launches it. Activities in the INFO category are preferred over
// LAUNCHER ones.
func (m Manifest) MainActivity(ctx context.Context) (activity, action string, err error) {
	search := func(category string) (activity, action string, ok bool) {
		for _, a := range m.Application.Activities {
			for _, i := range a.IntentFilters {
				if i.Action.Name != ActionMain {
					continue
				}
				for _, c := range i.Categories {
					if c.Name == category {
						return a.Name, i.Action.Name, true
					}
				}
			}
		}
		return "", "", false
	}

	var ok bool
	if activity, action, ok = search(CategoryInfo); ok {
		return
	}
	if activity, action, ok = search(CategoryLauncher); ok {
		return
	}
	return "", "", log.Err(ctx, ErrNoActivityFound, "Finding main activity")
}

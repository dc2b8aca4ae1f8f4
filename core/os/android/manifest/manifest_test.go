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

package manifest_test

import (
	"testing"

	"github.com/jingyan/apkxml/core/assert"
	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/android/binaryxml"
	"github.com/jingyan/apkxml/core/os/android/binaryxml/binaryxmltest"
	"github.com/jingyan/apkxml/core/os/android/manifest"
)

const xml = `<manifest xmlns:android="http://schemas.android.com/apk/res/android"
          package="com.bobgames.bobsgame"
          android:versionCode="11"
          android:versionName="1.0">
    <application android:label="@string/app_name"
                 android:icon="@drawable/ic_launcher"
                 android:allowBackup="true"
                 android:theme="@android:style/Theme.NoTitleBar.Fullscreen">
        <activity android:name="BobsGame"
                  android:label="@string/app_name"
                  android:screenOrientation="sensorLandscape">
            <intent-filter>
                <action android:name="android.intent.action.MAIN" />
                <category android:name="android.intent.category.LAUNCHER" />
            </intent-filter>
        </activity>
        <activity android:name="BobsGameTvActivity"
                  android:label="@string/app_name"
                  android:screenOrientation="landscape">
        </activity>
    </application>
    <uses-sdk android:minSdkVersion="15" android:targetSdkVersion="21" />
    <uses-permission android:name="android.permission.INTERNET" />
    <uses-permission android:name="android.permission.NFC" />
    <uses-feature android:glEsVersion="0x00020000" />
    <uses-feature android:name="android.hardware.gamepad" android:required="false"/>
    <uses-feature android:name="android.hardware.touchscreen" android:required="true" />
</manifest>
`

func TestParseManifest(_t *testing.T) {
	ctx := log.Testing(_t)
	got, err := manifest.Parse(ctx, xml)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	expected := manifest.Manifest{
		Package:     "com.bobgames.bobsgame",
		VersionCode: 11,
		VersionName: "1.0",
		SDK:         manifest.SDK{MinSDKVersion: 15, TargetSDKVersion: 21},
		Application: manifest.Application{
			Activities: []manifest.Activity{
				{
					Name: "BobsGame",
					IntentFilters: []manifest.IntentFilter{
						{
							Action:     manifest.Action{Name: manifest.ActionMain},
							Categories: []manifest.Category{{Name: manifest.CategoryLauncher}},
						},
					},
				},
				{
					Name: "BobsGameTvActivity",
				},
			},
		},
		Features: []manifest.Feature{
			{GlEsVersion: "0x00020000"},
			{Name: "android.hardware.gamepad"},
			{Name: "android.hardware.touchscreen", Required: true},
		},
		Permissions: []manifest.Permission{
			{Name: "android.permission.INTERNET"},
			{Name: "android.permission.NFC"},
		},
	}
	assert.For(ctx, "got").That(got).DeepEquals(expected)
}

func TestParseInvalid(t *testing.T) {
	ctx := log.Testing(t)
	_, err := manifest.Parse(ctx, `<manifest versionCode="eleven"/>`)
	assert.For(ctx, "err").ThatError(err).Failed()
}

func compiledManifest(category string) []byte {
	return binaryxmltest.New().
		Start("manifest",
			binaryxmltest.String("package", "com.example.app"),
			binaryxmltest.Typed("versionCode", 0x2a),
			binaryxmltest.String("versionName", "1.2"),
		).
		Start("uses-sdk", binaryxmltest.Typed("minSdkVersion", 21), binaryxmltest.Typed("targetSdkVersion", 0x1e)).
		End("uses-sdk").
		Start("uses-feature", binaryxmltest.String("name", "android.hardware.vulkan"), binaryxmltest.Typed("required", 0xffffffff)).
		End("uses-feature").
		Start("application", binaryxmltest.Typed("debuggable", 0xffffffff)).
		Start("activity", binaryxmltest.String("name", ".Main")).
		Start("intent-filter").
		Start("action", binaryxmltest.String("name", manifest.ActionMain)).
		End("action").
		Start("category", binaryxmltest.String("name", category)).
		End("category").
		End("intent-filter").
		End("activity").
		End("application").
		End("manifest").
		EndDoc().Build()
}

func TestDecode(t *testing.T) {
	ctx := log.Testing(t)
	m, err := manifest.Decode(ctx, compiledManifest(manifest.CategoryLauncher), binaryxml.Config{})
	if !assert.For(ctx, "err").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "package").ThatString(m.Package).Equals("com.example.app")
	assert.For(ctx, "versionCode").That(m.VersionCode).Equals(manifest.Int(42))
	assert.For(ctx, "versionName").ThatString(m.VersionName).Equals("1.2")
	assert.For(ctx, "sdk").That(m.SDK).Equals(manifest.SDK{MinSDKVersion: 21, TargetSDKVersion: 30})
	assert.For(ctx, "debuggable").That(m.Application.Debuggable).Equals(manifest.Bool(true))
	assert.For(ctx, "features").That(m.Features).DeepEquals([]manifest.Feature{
		{Name: "android.hardware.vulkan", Required: true},
	})

	activity, action, err := m.MainActivity(ctx)
	assert.For(ctx, "main err").ThatError(err).Succeeded()
	assert.For(ctx, "activity").ThatString(activity).Equals(".Main")
	assert.For(ctx, "action").ThatString(action).Equals(manifest.ActionMain)
}

func TestDecodeTruncated(t *testing.T) {
	ctx := log.Testing(t)
	data := compiledManifest(manifest.CategoryLauncher)
	_, err := manifest.Decode(ctx, data[:len(data)-8], binaryxml.Config{})
	assert.For(ctx, "err").ThatError(err).HasCause(binaryxml.ErrTruncatedInput)
}

func TestMainActivity(t *testing.T) {
	ctx := log.Testing(t)
	filter := func(category string) []manifest.IntentFilter {
		return []manifest.IntentFilter{{
			Action:     manifest.Action{Name: manifest.ActionMain},
			Categories: []manifest.Category{{Name: category}},
		}}
	}
	m := manifest.Manifest{Application: manifest.Application{Activities: []manifest.Activity{
		{Name: "Launcher", IntentFilters: filter(manifest.CategoryLauncher)},
		{Name: "Info", IntentFilters: filter(manifest.CategoryInfo)},
	}}}
	activity, _, err := m.MainActivity(ctx)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "prefers info").ThatString(activity).Equals("Info")

	m.Application.Activities = m.Application.Activities[:1]
	activity, _, err = m.MainActivity(ctx)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "launcher").ThatString(activity).Equals("Launcher")

	m.Application.Activities = []manifest.Activity{{Name: "Other", IntentFilters: filter("android.intent.category.DEFAULT")}}
	_, _, err = m.MainActivity(ctx)
	assert.For(ctx, "none").ThatError(err).HasCause(manifest.ErrNoActivityFound)
}

func TestValues(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		text   string
		expect manifest.Int
	}{
		{"11", 11},
		{"0x2a", 42},
		{"0X2A", 42},
		{"0xffffffff", -1},
		{"-3", -3},
	} {
		var i manifest.Int
		assert.For(ctx, "parse %q", test.text).ThatError(i.UnmarshalText([]byte(test.text))).Succeeded()
		assert.For(ctx, "value %q", test.text).That(i).Equals(test.expect)
	}
	for _, test := range []struct {
		text   string
		expect manifest.Bool
	}{
		{"true", true},
		{"false", false},
		{"0xffffffff", true},
		{"0x0", false},
	} {
		var b manifest.Bool
		assert.For(ctx, "parse %q", test.text).ThatError(b.UnmarshalText([]byte(test.text))).Succeeded()
		assert.For(ctx, "value %q", test.text).That(b).Equals(test.expect)
	}
	var i manifest.Int
	assert.For(ctx, "bad int").ThatError(i.UnmarshalText([]byte("0xzz"))).Failed()
	var b manifest.Bool
	assert.For(ctx, "bad bool").ThatError(b.UnmarshalText([]byte("maybe"))).Failed()
}

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
	"testing"

	"github.com/jingyan/apkxml/core/assert"
	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/android/binaryxml"
	"github.com/jingyan/apkxml/core/os/android/binaryxml/binaryxmltest"
)

func manifestChunk() []byte {
	return binaryxmltest.New().
		Start("manifest", binaryxmltest.String("package", "com.example.app"), binaryxmltest.Typed("versionCode", 0x2a)).
		Start("uses-permission", binaryxmltest.String("name", "android.permission.INTERNET")).
		End("uses-permission").
		Start("application", binaryxmltest.String("label", "Example\x01App")).
		Start("activity", binaryxmltest.String("name", ".Main")).
		End("activity").
		Start("activity", binaryxmltest.String("name", ".Settings")).
		End("activity").
		End("application").
		End("manifest").
		EndDoc().Build()
}

func TestDocument(t *testing.T) {
	ctx := log.Testing(t)
	d := binaryxml.New(manifestChunk(), binaryxml.Config{})
	doc, err := d.Document(ctx)
	if !assert.For(ctx, "err").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "root").ThatString(doc.Name).Equals("manifest")
	pkg, ok := doc.Attr("package")
	assert.For(ctx, "has package").That(ok).Equals(true)
	assert.For(ctx, "package").ThatString(pkg).Equals("com.example.app")
	code, _ := doc.Attr("versionCode")
	assert.For(ctx, "versionCode").ThatString(code).Equals("0x2a")
	_, ok = doc.Attr("missing")
	assert.For(ctx, "missing attr").That(ok).Equals(false)

	app := doc.Child("application")
	if !assert.For(ctx, "application").That(app).IsNotNil() {
		return
	}
	label, _ := app.Attr("label")
	assert.For(ctx, "stripped label").ThatString(label).Equals("Example App")

	names := []string{}
	for _, a := range app.ChildrenNamed("activity") {
		n, _ := a.Attr("name")
		names = append(names, n)
	}
	assert.For(ctx, "activities").ThatSlice(names).Equals([]string{".Main", ".Settings"})
	assert.For(ctx, "no service").That(app.Child("service")).IsNil()
	assert.For(ctx, "children").ThatInteger(len(doc.Children)).Equals(2)

	again, err := d.Document(ctx)
	assert.For(ctx, "cached err").ThatError(err).Succeeded()
	assert.For(ctx, "cached").That(again == doc).Equals(true)
}

func TestDocumentUnbalanced(t *testing.T) {
	ctx := log.Testing(t)
	data := binaryxmltest.New().Start("a").Start("b").End("b").EndDoc().Build()
	d := binaryxml.New(data, binaryxml.Config{})
	text, err := d.Decompress(ctx)
	assert.For(ctx, "text err").ThatError(err).Succeeded()
	assert.For(ctx, "text").ThatString(text).Equals(lines("<a>", "  <b>", "  </b>"))
	_, err = d.Document(ctx)
	assert.For(ctx, "doc err").ThatError(err).Failed()
}

func TestDocumentDecodeFailure(t *testing.T) {
	ctx := log.Testing(t)
	data := binaryxmltest.New().Start("a").Build()
	_, err := binaryxml.New(data, binaryxml.Config{}).Document(ctx)
	assert.For(ctx, "err").ThatError(err).HasCause(binaryxml.ErrTruncatedInput)
}

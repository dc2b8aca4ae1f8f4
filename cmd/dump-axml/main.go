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

// The dump-axml command prints the XML held in an Android binary XML file,
// or in the manifest of an APK.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jingyan/apkxml/core/app"
	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/os/android/apk"
	"github.com/jingyan/apkxml/core/os/android/binaryxml"
	"github.com/jingyan/apkxml/core/os/android/manifest"
	"github.com/jingyan/apkxml/core/os/file"
)

var (
	output  file.Path
	utf16   = flag.Bool("utf16", false, "decode strings as full UTF-16 instead of their low bytes")
	indent  = flag.Int("indent", binaryxml.DefaultIndentLimit, "the widest indentation, in spaces")
	summary = flag.Bool("manifest", false, "print the package summary instead of the XML")
)

func init() {
	flag.Var(&output, "out", "write the XML to this file instead of stdout")
}

func main() {
	app.ShortHelp = "dump-axml prints the XML held in an Android binary XML file or APK."
	app.ShortUsage = "<binary xml or apk>"
	app.Run(run)
}

func run(ctx context.Context) error {
	if flag.NArg() != 1 {
		app.Usage(ctx, "Expected a single input file, got %d", flag.NArg())
	}
	path := file.Abs(flag.Arg(0))
	cfg := binaryxml.Config{IndentLimit: *indent}
	if *utf16 {
		cfg.Strings = binaryxml.UTF16Strings
	}

	data, err := file.Read(ctx, path)
	if err != nil {
		return err
	}
	isAPK := apk.IsArchive(data)
	log.D(ctx, "Input %v is %d bytes, apk: %v", path, len(data), isAPK)

	switch {
	case *summary && isAPK:
		info, err := apk.Analyze(ctx, data, cfg)
		if err != nil {
			return err
		}
		return emit(ctx, func(w io.Writer) error { return printInfo(w, info, true) })
	case *summary:
		m, err := manifest.Decode(ctx, data, cfg)
		if err != nil {
			return err
		}
		return emit(ctx, func(w io.Writer) error { return printInfo(w, apk.Summarize(ctx, m), false) })
	case isAPK:
		text, err := apk.ManifestXML(ctx, data, cfg)
		if err != nil {
			return err
		}
		return emit(ctx, func(w io.Writer) error {
			_, err := io.WriteString(w, text)
			return err
		})
	case !output.IsEmpty():
		return cfg.DecompressFile(ctx, path.System(), output.System())
	default:
		text, err := binaryxml.New(data, cfg).Decompress(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(os.Stdout, text)
		return err
	}
}

// emit calls write with stdout, or with the -out file when one is given.
func emit(ctx context.Context, write func(io.Writer) error) error {
	if output.IsEmpty() {
		return write(os.Stdout)
	}
	buf := &bytes.Buffer{}
	if err := write(buf); err != nil {
		return err
	}
	return file.Write(ctx, output, buf.Bytes(), 0644)
}

func printInfo(w io.Writer, info *apk.Information, archive bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "package:\t%s\n", info.Package)
	fmt.Fprintf(tw, "version code:\t%d\n", info.VersionCode)
	fmt.Fprintf(tw, "version name:\t%s\n", info.VersionName)
	fmt.Fprintf(tw, "debuggable:\t%v\n", info.Debuggable)
	if info.Activity != "" {
		fmt.Fprintf(tw, "activity:\t%s\n", info.Activity)
		fmt.Fprintf(tw, "launch:\t%s\n", info.URI())
	} else {
		fmt.Fprintf(tw, "activity:\t<none>\n")
	}
	if archive {
		fmt.Fprintf(tw, "engine:\t%s\n", info.Engine)
		fmt.Fprintf(tw, "abi:\t%s\n", strings.Join(info.ABI, ", "))
	}
	return tw.Flush()
}

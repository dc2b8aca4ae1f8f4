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

// Package keys records which keys have been stored in a context so that the
// values a decode was started with can be listed or copied to a new context.
package keys

import "context"

type keySetType int

const keySet = keySetType(0)

type link struct {
	value interface{}
	next  *link
}

// Get returns the list of keys that were added to the context, most recent
// first. Keys that were overridden are only listed once.
func Get(ctx context.Context) []interface{} {
	seen := map[interface{}]bool{}
	result := make([]interface{}, 0, 10)
	for l, _ := ctx.Value(keySet).(*link); l != nil; l = l.next {
		if !seen[l.value] {
			seen[l.value] = true
			result = append(result, l.value)
		}
	}
	return result
}

// WithValue is a wrapper for context.WithValue that also tracks the key.
func WithValue(ctx context.Context, key interface{}, value interface{}) context.Context {
	old, _ := ctx.Value(keySet).(*link)
	ctx = context.WithValue(ctx, key, value)
	return context.WithValue(ctx, keySet, &link{value: key, next: old})
}

// Clone copies every tracked value of from into ctx.
// It is used to keep the logging setup of a context when detaching work from
// its cancellation.
func Clone(ctx context.Context, from context.Context) context.Context {
	keys := Get(from)
	for i := len(keys) - 1; i >= 0; i-- {
		ctx = WithValue(ctx, keys[i], from.Value(keys[i]))
	}
	return ctx
}

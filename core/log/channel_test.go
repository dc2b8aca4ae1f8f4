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

package log_test

import (
	"strings"
	"testing"

	"github.com/jingyan/apkxml/core/assert"
	"github.com/jingyan/apkxml/core/log"
)

func TestChannel(t *testing.T) {
	assert := assert.To(t)
	w, b := log.Buffer()
	ping := make(chan struct{})
	handler := log.Channel(pingHandler{log.Normal.Handler(w), ping}, 0)
	defer handler.Close()
	for _, test := range testMessages {
		b.Reset()
		test.send(handler)
		<-ping
		got := strings.TrimSpace(b.String())
		assert.For(test.msg).That(got).Equals(test.normal)
	}
}

func TestBroadcast(t *testing.T) {
	assert := assert.To(t)
	wa, a := log.Buffer()
	wb, b := log.Buffer()
	closed := 0
	h := log.Broadcast{
		log.Raw.Handler(wa),
		log.OnClosed(log.Brief.Handler(wb), func() { closed++ }),
	}
	testMessages[0].send(h)
	h.Close()
	assert.For("raw").ThatString(a.String()).Equals(testMessages[0].raw)
	assert.For("brief").ThatString(b.String()).Equals(testMessages[0].brief)
	assert.For("closed").ThatInteger(closed).Equals(1)
}

func TestIndirect(t *testing.T) {
	assert := assert.To(t)
	wa, a := log.Buffer()
	wb, b := log.Buffer()
	i := &log.Indirect{}
	testMessages[0].send(i)
	assert.For("old").That(i.SetTarget(log.Raw.Handler(wa))).IsNil()
	testMessages[0].send(i)
	old := i.SetTarget(log.Raw.Handler(wb))
	assert.For("old").That(old).IsNotNil()
	testMessages[1].send(i)
	assert.For("first").ThatString(a.String()).Equals(testMessages[0].raw)
	assert.For("second").ThatString(b.String()).Equals(testMessages[1].raw)
}

type pingHandler struct {
	h log.Handler
	c chan struct{}
}

func (h pingHandler) Handle(m *log.Message) {
	h.h.Handle(m)
	h.c <- struct{}{}
}

func (h pingHandler) Close() {
	h.h.Close()
	close(h.c)
}

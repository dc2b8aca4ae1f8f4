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

package log

import (
	"fmt"
	"time"
)

// Message is a single log entry.
type Message struct {
	// Text is the message text.
	Text string
	// Time is the time the message was logged.
	Time time.Time
	// Severity is the severity of the message.
	Severity Severity
	// StopProcess is true if the logger should terminate the process.
	StopProcess bool
	// Tag is the optional tag of the context the message was logged in.
	Tag string
	// Process is the name of the process that logged the message.
	Process string
	// Trace is the chain of log.Enter names, innermost first.
	Trace []string
	// Values are the bound key-values, sorted by name.
	Values Values
}

// Value is a named value bound to a Message.
type Value struct {
	Name  string
	Value interface{}
}

// Values is a sortable list of Value.
type Values []*Value

func (v Values) Len() int           { return len(v) }
func (v Values) Less(i, j int) bool { return v[i].Name < v[j].Name }
func (v Values) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }

func (m *Message) String() string {
	return fmt.Sprintf("%v: %v", m.Severity.Short(), m.Text)
}

// Copyright 2019 Google LLC
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

// Rolling window substring matcher for serial trigger phrases.
package goglitch

import (
	"bytes"
)

// Matcher keeps the last len(target) bytes seen and compares them against
// target after every byte. The first len(target)-1 pushes never match.
type Matcher struct {
	target [MaxPhraseLen]byte
	window [MaxPhraseLen]byte
	n      int
	filled int
}

func NewMatcher(target []byte) (*Matcher, error) {
	if err := ValidatePhrase(target); err != nil {
		return nil, err
	}
	m := &Matcher{n: len(target)}
	copy(m.target[:], target)
	return m, nil
}

// Push appends b to the window, dropping the oldest byte, and reports whether
// the window now equals the target. Self-overlapping targets can match on
// adjacent windows.
func (m *Matcher) Push(b byte) bool {
	copy(m.window[:m.n-1], m.window[1:m.n])
	m.window[m.n-1] = b
	if m.filled < m.n {
		m.filled++
	}
	return m.filled == m.n && bytes.Equal(m.window[:m.n], m.target[:m.n])
}

// Window returns the bytes collected so far, oldest first.
func (m *Matcher) Window() []byte {
	w := make([]byte, m.filled)
	copy(w, m.window[m.n-m.filled:m.n])
	return w
}

func (m *Matcher) Target() []byte {
	t := make([]byte, m.n)
	copy(t, m.target[:m.n])
	return t
}

func (m *Matcher) Filled() int {
	return m.filled
}

func (m *Matcher) Reset() {
	m.window = [MaxPhraseLen]byte{}
	m.filled = 0
}

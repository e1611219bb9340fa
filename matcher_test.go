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

package goglitch_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/goglitch"
)

func pushAll(t *testing.T, m *goglitch.Matcher, stream string) []bool {
	t.Helper()
	var res []bool
	for _, b := range []byte(stream) {
		res = append(res, m.Push(b))
	}
	return res
}

func newMatcher(t *testing.T, target string) *goglitch.Matcher {
	t.Helper()
	m, err := goglitch.NewMatcher([]byte(target))
	if err != nil {
		t.Fatalf("NewMatcher(%q) failed: %v", target, err)
	}
	return m
}

func TestMatcherMatchesAfterLeadingNoise(t *testing.T) {
	m := newMatcher(t, "ABC")
	got := pushAll(t, m, "XABC")
	want := []bool{false, false, false, true}
	if !equalBools(got, want) {
		t.Errorf("Push results %v, expected %v", got, want)
	}
}

func TestMatcherRematchesOverlappingWindows(t *testing.T) {
	m := newMatcher(t, "GO")
	got := pushAll(t, m, "GOGO")
	want := []bool{false, true, false, true}
	if !equalBools(got, want) {
		t.Errorf("Push results %v, expected %v", got, want)
	}
}

func TestMatcherSelfOverlappingTarget(t *testing.T) {
	m := newMatcher(t, "AA")
	got := pushAll(t, m, "AAAA")
	want := []bool{false, true, true, true}
	if !equalBools(got, want) {
		t.Errorf("Push results %v, expected %v", got, want)
	}
}

func TestMatcherNeverMatchesBeforeFilled(t *testing.T) {
	target := "hello"
	m := newMatcher(t, target)
	// The target itself minus its last byte must not match early.
	for i, b := range []byte(target[:len(target)-1]) {
		if m.Push(b) {
			t.Fatalf("Push #%d matched before window was filled", i+1)
		}
		if m.Filled() != i+1 {
			t.Errorf("Filled() = %d, expected %d", m.Filled(), i+1)
		}
	}
	if !m.Push(target[len(target)-1]) {
		t.Errorf("Push of final byte did not match")
	}
	if m.Filled() != len(target) {
		t.Errorf("Filled() = %d, expected saturation at %d", m.Filled(), len(target))
	}
}

func TestMatcherSingleByteTarget(t *testing.T) {
	m := newMatcher(t, "#")
	got := pushAll(t, m, "a#b##")
	want := []bool{false, true, false, true, true}
	if !equalBools(got, want) {
		t.Errorf("Push results %v, expected %v", got, want)
	}
}

func TestMatcherIsCaseSensitive(t *testing.T) {
	m := newMatcher(t, "Boot")
	if res := pushAll(t, m, "boot"); res[3] {
		t.Errorf("Matcher matched different case")
	}
}

// Compares against a direct slice comparison on random streams.
func TestMatcherSlidingWindowAgreesWithSliceCompare(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	alphabet := []byte("ab")
	for iter := 0; iter < 200; iter++ {
		target := make([]byte, 1+rnd.Intn(4))
		for i := range target {
			target[i] = alphabet[rnd.Intn(len(alphabet))]
		}
		stream := make([]byte, 64)
		for i := range stream {
			stream[i] = alphabet[rnd.Intn(len(alphabet))]
		}
		m, err := goglitch.NewMatcher(target)
		if err != nil {
			t.Fatal(err)
		}
		for i, b := range stream {
			got := m.Push(b)
			want := i >= len(target)-1 && bytes.Equal(stream[i-len(target)+1:i+1], target)
			if got != want {
				t.Fatalf("target %q stream %q: Push #%d = %v, expected %v",
					target, stream, i+1, got, want)
			}
		}
	}
}

func TestMatcherWindow(t *testing.T) {
	m := newMatcher(t, "STOP")
	pushAll(t, m, "ST")
	if w := string(m.Window()); w != "ST" {
		t.Errorf("Window() = %q during fill, expected %q", w, "ST")
	}
	pushAll(t, m, "OPXY")
	if w := string(m.Window()); w != "OPXY" {
		t.Errorf("Window() = %q, expected %q", w, "OPXY")
	}
	m.Reset()
	if m.Filled() != 0 || len(m.Window()) != 0 {
		t.Errorf("Reset did not clear window")
	}
	if string(m.Target()) != "STOP" {
		t.Errorf("Target() = %q", m.Target())
	}
}

func TestNewMatcherRejectsBadPhrases(t *testing.T) {
	for _, n := range []int{0, goglitch.MaxPhraseLen + 1} {
		_, err := goglitch.NewMatcher(bytes.Repeat([]byte{'x'}, n))
		if !errors.Is(err, goglitch.ErrInvalidPhrase) || !errors.Is(err, goglitch.ErrInvalidParameter) {
			t.Errorf("NewMatcher with %d bytes: err = %v, expected ErrInvalidPhrase", n, err)
		}
	}
	for _, n := range []int{1, goglitch.MaxPhraseLen} {
		if _, err := goglitch.NewMatcher(bytes.Repeat([]byte{'x'}, n)); err != nil {
			t.Errorf("NewMatcher with %d bytes failed: %v", n, err)
		}
	}
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

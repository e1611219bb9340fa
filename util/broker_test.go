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

package util_test

import (
	"testing"
	"time"

	"github.com/google/goglitch/util"
)

func TestBrokerDeliversToSubscribers(t *testing.T) {
	b := util.NewBroker[string]()
	go b.Start()
	defer b.Stop()

	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	// Subscription and publication race inside the broker; keep publishing
	// until the subscriber sees a message.
	deadline := time.After(5 * time.Second)
	for {
		b.Publish("run-1")
		select {
		case msg := <-sub:
			if msg != "run-1" {
				t.Errorf("Received %q, expected run-1", msg)
			}
			return
		case <-time.After(10 * time.Millisecond):
		case <-deadline:
			t.Fatal("Timed out waiting for broker message")
		}
	}
}

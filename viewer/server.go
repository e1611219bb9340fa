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

// Serves run records over HTTP. /runs long-polls until the records directory
// changes unless called with ?wait=false.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/goglitch"
	"github.com/google/goglitch/util"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
	"github.com/labstack/echo"
)

var (
	portFlag = flag.Int("port", 8080, "Server HTTP port number")
	dirFlag  = flag.String("dir", "runs", "Run records directory to display")
)

type RunSummary struct {
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Result     string `json:"result"`
	Err        string `json:"err,omitempty"`
	Bytes      int    `json:"bytes"`
	GlitchMs   int64  `json:"glitchMs,omitempty"`
	Start      string `json:"start,omitempty"`
	Stop       string `json:"stop,omitempty"`
	StartDelay int    `json:"startDelay,omitempty"`
	StopDelay  int    `json:"stopDelay,omitempty"`
}

func summarize(name string, r *goglitch.Record) RunSummary {
	s := RunSummary{
		Name:       name,
		Mode:       r.Mode,
		Result:     r.Result.String(),
		Err:        r.Err,
		Bytes:      r.Bytes,
		Start:      r.Start,
		Stop:       r.Stop,
		StartDelay: r.StartDelay,
		StopDelay:  r.StopDelay,
	}
	if d, ok := r.GlitchDuration(); ok {
		s.GlitchMs = d.Milliseconds()
	}
	return s
}

// A go-routine that waits for directory changes.
// Notifies changes by publishing the changed file via broker.
func watchDirectoryChanges(broker *util.Broker[string]) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		glog.Errorf("NewWatcher failed: %v", err)
		return
	}
	defer watcher.Close()

	if err = watcher.Add(*dirFlag); err != nil {
		glog.Errorf("watcher.Add failed: %v", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				glog.Warning("watcher.Events is not ok. Aborting")
				return
			}
			glog.V(1).Infof("Watcher event: %v", event)
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if strings.HasSuffix(event.Name, goglitch.RecordExt) {
					broker.Publish(event.Name)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				glog.Warning("watcher.Errors is not ok. Aborting")
				return
			}
			glog.Warning("Watcher error: ", err)
		}
	}
}

func waitForRuns(c echo.Context, watcher *util.Broker[string]) {
	var wg sync.WaitGroup
	timedOut := time.NewTimer(5 * time.Minute)
	defer timedOut.Stop()

	wg.Add(1)
	go func() {
		defer wg.Done()
		dirChanged := watcher.Subscribe()
		defer watcher.Unsubscribe(dirChanged)

		select {
		case <-timedOut.C:
			glog.V(1).Infof("Timed out")
		case <-c.Request().Context().Done():
			glog.V(1).Infof("Client disconnected")
		case name := <-dirChanged:
			glog.V(1).Infof("Received dir notification from broker: %s", name)
		}
	}()
	wg.Wait()
}

func recordPath(name string) (string, error) {
	if name != filepath.Base(name) {
		return "", fmt.Errorf("Invalid run name %q", name)
	}
	return filepath.Join(*dirFlag, name+goglitch.RecordExt), nil
}

func loadRecord(name string) (*goglitch.Record, error) {
	p, err := recordPath(name)
	if err != nil {
		return nil, err
	}
	return goglitch.LoadRecord(p)
}

func listRuns() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(*dirFlag, "*"+goglitch.RecordExt))
	if err != nil {
		return nil, err
	}
	for i, f := range files {
		files[i] = strings.TrimSuffix(filepath.Base(f), goglitch.RecordExt)
	}
	return files, nil
}

func newServer(watchBroker *util.Broker[string]) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Returns the list of run records in the directory.
	e.GET("/runs", func(c echo.Context) error {
		if c.QueryParam("wait") != "false" {
			waitForRuns(c, watchBroker)
		}
		runs, err := listRuns()
		if err != nil {
			glog.Errorf("Glob failed: %v", err)
			return err
		}
		return c.JSON(http.StatusOK, runs)
	})

	// Returns the summary of a single run.
	e.GET("/runs/:run", func(c echo.Context) error {
		r, err := loadRecord(c.Param("run"))
		if err != nil {
			glog.Errorf("Error loading run record: %v", err)
			return c.String(http.StatusNotFound, "Invalid run")
		}
		return c.JSON(http.StatusOK, summarize(c.Param("run"), r))
	})

	// Returns the recorded state transitions of a run.
	e.GET("/runs/:run/events", func(c echo.Context) error {
		r, err := loadRecord(c.Param("run"))
		if err != nil {
			glog.Errorf("Error loading run record: %v", err)
			return c.String(http.StatusNotFound, "Invalid run")
		}
		return c.JSON(http.StatusOK, r.Events)
	})
	return e
}

func main() {
	flag.Parse()
	defer glog.Flush()

	watchBroker := util.NewBroker[string]()
	go watchBroker.Start()
	go watchDirectoryChanges(watchBroker)

	glog.Fatal(newServer(watchBroker).Start(fmt.Sprintf(":%d", *portFlag)))
}

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

// Summarizes run records: outcome counts, glitch window length and how far
// timed transitions overshot their requested delay.
//
// $ go run ./cmd/report -dir runs -logtostderr
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/goglitch"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/stat"
)

var (
	dirFlag = flag.String("dir", "runs", "Run records directory")
)

type Report struct {
	Runs     int
	Results  map[string]int
	Glitches int
	// Milliseconds.
	GlitchMean, GlitchStdDev float64
	Overshoots               int
	OvershootMean            float64
	OvershootStdDev          float64
	OvershootMax             float64
}

func ms(d time.Duration) float64 {
	return d.Seconds() * 1000
}

func summarize(records []*goglitch.Record) Report {
	r := Report{Runs: len(records), Results: map[string]int{}}
	var glitches, overshoots []float64
	for _, rec := range records {
		r.Results[rec.Result.String()]++
		if d, ok := rec.GlitchDuration(); ok {
			glitches = append(glitches, ms(d))
		}
		for _, o := range rec.Overshoot() {
			overshoots = append(overshoots, ms(o))
		}
	}
	r.Glitches = len(glitches)
	if len(glitches) > 0 {
		r.GlitchMean, r.GlitchStdDev = stat.MeanStdDev(glitches, nil)
	}
	r.Overshoots = len(overshoots)
	if len(overshoots) > 0 {
		r.OvershootMean, r.OvershootStdDev = stat.MeanStdDev(overshoots, nil)
		sort.Float64s(overshoots)
		r.OvershootMax = overshoots[len(overshoots)-1]
	}
	return r
}

func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "Runs: %d\n", r.Runs)
	var results []string
	for k := range r.Results {
		results = append(results, k)
	}
	sort.Strings(results)
	for _, k := range results {
		fmt.Fprintf(w, "  %-16s %d\n", k, r.Results[k])
	}
	if r.Glitches > 0 {
		fmt.Fprintf(w, "Glitch window: %.1f ms mean, %.1f ms stddev over %d runs\n",
			r.GlitchMean, r.GlitchStdDev, r.Glitches)
	}
	if r.Overshoots > 0 {
		fmt.Fprintf(w, "Timed overshoot: %.2f ms mean, %.2f ms stddev, %.2f ms max over %d delays\n",
			r.OvershootMean, r.OvershootStdDev, r.OvershootMax, r.Overshoots)
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	files, err := filepath.Glob(filepath.Join(*dirFlag, "*"+goglitch.RecordExt))
	if err != nil {
		glog.Fatal(err)
	}
	var records []*goglitch.Record
	for _, f := range files {
		rec, err := goglitch.LoadRecord(f)
		if err != nil {
			glog.Warningf("Skipping %s: %v", f, err)
			continue
		}
		records = append(records, rec)
	}
	glog.Infof("Loaded %d run records from %s", len(records), *dirFlag)
	summarize(records).Print(os.Stdout)
}

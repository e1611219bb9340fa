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

// Glitches a target between two trigger conditions.
//
// $ go run ./cmd/glitch -logtostderr
// $ go run ./cmd/glitch -profile uboot.yaml -records runs -logtostderr -v=1
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/google/goglitch"
	"github.com/google/goglitch/util"

	"github.com/golang/glog"
)

const version = "1.1.0"

var (
	profileFlag     = flag.String("profile", "", "YAML session profile. Prompts when empty")
	saveProfileFlag = flag.String("save-profile", "", "Writes the prompted answers to this YAML file")
	backendFlag     = flag.String("backend", "", "Hardware backend: pi or cwlite (default pi)")
	outPinFlag      = flag.String("out-pin", "", "Glitch control pin (default GPIO4, or tio3 on cwlite)")
	inPinFlag       = flag.String("in-pin", "", "Power-sense input pin for timed attacks (default GPIO17)")
	pollTimeoutFlag = flag.Duration("poll-timeout", 0, "Gives up waiting for a trigger after this long. 0 waits forever")
	yieldFlag       = flag.Bool("yield", false, "Yields the CPU between empty polls, at the cost of trigger latency")
	echoFlag        = flag.Bool("echo", true, "Prints the trigger buffer on every serial byte")
	recordsFlag     = flag.String("records", "runs", "Directory for run records. Empty disables them")
	versionFlag     = flag.Bool("version", false, "Prints the version and exits")
)

const banner = `
  ___ _         _      ___   _   ___ _  _
 | __| |__ _ __| |_   | _ ) /_\ / __| || |
 | _|| / _' (_-< ' \  | _ \/ _ \\__ \ __ |
 |_| |_\__,_/__/_||_| |___/_/ \_\___/_||_|
`

func loadProfile() (*goglitch.Profile, error) {
	if *profileFlag != "" {
		return goglitch.LoadProfile(*profileFlag)
	}
	fmt.Printf("\n****CONFIGURATION*****\n\n")
	prof, err := util.NewPrompter(os.Stdin, os.Stdout).Profile()
	if err != nil {
		return nil, err
	}
	if *saveProfileFlag != "" {
		if err = prof.Save(*saveProfileFlag); err != nil {
			glog.Warningf("Failed saving profile: %v", err)
		}
	}
	return prof, nil
}

// Flags override the profile.
func applyFlags(prof *goglitch.Profile) {
	if *backendFlag != "" {
		prof.Backend = goglitch.Backend(*backendFlag)
	}
	if *outPinFlag != "" {
		prof.OutputPin = *outPinFlag
	}
	if *inPinFlag != "" {
		prof.InputPin = *inPinFlag
	}
	if *pollTimeoutFlag > 0 {
		prof.PollTimeout = *pollTimeoutFlag
	}
}

func console(ev goglitch.Event) {
	switch ev.Kind {
	case goglitch.EventByte:
		if *echoFlag {
			fmt.Printf("%d: buff = %s\n", ev.Count, ev.Window)
		}
	case goglitch.EventPowerOn:
		fmt.Println("Target powered on")
	case goglitch.EventState:
		switch ev.State {
		case goglitch.StateTriggered:
			fmt.Printf("\n\n\n\n\nGLITCHING INITIATED!\n\n\n\n\n")
		case goglitch.StateAborted:
			fmt.Printf("\nABORTED: %s\n", ev.Err)
		}
	}
}

func saveRecord(rec *goglitch.Record) {
	if *recordsFlag == "" {
		return
	}
	if err := os.MkdirAll(*recordsFlag, 0755); err != nil {
		glog.Warningf("Failed creating records directory: %v", err)
		return
	}
	name := filepath.Join(*recordsFlag, rec.Began.Format("20060102-150405")+goglitch.RecordExt)
	if err := rec.Save(name); err != nil {
		glog.Warningf("Failed saving run record: %v", err)
		return
	}
	glog.Infof("Run record saved to %s", name)
}

func run(ctx context.Context, prof *goglitch.Profile) error {
	attack, err := prof.AttackType()
	if err != nil {
		return err
	}
	hw, err := openHardware(prof, attack)
	if err != nil {
		return err
	}
	// Restores the idle level on every path, including cancellation.
	defer hw.Close()

	var mode goglitch.Mode
	if attack == goglitch.AttackSerial {
		mode = &goglitch.SerialMode{Source: hw.src, Start: []byte(prof.Start), Stop: []byte(prof.Stop)}
	} else {
		mode = &goglitch.TimedMode{StartDelay: prof.StartDelay, StopDelay: prof.StopDelay}
	}

	rec := goglitch.NewRecord(mode)
	rec.Device, rec.Baud = prof.Device, prof.Baud
	opts := []goglitch.Option{
		goglitch.WithObserver(rec.Observe),
		goglitch.WithObserver(console),
		goglitch.WithPollTimeout(prof.PollTimeout),
	}
	if *yieldFlag {
		opts = append(opts, goglitch.WithYield(runtime.Gosched))
	}

	s, err := goglitch.NewSession(mode, hw.act, opts...)
	if err != nil {
		return err
	}
	if attack == goglitch.AttackTimed {
		fmt.Printf("Please turn on target device now!\n\n")
	}
	state, err := s.Run(ctx)
	rec.Finish(state, err)
	saveRecord(rec)
	if err != nil {
		return err
	}
	if attack == goglitch.AttackTimed {
		fmt.Printf("\n\n\n\nGLITCHING CEASED\n\n\n\n")
	} else {
		fmt.Printf("\n\n\n\nGLITCHED\n\n\n\n")
	}
	return nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if *versionFlag {
		fmt.Printf("goglitch %s\n", version)
		return
	}
	fmt.Printf("Welcome to Flash BASH!\n%s\n", banner)

	prof, err := loadProfile()
	if err != nil {
		glog.Exit(err)
	}
	applyFlags(prof)
	if err = prof.Validate(); err != nil {
		glog.Exit(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, prof)
	stop()
	if err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}

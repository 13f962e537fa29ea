// This file is part of vitainput.
//
// vitainput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vitainput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vitainput.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/gui"
	"github.com/jetsetilly/vitainput/hardware/input"
	"github.com/jetsetilly/vitainput/hardware/sampler"
	"github.com/jetsetilly/vitainput/hardware/sampler/ebitenpad"
	"github.com/jetsetilly/vitainput/hardware/sampler/joydev"
	"github.com/jetsetilly/vitainput/hardware/sampler/sdlpad"
	"github.com/jetsetilly/vitainput/hardware/sampler/termpad"
	"github.com/jetsetilly/vitainput/logger"
	"github.com/jetsetilly/vitainput/modalflag"
	"github.com/jetsetilly/vitainput/monitor"
	"github.com/jetsetilly/vitainput/paths"
	"github.com/jetsetilly/vitainput/prefs"
	"github.com/jetsetilly/vitainput/recorder"
	"github.com/jetsetilly/vitainput/statsview"
	"github.com/jetsetilly/vitainput/userinput"
	"github.com/jetsetilly/vitainput/version"
)

// SDL and ebiten both require that window and event handling happen on the
// main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the exit status of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("MONITOR", "RECORD", "PLAYBACK", "WINDOW", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "MONITOR":
		err = track(md, output, false)

	case "RECORD":
		err = track(md, output, true)

	case "PLAYBACK":
		err = playback(md, output)

	case "WINDOW":
		err = window(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.Get())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to every mode that runs a live tracker
type commonFlags struct {
	analog    *bool
	front     *bool
	back      *bool
	fps       *int
	log       *bool
	verbose   *bool
	prefs     *string
	stats     *bool
	statsAddr *string
	memviz    *string

	// whether a group was pushed onto the command line prefs stack
	pushed bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		analog:    md.AddBool("analog", true, "sample the analog sticks"),
		front:     md.AddBool("front", true, "sample the front touch panel"),
		back:      md.AddBool("back", false, "sample the back touch panel"),
		fps:       md.AddInt("fps", 60, "number of tracker updates per second"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		verbose:   md.AddBool("verbose", false, "log every sampler failure"),
		prefs:     md.AddString("prefs", "", "preferences for this session (key::value; key::value)"),
		stats:     md.AddBool("statsview", false, "run statistics server"),
		statsAddr: md.AddString("statsaddr", statsview.Address, "address of statistics server"),
		memviz:    md.AddString("memviz", "", "write graphviz description of the tracker to file on exit"),
	}
}

// the preferences keys set by the sampling flags
var flagPrefs = map[string]string{
	"analog": "input.analog",
	"front":  "input.frontTouch",
	"back":   "input.backTouch",
	"fps":    "monitor.fps",
}

// apply the common flags. must be called after the mode has been parsed and
// before the preferences are loaded. sampling flags that have been set
// explicitly take precedence over the -prefs string
func (cf *commonFlags) apply(md *modalflag.Modes, output io.Writer) {
	if *cf.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	values := map[string]string{
		"analog": fmt.Sprint(*cf.analog),
		"front":  fmt.Sprint(*cf.front),
		"back":   fmt.Sprint(*cf.back),
		"fps":    fmt.Sprint(*cf.fps),
	}

	s := *cf.prefs
	md.Visit(func(flag string) {
		if key, ok := flagPrefs[flag]; ok {
			s = fmt.Sprintf("%s; %s::%s", s, key, values[flag])
		}
	})

	if s != "" {
		prefs.PushCommandLineStack(s)
		cf.pushed = true
	}

	if *cf.stats {
		statsview.Launch(output, *cf.statsAddr)
	}
}

// remove the group pushed by apply() from the command line prefs stack
func (cf *commonFlags) popPrefs() {
	if cf.pushed {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "vitainput", "unused preferences: %s", unused)
		}
		cf.pushed = false
	}
}

// tidy up after the mode has finished
func (cf *commonFlags) finish(inp *input.Input) error {
	if *cf.memviz != "" {
		f, err := os.Create(*cf.memviz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, inp)
	}

	return nil
}

// create the sampler for the named device. the quit function is non-nil if
// the sampler can detect that the user wants to end the session
func newSampler(device string, joyPath string, p *userinput.Preferences) (sampler.Sampler, func() bool, error) {
	deadzone := userinput.Deadzone(p.Deadzone.Get().(float64))

	switch strings.ToUpper(device) {
	case "SDL":
		smp, err := sdlpad.NewSampler(deadzone)
		if err != nil {
			return nil, nil, err
		}
		return smp, nil, nil

	case "JOY":
		smp, err := joydev.NewSampler(joyPath, deadzone)
		if err != nil {
			return nil, nil, err
		}
		logger.Logf(logger.Allow, "joydev", "using %s", smp.Name())
		return smp, nil, nil

	case "TERM":
		smp, err := termpad.NewSampler(p.KeyLatch.Get().(int))
		if err != nil {
			return nil, nil, err
		}
		return smp, smp.Quit, nil
	}

	return nil, nil, curated.Errorf("unknown device: %s", device)
}

func closeSampler(smp sampler.Sampler) {
	if c, ok := smp.(sampler.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Log(logger.Allow, "vitainput", err)
		}
	}
}

// initialise the tracker using the preferences
func initInput(inp *input.Input, p *userinput.Preferences) {
	inp.InitAdvanced(
		p.Analog.Get().(bool),
		p.FrontTouch.Get().(bool),
		p.BackTouch.Get().(bool),
	)
}

// update the tracker at the specified rate until interrupted, the quit function
// returns true, or the done function returns true. the monitor is updated
// every frame
func loop(inp *input.Input, mon *monitor.Monitor, fps int, quit func() bool, done func() bool) error {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-intChan:
			return nil

		case <-ticker.C:
			inp.Update()
			if err := mon.Frame(inp); err != nil {
				return err
			}
			if quit != nil && quit() {
				return nil
			}
			if done != nil && done() {
				return nil
			}
		}
	}
}

// track runs the MONITOR and RECORD modes.
func track(md *modalflag.Modes, output io.Writer, record bool) error {
	md.NewMode()

	device := md.AddString("device", "SDL", "input device: SDL, JOY, TERM")
	joyPath := md.AddString("joydev", "/dev/input/js0", "joystick device used by the JOY device")
	cf := addCommonFlags(md)

	if record {
		md.AdditionalHelp("the transcript filename is optional. a unique name is generated if one is not specified")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var transcript string
	switch len(md.RemainingArgs()) {
	case 0:
		if record {
			transcript = paths.UniqueFilename("transcript", "")
		}
	case 1:
		if !record {
			return fmt.Errorf("too many arguments for %s mode", md)
		}
		transcript = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cf.apply(md, output)
	defer cf.popPrefs()

	pref, err := userinput.NewPreferences()
	if err != nil {
		return err
	}

	smp, quit, err := newSampler(*device, *joyPath, pref)
	if err != nil {
		return err
	}
	defer closeSampler(smp)

	inp := input.NewInput(smp)
	inp.SetVerbose(*cf.verbose)
	initInput(inp, pref)
	defer inp.Fini()

	var rec *recorder.Recorder
	if record {
		rec, err = recorder.NewRecorder(transcript)
		if err != nil {
			return err
		}
		if err := inp.AttachRecorder(rec); err != nil {
			return err
		}
	}

	// the terminal is in raw mode if the terminal device is being used
	mon := monitor.NewMonitor(output, quit != nil)

	err = loop(inp, mon, pref.FPS.Get().(int), quit, nil)

	if rec != nil {
		inp.DetachRecorder()
		if endErr := rec.End(); endErr != nil && err == nil {
			err = endErr
		}
		fmt.Fprintf(output, "! recording completed: %s\n", rec)
	}

	if err != nil {
		return err
	}

	return cf.finish(inp)
}

// playback runs the PLAYBACK mode.
func playback(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	watch := md.AddBool("watch", false, "show the transcript in the monitor rather than listing button changes")
	fps := md.AddInt("fps", 60, "playback rate when watching")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	plb, err := recorder.NewPlayback(md.GetArg(0))
	if err != nil {
		return err
	}

	if *watch {
		if *fps < 1 {
			return fmt.Errorf("fps must be at least one")
		}
		inp := input.NewInput(plb)
		inp.InitAdvanced(true, true, true)
		defer inp.Fini()
		return loop(inp, monitor.NewMonitor(output, false), *fps, nil, plb.Ended)
	}

	sum, err := recorder.Replay(plb, output)
	if err != nil {
		return err
	}
	fmt.Fprint(output, sum)

	return nil
}

// window runs the WINDOW mode.
func window(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	record := md.AddString("record", "", "record the session to the named transcript")
	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cf.apply(md, output)
	defer cf.popPrefs()

	pref, err := userinput.NewPreferences()
	if err != nil {
		return err
	}

	smp := ebitenpad.NewSampler(userinput.Deadzone(pref.Deadzone.Get().(float64)))

	inp := input.NewInput(smp)
	inp.SetVerbose(*cf.verbose)
	initInput(inp, pref)
	defer inp.Fini()

	var rec *recorder.Recorder
	if *record != "" {
		rec, err = recorder.NewRecorder(*record)
		if err != nil {
			return err
		}
		if err := inp.AttachRecorder(rec); err != nil {
			return err
		}
	}

	err = gui.Launch(inp, pref.FPS.Get().(int))

	if rec != nil {
		inp.DetachRecorder()
		if endErr := rec.End(); endErr != nil && err == nil {
			err = endErr
		}
		fmt.Fprintf(output, "! recording completed: %s\n", rec)
	}

	if err != nil {
		return err
	}

	return cf.finish(inp)
}

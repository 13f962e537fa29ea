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

package userinput

import (
	"github.com/jetsetilly/vitainput/curated"
	"github.com/jetsetilly/vitainput/paths"
	"github.com/jetsetilly/vitainput/prefs"
)

// Preferences collates the settings of the vitainput tool. The values are
// stored in the preferences file in the resource directory.
type Preferences struct {
	dsk *prefs.Disk

	// sampler configuration used when the tracker is initialised
	Analog     prefs.Bool
	FrontTouch prefs.Bool
	BackTouch  prefs.Bool

	// thumbstick deadzone as a proportion of the axis
	Deadzone prefs.Float

	// the number of frames a terminal key is held for after being pressed
	KeyLatch prefs.Int

	// number of tracker updates per second
	FPS prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file, which is
// created if it does not exist.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Deadzone.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0 || f >= 1 {
			return curated.Errorf("preferences: deadzone must be between 0.0 and 1.0")
		}
		return nil
	})
	p.KeyLatch.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("preferences: key latch must be at least one frame")
		}
		return nil
	})
	p.FPS.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 1 || n > 1000 {
			return curated.Errorf("preferences: fps must be between 1 and 1000")
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{"input.analog", &p.Analog},
		{"input.frontTouch", &p.FrontTouch},
		{"input.backTouch", &p.BackTouch},
		{"input.deadzone", &p.Deadzone},
		{"terminal.keyLatch", &p.KeyLatch},
		{"monitor.fps", &p.FPS},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to their default values.
func (p *Preferences) SetDefaults() {
	p.Analog.Set(true)
	p.FrontTouch.Set(true)
	p.BackTouch.Set(false)
	p.Deadzone.Set(0.1)
	p.KeyLatch.Set(6)
	p.FPS.Set(60)
}

// Load current settings from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current settings to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

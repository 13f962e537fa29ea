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

// Package version reports the version of the vitainput binary. The version
// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/vitainput/version.number=v0.1.0"
//
// Otherwise the VCS information embedded by the go tool is used.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "vitainput"

// set by the linker
var number string

// Info describes the build of the running binary.
type Info struct {
	// the release number. "unreleased" if the binary was built from a VCS
	// checkout without a number and "local" if there is no VCS information
	Number string

	// the VCS revision with a "+dirty" suffix if the checkout was modified
	Revision string

	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Number)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Number, i.Revision)
}

// Get returns the Info of the running binary.
func Get() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return build(number, nil)
	}
	return build(number, info.Settings)
}

func build(number string, settings []debug.BuildSetting) Info {
	var vcs bool
	var rev string
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	i := Info{
		Number:   number,
		Revision: rev,
		Release:  number != "",
	}

	if i.Revision == "" {
		i.Revision = "no revision information"
	} else if modified {
		i.Revision += "+dirty"
	}

	if i.Number == "" {
		if vcs {
			i.Number = "unreleased"
		} else {
			i.Number = "local"
		}
	}

	return i
}

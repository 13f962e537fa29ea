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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/vitainput/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates the key and value of an entry in the preferences file
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]Pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

func (dsk *Disk) String() string {
	var s strings.Builder
	for _, k := range dsk.keys() {
		fmt.Fprintf(&s, "%s%s%s\n", k, separator, dsk.entries[k])
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Add preference value to list of values to store/load. The key must be
// unique and must not contain the separator or a newline.
func (dsk *Disk) Add(key string, p Pref) error {
	if key == "" || strings.Contains(key, strings.TrimSpace(separator)) || strings.ContainsAny(key, "\n;") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their default state.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}
	return nil
}

// read the preferences file and return every entry as a string. a missing
// file is not an error but the returned boolean will be false
func (dsk *Disk) read() (map[string]string, bool, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, false, nil
		}
		return nil, false, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line should be the boilerplate warning. we don't insist on
	// it but if it's there it's skipped
	first := true

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if line == WarningBoilerPlate {
				continue
			}
		}

		k, v, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, false, curated.Errorf("prefs: %v", err)
	}

	return data, true, nil
}

// Save current preference values to disk. Entries in the file that are not
// known to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var s strings.Builder
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		fmt.Fprintf(&s, "%s%s%s\n", k, separator, data[k])
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFirstUse is true and the file
// does not exist, the current values are saved and no error is returned.
// Otherwise a missing file results in a NoPrefsFile error.
//
// After loading, values on the top of the command line stack override the
// loaded values.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	data, ok, err := dsk.read()
	if err != nil {
		return err
	}

	if !ok {
		if saveOnFirstUse {
			if err := dsk.Save(); err != nil {
				return err
			}
			return dsk.commandLine()
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	for _, k := range dsk.keys() {
		if v, ok := data[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	return dsk.commandLine()
}

// apply values from the command line stack
func (dsk *Disk) commandLine() error {
	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}
	return nil
}

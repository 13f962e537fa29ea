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

package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// the name of the base resource directory when it is in the current directory.
// the leading dot is removed when the base is in the user's config directory
const baseResourcePath = ".vitainput"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base path. The subPth argument is a directory
// beneath the base path and is created if it doesn't exist. The file argument
// can be empty, in which case the returned path is a directory.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	var base string

	if _, err := os.Stat(baseResourcePath); err == nil {
		base = baseResourcePath
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(cnf, strings.TrimPrefix(baseResourcePath, "."))
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

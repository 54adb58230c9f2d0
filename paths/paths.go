// This file is part of Soundboard.
//
// Soundboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Soundboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Soundboard.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// local config directory. used in preference to the user config directory if
// it exists
const localConfigDir = ".soundboard"

// config directory created inside os.UserConfigDir()
const userConfigDir = "soundboard"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the config directory. The subPth argument names a
// sub-directory of the config directory and may be empty. The directory is
// created if it does not exist.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	if _, err := os.Stat(localConfigDir); err == nil {
		return mkdir(filepath.Join(localConfigDir, subPth))
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return mkdir(filepath.Join(localConfigDir, subPth))
	}

	return mkdir(filepath.Join(cnf, userConfigDir, subPth))
}

func mkdir(pth string) (string, error) {
	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}
	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", err
	}
	return pth, nil
}

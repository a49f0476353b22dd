// This file is part of Kestrel.
//
// Kestrel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kestrel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Kestrel.  If not, see <https://www.gnu.org/licenses/>.

package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvOverride names the environment variable that replaces the base path.
const EnvOverride = "KESTREL_RESOURCES"

// BasePath returns the directory that JoinPath() roots paths in.
func BasePath() (string, error) {
	if b, ok := os.LookupEnv(EnvOverride); ok && b != "" {
		return b, nil
	}
	return resourcePath()
}

// JoinPath prepends the supplied path with the base path, if it is not
// already present.
//
// Directories are created as necessary to reach the final element of the
// path. The final element itself is not touched or created.
func JoinPath(path ...string) (string, error) {
	b, err := BasePath()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	p := filepath.Join(path...)
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}

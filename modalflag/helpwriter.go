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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage message produced by the flag package so that
// it can be amended before being printed.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	usage := hw.buffer.String()
	banner, flags, _ := strings.Cut(usage, "\n")

	var s strings.Builder

	if flags == "" && len(subModes) == 0 {
		s.WriteString("No help available")
		if path != "" {
			fmt.Fprintf(&s, " for %s", path)
		}
		s.WriteString("\n")
		_, _ = io.WriteString(output, s.String())
		return
	}

	if path != "" {
		fmt.Fprintf(&s, "%s for %s mode\n", banner, path)
	} else {
		fmt.Fprintf(&s, "%s\n", banner)
	}

	s.WriteString(flags)

	if len(subModes) > 0 {
		if flags != "" {
			s.WriteString("\n")
		}
		fmt.Fprintf(&s, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(&s, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(&s, "\n%s\n", additionalHelp)
	}

	_, _ = io.WriteString(output, s.String())
}

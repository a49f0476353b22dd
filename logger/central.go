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

// Package logger is the central log for the module. Entries are tagged with
// the name of the subsystem making the entry, eg. "event" or "canvas".
// Consecutive identical entries are collapsed into one entry with a repeat
// count.
//
// The log is bounded. The oldest entries are discarded once the maximum
// number of entries has been reached.
package logger

import (
	"io"
)

// the central logger used by the package level functions.
var central *logger

// the maximum number of entries kept by the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger. The detail argument can be a
// string, an error or a fmt.Stringer. Other types are formatted with the
// default format verb.
func Log(perm Permission, tag string, detail any) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		central.logf(tag, detail, args...)
	}
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho to print new entries to io.Writer. A nil io.Writer stops the echo.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}

// BorrowLog gives the provided function access to the entries in the log.
// The slice must not be retained after the function returns.
func BorrowLog(f func([]Entry)) {
	central.borrowLog(f)
}

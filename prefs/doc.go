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

// Package prefs holds typed preference values and the means to save them to
// and load them from disk.
//
// Preference values are used directly by the code that needs them. Setting a
// value with the Set() function triggers the pre and post hooks, which is how
// a change to a preference is applied to the running system. For example, the
// window package applies a change to the background colour preference to the
// window in the post hook.
//
// The Disk type associates preference values with a key and a file. The file
// format is one "key :: value" entry per line.
//
// Values can also be overridden from the command line with the
// PushCommandLineStack() function. A command line group is a string of
// "key::value" pairs separated by semi-colons. Values in the most recently
// pushed group are applied after the file has been loaded, and are consumed
// in the process.
package prefs

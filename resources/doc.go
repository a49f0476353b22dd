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

// Package resources prepares paths for the files that kestrel keeps between
// sessions, such as the preferences file and screenshots.
//
// JoinPath() roots the path in a base directory that depends on how the
// binary was built. For builds with the "release" build tag the base is in
// the user's configuration directory. On modern Linux systems the full path
// would be something like:
//
//	/home/user/.config/kestrel/
//
// For other builds the base is in the current working directory:
//
//	.kestrel
//
// The base can be overridden with the KESTREL_RESOURCES environment variable.
package resources

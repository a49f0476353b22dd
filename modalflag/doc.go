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

// Package modalflag wraps the flag package of the standard library with
// support for program modes. Each mode has its own set of flags and can
// itself have sub-modes.
//
// Arguments are supplied with NewArgs() and then parsed one mode at a time.
// Before each call to Parse() the flags and sub-modes of the current mode are
// declared:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("VIEW", "SNAP", "VERSION")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "SNAP":
//		md.NewMode()
//		frames := md.AddInt("frames", 1, "number of frames to render")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not the name of a sub-mode. Sub-mode names are not case sensitive.
//
// Help is requested with the -help flag. The help message lists the flags of
// the current mode followed by the available sub-modes.
package modalflag

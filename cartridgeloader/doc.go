// This file is part of atari2600-emulator.
//
// atari2600-emulator is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari2600-emulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari2600-emulator.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridgeloader reads a cartridge image into memory, from either
// a filename or an embedded byte slice, so it can be handed to the
// cartridge package. It does not interpret the bytes: mapper selection
// from image size is the cartridge package's job.
//
// # File extensions
//
// The only file extensions recognised are those of the two supported
// mappers:
//
//	Atari 2k/4k	".bin", ".rom", ".a26"
//	Atari 8k F8	".f8"
//
// File extensions are case insensitive.
//
// # Hashes
//
// NewLoaderFromData() computes the SHA1 hash of the data immediately and
// stores it in Loader.HashSHA1. For a loader created with
// NewLoaderFromFilename(), Open() computes the hash of the file's data,
// checks it against Loader.HashSHA1 if that field was pre-populated, and
// then stores it there.
package cartridgeloader

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

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schirmr/atari2600-emulator/errors"
)

// NoFilename is returned by NewLoaderFromFilename when given an empty or
// whitespace-only filename.
var NoFilename = errors.Errorf(errors.CartridgeLoaderError, "no filename")

// Loader abstracts the two ways cartridge data reaches the emulator: a
// local file, or data embedded into the binary with go:embed.
type Loader struct {
	io.ReadSeeker

	// the name to use for the cartridge represented by Loader
	Name string

	// filename of cartridge being loaded. for embedded data this is the
	// name given to NewLoaderFromData()
	Filename string

	// mapper ID ("AUTO" or "F8"), upper-cased; an empty argument becomes
	// "AUTO". the cartridge package selects its mapper from the image size
	// alone and does not read this field
	Mapping string

	// expected hash of the loaded cartridge. empty string means the hash
	// is unknown and need not be validated. after Open() the value is the
	// hash of the loaded data
	HashSHA1 string

	// cartridge data. empty until Open() is called unless the loader was
	// created by NewLoaderFromData()
	Data *[]byte

	data *bytes.Buffer

	// whether the Loader was created with NewLoaderFromData()
	embedded bool
}

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from a local file.
//
// The mapping argument will be used to set the Mapping field, unless the
// argument is either "AUTO" or the empty string, in which case the file
// extension is used instead. Recognised extensions are listed in
// FileExtensions.
//
// Filenames can contain whitespace, including leading and trailing
// whitespace, but cannot consist only of whitespace.
func NewLoaderFromFilename(filename string, mapping string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, NoFilename
	}

	filename, err := filepath.Abs(filename)
	if err != nil {
		return Loader{}, errors.Errorf(errors.CartridgeLoaderError, err)
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping == "" {
		mapping = "AUTO"
	}

	ld := Loader{
		Filename: filename,
		Mapping:  mapping,
	}

	data := make([]byte, 0)
	ld.Data = &data

	if ld.Mapping == "AUTO" {
		extension := strings.ToUpper(filepath.Ext(filename))
		if extension == ".F8" {
			ld.Mapping = "F8"
		}
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// NewLoaderFromData is the preferred method of initialisation for the
// Loader type when loading data from a byte slice. Useful for data
// embedded into the binary with go:embed.
//
// The name argument should not include a file extension; it won't be
// used.
func NewLoaderFromData(name string, data []byte, mapping string) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, errors.Errorf(errors.CartridgeLoaderError, "embedded data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, errors.Errorf(errors.CartridgeLoaderError, "no name for embedded data")
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping == "" {
		mapping = "AUTO"
	}

	ld := Loader{
		Filename: name,
		Mapping:  mapping,
		Data:     &data,
		data:     bytes.NewBuffer(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// Implements the io.Reader interface.
func (ld Loader) Read(p []byte) (int, error) {
	if ld.data == nil {
		return 0, io.EOF
	}
	return ld.data.Read(p)
}

// Implements the io.Seeker interface.
func (ld Loader) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}

// Open reads the cartridge data from the local file named by Filename, or
// is a no-op for data created with NewLoaderFromData (which is already
// loaded). It checks the SHA1 hash of the data against HashSHA1 if that
// field was pre-populated.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	if ld.Data != nil && len(*ld.Data) > 0 {
		return nil
	}

	f, err := os.Open(ld.Filename)
	if err != nil {
		return errors.Errorf(errors.CartridgeLoaderError, err)
	}
	defer f.Close()

	*ld.Data, err = io.ReadAll(f)
	if err != nil {
		return errors.Errorf(errors.CartridgeLoaderError, err)
	}

	ld.data = bytes.NewBuffer(*ld.Data)

	hash := fmt.Sprintf("%x", sha1.Sum(*ld.Data))
	if ld.HashSHA1 != "" && ld.HashSHA1 != hash {
		return errors.Errorf(errors.CartridgeLoaderError, "unexpected SHA1 hash value")
	}
	ld.HashSHA1 = hash

	return nil
}

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

package romloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/soundboard/curated"
)

// Sentinal error patterns.
const (
	LoaderError    = "romloader: %v"
	NoMember       = "romloader: no file named %s in archive"
	EmptyArchive   = "romloader: archive contains no files"
	FileTooLarge   = "romloader: %s is larger than %d bytes"
	UnexpectedHash = "romloader: unexpected hash value"
)

// maximum size of any loaded ROM. the OKIM6295 address space is only 256k
// but board ROMs and program dumps can be larger
const maxROMSize = 8 * 1024 * 1024

// Format of the file named by the Loader.
type Format int

// List of valid Format values.
const (
	FormatRaw Format = iota
	FormatZIP
	Format7z
	FormatRAR
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatZIP:
		return "zip"
	case Format7z:
		return "7z"
	case FormatRAR:
		return "rar"
	}
	return "unknown"
}

var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21}
)

// Loader is used to specify the ROM to load.
type Loader struct {
	// filename of the ROM or of the archive containing the ROM
	Filename string

	// name of the file inside the archive. ignored for raw files
	Member string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// format of the file as detected by Load()
	Format Format

	// name of the file the data was loaded from. for raw files this is the
	// base of Filename. for archives it is the base of the member
	Name string

	// copy of the loaded data. subsequent calls to Load() do nothing
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The filename argument can take the form "archive.zip:member" in which case
// the Member field is set accordingly.
func NewLoader(filename string) Loader {
	ld := Loader{
		Filename: filename,
	}

	// a colon after the extension separates the archive from the member. a
	// colon in the first two characters is likely to be a windows drive
	// letter and is ignored
	if i := strings.LastIndex(filename, ":"); i > 1 {
		ld.Filename = filename[:i]
		ld.Member = filename[i+1:]
	}

	return ld
}

// ShortName returns a shortened version of the loaded name, without the path
// or the extension.
func (ld Loader) ShortName() string {
	n := ld.Name
	if n == "" {
		n = filepath.Base(ld.Filename)
	}
	return strings.TrimSuffix(n, path.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the data from the named file. The Data and Hash fields are filled in
// on success.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	f, err := os.Open(ld.Filename)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return curated.Errorf(LoaderError, err)
	}
	ld.Format = detectFormat(header[:n])

	switch ld.Format {
	case FormatZIP:
		ld.Data, ld.Name, err = extractFromZIP(ld.Filename, ld.Member)
	case Format7z:
		ld.Data, ld.Name, err = extractFrom7z(ld.Filename, ld.Member)
	case FormatRAR:
		ld.Data, ld.Name, err = extractFromRAR(ld.Filename, ld.Member)
	default:
		_, err = f.Seek(0, io.SeekStart)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		ld.Data, err = limitedRead(f, ld.Filename)
		ld.Name = filepath.Base(ld.Filename)
	}
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(UnexpectedHash)
	}
	ld.Hash = hash

	return nil
}

func detectFormat(header []byte) Format {
	if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEmpty) {
		return FormatZIP
	}
	if bytes.HasPrefix(header, magic7z) {
		return Format7z
	}
	if bytes.HasPrefix(header, magicRAR) {
		return FormatRAR
	}
	return FormatRaw
}

// matchMember returns true if the archived file should be extracted.
func matchMember(name string, member string) bool {
	if member == "" {
		return true
	}
	return strings.EqualFold(name, member) || strings.EqualFold(path.Base(name), member)
}

func limitedRead(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxROMSize+1))
	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}
	if len(data) > maxROMSize {
		return nil, curated.Errorf(FileTooLarge, name, maxROMSize)
	}
	return data, nil
}

func noMember(member string) error {
	if member == "" {
		return curated.Errorf(EmptyArchive)
	}
	return curated.Errorf(NoMember, member)
}

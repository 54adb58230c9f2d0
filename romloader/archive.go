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
	"archive/zip"
	"io"
	"path"

	"github.com/bodgit/sevenzip"
	"github.com/jetsetilly/soundboard/curated"
	"github.com/nwaples/rardecode/v2"
)

func extractFromZIP(filename string, member string) ([]byte, string, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf(LoaderError, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !matchMember(f.Name, member) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf(LoaderError, err)
		}
		defer rc.Close()

		data, err := limitedRead(rc, f.Name)
		return data, path.Base(f.Name), err
	}

	return nil, "", noMember(member)
}

func extractFrom7z(filename string, member string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf(LoaderError, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !matchMember(f.Name, member) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf(LoaderError, err)
		}
		defer rc.Close()

		data, err := limitedRead(rc, f.Name)
		return data, path.Base(f.Name), err
	}

	return nil, "", noMember(member)
}

func extractFromRAR(filename string, member string) ([]byte, string, error) {
	r, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf(LoaderError, err)
	}
	defer r.Close()

	for {
		hdr, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", curated.Errorf(LoaderError, err)
		}

		if hdr.IsDir || !matchMember(hdr.Name, member) {
			continue
		}

		data, err := limitedRead(r, hdr.Name)
		return data, path.Base(hdr.Name), err
	}

	return nil, "", noMember(member)
}

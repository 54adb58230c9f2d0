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

// Package romloader is used to load program and sample ROM data from disk.
// Data can be loaded from plain binary files or from inside ZIP, 7z and RAR
// archives, the format of the file being detected by its leading bytes
// rather than by its extension.
//
// Arcade ROM sets usually bundle many chips in one archive. The Member field
// of the Loader type names the file to extract from the archive. If Member is
// empty the first file in the archive is used.
package romloader

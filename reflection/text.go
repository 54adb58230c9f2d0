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

package reflection

import (
	"fmt"
	"io"
)

// TextRenderer writes each reflected step as a line of text.
type TextRenderer struct {
	output io.Writer
}

// NewTextRenderer is the preferred method of initialisation for the
// TextRenderer type.
func NewTextRenderer(output io.Writer) *TextRenderer {
	return &TextRenderer{output: output}
}

// Reflect implements the Renderer interface.
func (tr *TextRenderer) Reflect(ref []ReflectedStep) error {
	for _, r := range ref {
		if _, err := fmt.Fprintln(tr.output, r.String()); err != nil {
			return err
		}
	}
	return nil
}

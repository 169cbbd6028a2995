// SPDX-License-Identifier: MIT

package matrix

import "strings"

// emptyRendering is what String returns for a matrix with no cells.
const emptyRendering = "empty"

// formatColumns renders an h×w table of pre-rendered cells.
// Every non-final cell of a row is padded to the widest cell of the whole
// table plus one separating space; the final cell is left unpadded.
// Rows are joined with "\n".
func formatColumns(h, w int, cell func(r, c int) string) string {
	if h == 0 || w == 0 {
		return emptyRendering
	}

	text := make([]string, h*w)
	widest := 0
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			s := cell(r, c)
			text[r*w+c] = s
			widest = max(widest, len(s))
		}
	}

	var b strings.Builder
	for r := 0; r < h; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < w; c++ {
			s := text[r*w+c]
			b.WriteString(s)
			if c < w-1 {
				b.WriteString(strings.Repeat(" ", widest-len(s)+1))
			}
		}
	}

	return b.String()
}

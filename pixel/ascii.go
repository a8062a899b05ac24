package pixel

import "fmt"

// DefaultLegend maps the runes used by maze sketches to colors:
// '#' background (black), '.' path (white).
func DefaultLegend() map[rune]Color {
	return map[rune]Color{
		'#': Black,
		'.': White,
	}
}

// FromASCII builds a Buffer from equally long rows of runes, translating
// each rune through legend. A nil legend means DefaultLegend().
//
//	rows := []string{
//		"##.##",
//		"#...#",
//		"###.#",
//	}
//
// Returns ErrEmptyBuffer for no rows or empty rows, ErrSizeMismatch for
// ragged rows and ErrUnknownRune for runes missing from the legend.
// Complexity: O(W×H).
func FromASCII(rows []string, legend map[rune]Color) (*Buffer, error) {
	if legend == nil {
		legend = DefaultLegend()
	}
	if len(rows) == 0 {
		return nil, ErrEmptyBuffer
	}
	w := len([]rune(rows[0]))
	if w == 0 {
		return nil, ErrEmptyBuffer
	}

	pix := make([]Color, 0, w*len(rows))
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d runes, want %d", ErrSizeMismatch, r, len(runes), w)
		}
		for c, ch := range runes {
			col, ok := legend[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownRune, ch, r, c)
			}
			pix = append(pix, col)
		}
	}

	return NewBuffer(w, len(rows), pix)
}

package render

import (
	"bufio"
	"io"
	"strconv"
)

// Escape sequences used by the interactive demo.
const (
	EnableMouse  = "\x1b[?1000h\x1b[?1002h\x1b[?1003h\x1b[?1006h"
	DisableMouse = "\x1b[?1006l\x1b[?1003l\x1b[?1002l\x1b[?1000l"
	HideCursor   = "\x1b[?25l"
	ShowCursor   = "\x1b[?25h"
	ClearScreen  = "\x1b[2J"
	CursorHome   = "\x1b[H"
	EnterAlt     = "\x1b[?1049h"
	ExitAlt      = "\x1b[?1049l"
)

// WriteANSI writes the buffer to w with SGR styling, one row per line.
// Style sequences are emitted only when the style changes.
func WriteANSI(w io.Writer, b *Buffer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < b.height; y++ {
		last := Style{}
		styled := false
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if !styled || c.Style != last {
				bw.WriteString(sgr(c.Style))
				last = c.Style
				styled = true
			}
			bw.WriteRune(c.Rune)
		}
		bw.WriteString("\x1b[0m\r\n")
	}
	return bw.Flush()
}

// sgr returns the select-graphic-rendition sequence for s, always starting with a reset.
func sgr(s Style) string {
	seq := []byte("\x1b[0")
	if s.HasAttr(AttrBold) {
		seq = append(seq, ";1"...)
	}
	if s.HasAttr(AttrDim) {
		seq = append(seq, ";2"...)
	}
	if s.HasAttr(AttrUnderline) {
		seq = append(seq, ";4"...)
	}
	if s.HasAttr(AttrReverse) {
		seq = append(seq, ";7"...)
	}
	if !s.Fg.IsDefault() {
		seq = append(seq, ";38;5;"...)
		seq = strconv.AppendUint(seq, uint64(s.Fg.Index()), 10)
	}
	if !s.Bg.IsDefault() {
		seq = append(seq, ";48;5;"...)
		seq = strconv.AppendUint(seq, uint64(s.Bg.Index()), 10)
	}
	return string(append(seq, 'm'))
}

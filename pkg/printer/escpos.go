package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
)

// Document builds an ESC/POS byte stream for thermal printers. Every line is
// mirrored into a plain text copy without control codes, used for screens
// and for printers that only take text.
type Document struct {
	buf   bytes.Buffer
	plain strings.Builder
	width int // print width in characters (32 for 58mm, 48 for 80mm)
	align int
}

// NewDocument creates a new ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// Width returns the line width in characters
func (d *Document) Width() int {
	return d.width
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	d.plain.WriteByte('\n')
	return d
}

// FeedLines sends n line feeds to the printer only.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.align = align
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size. Use FontNormal or FontDouble.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	d.plain.WriteString(d.alignPlain(s))
	d.plain.WriteByte('\n')
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
// Example: "Subtotal:                 270.00"
func (d *Document) KeyValue(key, value string) *Document {
	return d.Text(spread(key, value, d.width))
}

// ItemLine prints a receipt item line: qty x name, then right-aligned total.
// Names too long for the line are cut short.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	room := d.width - utf8.RuneCountInString(total) - 1
	if room > 0 && utf8.RuneCountInString(prefix) > room {
		prefix = string([]rune(prefix)[:room])
	}
	return d.Text(spread(prefix, total, d.width))
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Plain returns the document as plain text.
func (d *Document) Plain() string {
	return d.plain.String()
}

func (d *Document) alignPlain(s string) string {
	pad := d.width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	switch d.align {
	case AlignCenter:
		return strings.Repeat(" ", pad/2) + s
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// spread places left and right on one line of width characters, keeping at
// least one space between them.
func spread(left, right string, width int) string {
	spaces := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}

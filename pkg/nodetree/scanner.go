package nodetree

import (
	"bufio"
	"io"
	"strings"
)

// reader is a byte reader with multi-byte pushback. The scanner's list
// lookahead needs to push back two bytes, which bufio.Reader alone cannot
// do, so pushed-back bytes live on a small LIFO stack.
type reader struct {
	r      *bufio.Reader
	pushed []byte
}

func newReader(r io.Reader) *reader {
	return &reader{r: bufio.NewReader(r)}
}

func (r *reader) readByte() (byte, error) {
	if n := len(r.pushed); n > 0 {
		ch := r.pushed[n-1]
		r.pushed = r.pushed[:n-1]
		return ch, nil
	}
	return r.r.ReadByte()
}

func (r *reader) unread(ch byte) {
	r.pushed = append(r.pushed, ch)
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanName reads a record or field name, leaving the cursor at the next
// structural delimiter. Scanning stops at ':', '{' or '}'. A '(' needs a
// one-token lookahead: if the next non-space byte is '{', the parenthesis
// opens a list and does not belong to the name; otherwise it is ordinary
// name content and the whitespace between is dropped.
//
// End of input simply terminates the name; the caller detects truncated
// structures when it next reads the stream.
func scanName(in *reader) string {
	var b strings.Builder
	for {
		ch, err := in.readByte()
		if err != nil {
			break
		}
		if ch == ':' || ch == '{' || ch == '}' {
			in.unread(ch)
			break
		}
		if ch == '(' {
			la, err := in.readByte()
			for err == nil && isSpace(la) {
				la, err = in.readByte()
			}
			if err == nil && la == '{' {
				in.unread(la)
				in.unread(ch)
				break
			}
			if err == nil {
				in.unread(la)
			}
		}
		b.WriteByte(ch)
	}
	return sanitizeName(b.String())
}

// sanitizeName trims surrounding whitespace and rewrites characters that
// are reserved in the DOT HTML-like label markup: '"' becomes a space,
// '<' and '>' become '-'.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '"':
			return ' '
		case '<', '>':
			return '-'
		}
		return r
	}, name)
}

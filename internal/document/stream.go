package document

// stream.go cleans input bytes while they are read:
//
//   - bomReader drops a leading UTF-8 BOM (0xEF 0xBB 0xBF)
//   - sanitizer replaces every invalid UTF-8 byte with '?'
//
// NewCleanReader chains both; the BOM must go first.

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

// NewCleanReader returns a reader that yields r without a leading BOM and
// with invalid UTF-8 bytes replaced by '?'.
func NewCleanReader(r io.Reader) io.Reader {
	return &sanitizer{r: &bomReader{r: bufio.NewReader(r)}}
}

type bomReader struct {
	r       *bufio.Reader
	checked bool
}

func (b *bomReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		if head, err := b.r.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
			if _, err := b.r.Discard(len(utf8BOM)); err != nil {
				return 0, err
			}
		}
	}
	return b.r.Read(p)
}

// sanitizer rewrites invalid bytes in place. A multi-byte rune split across
// two reads is held back until its remaining bytes arrive.
type sanitizer struct {
	r       io.Reader
	pending []byte
}

func (s *sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	if len(s.pending) > 0 {
		return n, nil
	}

	m, err := s.r.Read(p[n:])
	n += m

	keep := n
	if err == nil {
		keep -= incompleteTail(p[:n])
		s.pending = append(s.pending, p[keep:n]...)
	}
	replaceInvalid(p[:keep])
	return keep, err
}

// incompleteTail returns how many trailing bytes of b start a rune that is
// not complete yet.
func incompleteTail(b []byte) int {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		c := b[len(b)-i]
		if !utf8.RuneStart(c) {
			continue
		}
		if c >= 0xC0 && !utf8.FullRune(b[len(b)-i:]) {
			return i
		}
		return 0
	}
	return 0
}

func replaceInvalid(b []byte) {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			b[i] = '?'
		}
		i += size
	}
}

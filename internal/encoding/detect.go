// Package encoding normalizes uploaded spreadsheet exports to UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// decoders maps charsets reported by chardet to decoders. Spreadsheet exports from
// Indonesian Windows machines are usually windows-1252.
var decoders = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-15":  charmap.ISO8859_15,
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

// Detect names the charset of a content prefix.
func Detect(prefix []byte) string {
	switch {
	case bytes.HasPrefix(prefix, bomUTF8):
		return "UTF-8"
	case bytes.HasPrefix(prefix, []byte{0xFF, 0xFE}):
		return "UTF-16LE"
	case bytes.HasPrefix(prefix, []byte{0xFE, 0xFF}):
		return "UTF-16BE"
	case utf8.Valid(prefix):
		return "UTF-8"
	}

	res, err := chardet.NewTextDetector().DetectBest(prefix)
	if err != nil {
		return "windows-1252"
	}

	if _, ok := decoders[res.Charset]; ok || res.Charset == "UTF-8" {
		return res.Charset
	}

	return "windows-1252"
}

// NewUTF8Reader returns r decoded to UTF-8 with any UTF-8 byte order mark removed.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	prefix, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	charset := Detect(prefix)
	if charset == "UTF-8" {
		if bytes.HasPrefix(prefix, bomUTF8) {
			_, _ = br.Discard(len(bomUTF8))
		}

		return br, nil
	}

	return transform.NewReader(br, decoders[charset].NewDecoder()), nil
}

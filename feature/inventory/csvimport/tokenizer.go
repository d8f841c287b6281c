package csvimport

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Row is one logical CSV record.
type Row struct {
	// Line is the 1-based physical line the row starts on.
	Line int
	// Fields holds the decoded cells.
	Fields []string
	// Blank is true when the row holds nothing but whitespace.
	Blank bool
}

// Reader reads CSV rows from an input stream.
type Reader struct {
	r       *bufio.Reader
	line    int
	started bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Read returns the next row, or io.EOF once the input is exhausted.
func (t *Reader) Read() (Row, error) {
	if !t.started {
		t.started = true
		t.skipBOM()
	}

	row := Row{Line: t.line + 1}
	var cur strings.Builder
	inQuotes := false
	sawAny := false
	nonSpace := false

	for {
		c, _, err := t.r.ReadRune()
		if err == io.EOF {
			if !sawAny {
				return Row{}, io.EOF
			}
			t.line++
			row.Fields = append(row.Fields, cur.String())
			row.Blank = !nonSpace
			return row, nil
		}
		if err != nil {
			return Row{}, err
		}
		sawAny = true

		switch {
		case c == '"':
			nonSpace = true
			if inQuotes && t.peek('"') {
				_, _ = t.r.ReadByte()
				cur.WriteByte('"')
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			nonSpace = true
			row.Fields = append(row.Fields, cur.String())
			cur.Reset()
		case c == '\r' && t.peek('\n'):
			_, _ = t.r.ReadByte()
			if inQuotes {
				t.line++
				cur.WriteByte('\n')
				continue
			}
			return t.finish(row, &cur, nonSpace), nil
		case c == '\n':
			if inQuotes {
				t.line++
				cur.WriteByte('\n')
				continue
			}
			return t.finish(row, &cur, nonSpace), nil
		default:
			if !unicode.IsSpace(c) {
				nonSpace = true
			}
			cur.WriteRune(c)
		}
	}
}

// ReadAll reads every remaining row.
func (t *Reader) ReadAll() ([]Row, error) {
	var rows []Row
	for {
		row, err := t.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func (t *Reader) finish(row Row, cur *strings.Builder, nonSpace bool) Row {
	t.line++
	row.Fields = append(row.Fields, cur.String())
	row.Blank = !nonSpace
	return row
}

func (t *Reader) peek(b byte) bool {
	next, err := t.r.Peek(1)
	return err == nil && next[0] == b
}

func (t *Reader) skipBOM() {
	c, _, err := t.r.ReadRune()
	if err != nil {
		return
	}
	if c != '\uFEFF' {
		_ = t.r.UnreadRune()
	}
}

// SplitRow splits a single line into fields.
// An empty line yields one empty field.
func SplitRow(line string) []string {
	row, err := NewReader(strings.NewReader(line)).Read()
	if err != nil {
		return []string{""}
	}
	return row.Fields
}

package session

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// maxLine bounds one journal record. Carrier and market lines run to a few
// hundred kilobytes.
const maxLine = 4 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRecords splits a journal stream into records, one per non-blank line.
func ReadRecords(r io.Reader) ([][]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	var out [][]byte
	for sc.Scan() {
		line := bytes.TrimSpace(bytes.TrimPrefix(sc.Bytes(), utf8BOM))
		if len(line) == 0 {
			continue
		}
		out = append(out, bytes.Clone(line))
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("read records: %w", err)
	}
	return out, nil
}

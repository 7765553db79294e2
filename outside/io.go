package outside

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/pcfgo/pcfgerr"
	"github.com/npillmayer/pcfgo/symtab"
)

// WriteTo persists t's outside scores as one `name score` line per
// non-terminal (spec §4.6, §6.4). Symbols with an outside score of
// exactly 0 are omitted; reading the file back leaves their default at
// 0 regardless.
func (t *Table) WriteTo(w io.Writer, tab *symtab.Table, path string) error {
	bw := bufio.NewWriter(w)
	for sym, score := range t.outside {
		if score == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s %v\n", tab.Get(sym), score); err != nil {
			return pcfgerr.NewIOError(path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return pcfgerr.NewIOError(path, err)
	}
	return nil
}

// ReadFrom populates a Table's outside scores from a sidecar file,
// interning each name via tab. Lines not matching `name score` are a
// MalformedOutsideError.
func ReadFrom(r io.Reader, tab *symtab.Table, path string) (*Table, error) {
	t := &Table{
		inside:  make(map[int32]float64),
		outside: make(map[int32]float64),
	}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, &pcfgerr.MalformedOutsideError{Path: path, Line: line, Remnant: text}
		}
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &pcfgerr.MalformedOutsideError{Path: path, Line: line, Remnant: text}
		}
		sym := tab.Insert(fields[0])
		t.outside[sym] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, pcfgerr.NewIOError(path, err)
	}
	return t, nil
}

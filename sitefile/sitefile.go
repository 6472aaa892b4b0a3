// Package sitefile loads and saves the plain-text site-list format: one
// "<x> <y>" pair per line, decimal floats, dense ids assigned in file
// order. There is no header and no comment syntax.
package sitefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vorocell/vorocell/geom"
)

// ErrMalformedLine is wrapped with the offending line number and returned
// by Load when a non-blank line does not parse as "<x> <y>".
var ErrMalformedLine = errors.New("sitefile: malformed line")

// Load reads sites from r, one per non-blank line, assigning dense ids in
// file order. Blank lines are skipped; anything else that fails to parse
// as two decimal floats is reported via ErrMalformedLine.
func Load(r io.Reader) ([]geom.Point, error) {
	var pts []geom.Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// Save writes points to w, one "<x> <y>" pair per line.
func Save(w io.Writer, points []geom.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Package flightio reads flight legs and requests from the pipe-delimited
// text format and writes the plain-text plan report.
//
// Both input formats start with a record count on its own line, followed by
// that many records:
//
//	3
//	Dallas|Austin|98.50|47
//	Austin|Houston|95|39
//	Dallas|Houston|101|51
//
//	2
//	Dallas|Houston|T
//	Austin|Dallas|C
package flightio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atharv3903/flightplan/internal/model"
)

var (
	// ErrMalformedCount is returned when the leading record count is missing,
	// not a non-negative integer, or larger than the number of records.
	ErrMalformedCount = errors.New("flightio: malformed record count")

	// ErrMalformedRecord is returned for a record with missing fields, an
	// empty city, or an invalid number.
	ErrMalformedRecord = errors.New("flightio: malformed record")
)

// ParseError locates a malformed line.
type ParseError struct {
	Line int
	Err  error
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// lineReader yields trimmed lines and tracks their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineReader{sc: sc}
}

func (lr *lineReader) next() (string, bool, error) {
	if !lr.sc.Scan() {
		return "", false, lr.sc.Err()
	}
	lr.line++
	return strings.TrimSpace(lr.sc.Text()), true, nil
}

// readCount reads the leading count, skipping blank lines before it.
func (lr *lineReader) readCount() (int, error) {
	for {
		text, ok, err := lr.next()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &ParseError{Line: lr.line + 1, Err: ErrMalformedCount, Msg: "missing count"}
		}
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			return 0, &ParseError{Line: lr.line, Err: ErrMalformedCount, Msg: fmt.Sprintf("invalid count %q", text)}
		}
		return n, nil
	}
}

// readRecords reads n records of at least the given number of pipe-separated fields.
func (lr *lineReader) readRecords(n, fields int, each func(line int, fields []string) error) error {
	for i := 0; i < n; i++ {
		text, ok, err := lr.next()
		if err != nil {
			return err
		}
		if !ok {
			return &ParseError{Line: lr.line + 1, Err: ErrMalformedCount, Msg: fmt.Sprintf("expected %d records, got %d", n, i)}
		}
		parts := strings.Split(text, "|")
		if len(parts) < fields {
			return &ParseError{Line: lr.line, Err: ErrMalformedRecord, Msg: fmt.Sprintf("want %d fields, got %d", fields, len(parts))}
		}
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if err := each(lr.line, parts); err != nil {
			return err
		}
	}
	return nil
}

// ReadEdges parses a flight leg list.
func ReadEdges(r io.Reader) ([]model.Edge, error) {
	lr := newLineReader(r)
	n, err := lr.readCount()
	if err != nil {
		return nil, err
	}

	edges := make([]model.Edge, 0, min(n, 1024))
	err = lr.readRecords(n, 4, func(line int, f []string) error {
		if f[0] == "" || f[1] == "" {
			return &ParseError{Line: line, Err: ErrMalformedRecord, Msg: "empty city"}
		}
		cost, err := strconv.ParseFloat(f[2], 64)
		if err != nil || cost < 0 {
			return &ParseError{Line: line, Err: ErrMalformedRecord, Msg: fmt.Sprintf("invalid cost %q", f[2])}
		}
		time, err := strconv.Atoi(f[3])
		if err != nil || time < 0 {
			return &ParseError{Line: line, Err: ErrMalformedRecord, Msg: fmt.Sprintf("invalid time %q", f[3])}
		}
		edges = append(edges, model.Edge{A: f[0], B: f[1], Cost: cost, Time: time})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return edges, nil
}

// ReadQueries parses a request list. The criterion is "T" for time, anything
// else ranks by cost.
func ReadQueries(r io.Reader) ([]model.Query, error) {
	lr := newLineReader(r)
	n, err := lr.readCount()
	if err != nil {
		return nil, err
	}

	queries := make([]model.Query, 0, min(n, 1024))
	err = lr.readRecords(n, 3, func(line int, f []string) error {
		queries = append(queries, model.Query{
			Origin:      f[0],
			Destination: f[1],
			Criterion:   model.ParseCriterion(f[2]),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries, nil
}

// Package pointio reads point sets and tours from plain text.
//
// Point files hold one record per line: three whitespace-separated floating
// point coordinates in x y z order. Extra trailing columns are ignored, blank
// lines and lines starting with '#' are skipped. Point IDs are not stored in
// the file; the loader assigns sequential 0-based (or 1-based) IDs.
//
// Loading fails fast: the first malformed record aborts the load with a
// *ParseError carrying the 1-based line number, and no partial point set is
// ever returned.
package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/startour/geom"
)

// Sentinel errors; match with errors.Is.
var (
	// ErrEmpty is returned when the input holds no point record.
	ErrEmpty = errors.New("pointio: no points")

	// ErrTooFewFields signals a record with fewer than three coordinates.
	ErrTooFewFields = errors.New("pointio: record needs x y z")

	// ErrBadCoordinate signals a coordinate that is not a number.
	ErrBadCoordinate = errors.New("pointio: unparsable coordinate")

	// ErrNonFinite signals a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("pointio: non-finite coordinate")

	// ErrCountMismatch signals that the number of records differs from Options.ExpectedCount.
	ErrCountMismatch = errors.New("pointio: point count mismatch")

	// ErrBadTour signals a tour string that is not a permutation of 0..n-1.
	ErrBadTour = errors.New("pointio: invalid tour")
)

// ParseError locates a malformed record.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending token or line
	Err  error  // one of the sentinels above
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// Options controls the loader.
type Options struct {
	// ExpectedCount, when > 0, is the exact number of records required.
	ExpectedCount int

	// OneBased assigns IDs 1..n instead of 0..n-1.
	OneBased bool
}

// Load parses all point records from r.
//
// Errors: *ParseError (wrapping ErrTooFewFields, ErrBadCoordinate or
// ErrNonFinite), ErrEmpty, ErrCountMismatch, or the reader's own error.
//
// Complexity: O(size of input).
func Load(r io.Reader, opts Options) ([]geom.Point, error) {
	var (
		sc     = bufio.NewScanner(r)
		points []geom.Point
		line   int
		text   string
		fields []string
		xyz    [3]float64
		k      int
		err    error
	)
	for sc.Scan() {
		line++
		text = strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields = strings.Fields(text)
		if len(fields) < 3 {
			return nil, &ParseError{Line: line, Text: text, Err: ErrTooFewFields}
		}
		for k = 0; k < 3; k++ {
			xyz[k], err = strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, &ParseError{Line: line, Text: fields[k], Err: ErrBadCoordinate}
			}
			if math.IsNaN(xyz[k]) || math.IsInf(xyz[k], 0) {
				return nil, &ParseError{Line: line, Text: fields[k], Err: ErrNonFinite}
			}
		}

		id := len(points)
		if opts.OneBased {
			id++
		}
		points = append(points, geom.Point{ID: id, X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("pointio: read: %w", err)
	}

	if len(points) == 0 {
		return nil, ErrEmpty
	}
	if opts.ExpectedCount > 0 && len(points) != opts.ExpectedCount {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCountMismatch, len(points), opts.ExpectedCount)
	}

	return points, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts Options) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointio: %w", err)
	}
	defer f.Close()

	points, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// Write emits points in the format Load reads, one "x y z" record per line.
func Write(w io.Writer, points []geom.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and calls Write.
func WriteFile(path string, points []geom.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pointio: %w", err)
	}
	if err = Write(f, points); err != nil {
		_ = f.Close()
		return fmt.Errorf("pointio: write %s: %w", path, err)
	}

	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

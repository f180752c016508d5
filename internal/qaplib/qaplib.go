// Package qaplib reads QAPLIB-format problem instances: a single integer
// n followed by 2·n² whitespace-separated numbers, the two n×n matrices
// A and B in row-major order. This is the de-facto benchmark format for
// quadratic assignment problems.
package qaplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadHeader is returned when the instance order is missing or
	// not a positive integer.
	ErrBadHeader = errors.New("qaplib: invalid instance order")

	// ErrBadValue is returned when a matrix entry is not numeric.
	ErrBadValue = errors.New("qaplib: non-numeric matrix entry")

	// ErrTruncated is returned when fewer than 2·n² entries follow the
	// header.
	ErrTruncated = errors.New("qaplib: truncated instance")
)

// ReadInstance parses a QAPLIB instance from r and returns the two
// matrices. Extra trailing tokens are ignored, matching the tolerance of
// the reference readers.
//
// Complexity: O(n²).
func ReadInstance(r io.Reader) (*mat.Dense, *mat.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, nil, ErrBadHeader
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n <= 0 {
		return nil, nil, ErrBadHeader
	}

	vals := make([]float64, 0, 2*n*n)
	for len(vals) < 2*n*n && sc.Scan() {
		v, convErr := strconv.ParseFloat(sc.Text(), 64)
		if convErr != nil {
			return nil, nil, fmt.Errorf("token %q: %w", sc.Text(), ErrBadValue)
		}
		vals = append(vals, v)
	}
	if scanErr := sc.Err(); scanErr != nil {
		return nil, nil, scanErr
	}
	if len(vals) < 2*n*n {
		return nil, nil, ErrTruncated
	}

	a := mat.NewDense(n, n, append([]float64(nil), vals[:n*n]...))
	b := mat.NewDense(n, n, append([]float64(nil), vals[n*n:2*n*n]...))

	return a, b, nil
}

// ReadFile parses the QAPLIB instance stored at path.
func ReadFile(path string) (*mat.Dense, *mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ReadInstance(f)
}

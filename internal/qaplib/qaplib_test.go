package qaplib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleInstance = `3

0 1 2
1 0 3
2 3 0

0 5 5
5 0 5
5 5 0
`

func TestReadInstance(t *testing.T) {
	a, b, err := ReadInstance(strings.NewReader(sampleInstance))
	require.NoError(t, err)

	ar, ac := a.Dims()
	require.Equal(t, 3, ar)
	require.Equal(t, 3, ac)
	require.Equal(t, 1.0, a.At(0, 1))
	require.Equal(t, 3.0, a.At(2, 1))
	require.Equal(t, 5.0, b.At(0, 1))
	require.Equal(t, 0.0, b.At(2, 2))
}

func TestReadInstance_TrailingTokensIgnored(t *testing.T) {
	_, _, err := ReadInstance(strings.NewReader(sampleInstance + " 99 98"))
	require.NoError(t, err)
}

func TestReadInstance_Errors(t *testing.T) {
	_, _, err := ReadInstance(strings.NewReader(""))
	require.ErrorIs(t, err, ErrBadHeader)

	_, _, err = ReadInstance(strings.NewReader("-2 0 0"))
	require.ErrorIs(t, err, ErrBadHeader)

	_, _, err = ReadInstance(strings.NewReader("2 0 1 1 0 0 1"))
	require.ErrorIs(t, err, ErrTruncated)

	_, _, err = ReadInstance(strings.NewReader("2 0 1 x 0 0 1 1 0"))
	require.ErrorIs(t, err, ErrBadValue)
}

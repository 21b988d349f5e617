package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadXY(t *testing.T) {
	in := "# t, v\n1, 2.5\n2,4.5\n 3 , 6.5 ,extra\n"

	x, y, err := readXY(strings.NewReader(in), 0, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x)
	assert.Equal(t, []float64{2.5, 4.5, 6.5}, y)
}

func TestReadXY_HeaderAndColumns(t *testing.T) {
	in := "id,v,t\na,10,1\nb,20,2\n"

	x, y, err := readXY(strings.NewReader(in), 2, 1, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, x)
	assert.Equal(t, []float64{10, 20}, y)
}

func TestReadXY_Errors(t *testing.T) {
	cases := map[string]struct {
		in         string
		xCol, yCol int
		skip       bool
		msg        string
	}{
		"header not skipped": {"t,v\n1,2\n", 0, 1, false, "line 1: x"},
		"missing column":     {"1,2\n3\n", 0, 1, false, "line 2: y: column 1 missing"},
		"empty":              {"# nothing\n", 0, 1, false, "no samples"},
		"negative column":    {"1,2\n", -1, 1, false, "negative column"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := readXY(strings.NewReader(tc.in), tc.xCol, tc.yCol, tc.skip)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestReadInput_Stdin(t *testing.T) {
	x, _, err := readInput("-", strings.NewReader("1,1\n2,2\n"), 0, 1, false)
	require.NoError(t, err)
	assert.Len(t, x, 2)

	_, _, err = readInput("/nonexistent/lvfit.csv", nil, 0, 1, false)
	assert.Error(t, err)
}

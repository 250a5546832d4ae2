package frame_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxuan19/CAST/pkg/errors"
	"github.com/pxuan19/CAST/pkg/frame"
)

func TestReadCSV(t *testing.T) {
	t.Parallel()
	in := "id,temp,elev,label\n" +
		"s1,12.5,100,forest\n" +
		"s2,8.0,250,water\n"
	tbl, err := frame.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	// "id" and "label" are non-numeric and skipped.
	assert.Equal(t, []string{"temp", "elev"}, tbl.Names())
	temp, _ := tbl.Column("temp")
	assert.Equal(t, []float64{12.5, 8.0}, temp)
}

func TestReadCSVMissingTokens(t *testing.T) {
	t.Parallel()
	in := "x,y\n1.5,1\nNA,2\n,3\nnull,4\n2.5,5\n"
	tbl, err := frame.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	x, _ := tbl.Column("x")
	require.Len(t, x, 5)
	assert.Equal(t, 1.5, x[0])
	assert.True(t, math.IsNaN(x[1]))
	assert.True(t, math.IsNaN(x[2]))
	assert.True(t, math.IsNaN(x[3]))
	assert.Equal(t, 2.5, x[4])
}

func TestReadCSVRejectsDegenerateInput(t *testing.T) {
	t.Parallel()
	_, err := frame.ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSerialization))

	_, err = frame.ReadCSV(strings.NewReader("name,label\nfoo,bar\n"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSerialization))
}

func TestWriteVectorCSV(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	err := frame.WriteVectorCSV(&sb, "uncertainty", []float64{0.5, math.NaN(), 1})
	require.NoError(t, err)
	assert.Equal(t, "uncertainty\n0.5\nNA\n1\n", sb.String())
}

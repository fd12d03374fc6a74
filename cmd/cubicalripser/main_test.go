package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubicalripser/cubical"
	"github.com/katalvlaran/cubicalripser/diagram"
	"github.com/katalvlaran/cubicalripser/gridio"
)

func writeVoid(t *testing.T, name string) string {
	t.Helper()
	values := make([]float64, 27)
	values[13] = 5
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, gridio.Save(path, gridio.FormatAuto, gridio.Image{Extents: []int{3, 3, 3}, Values: values}, DefaultThreshold))

	return path
}

func TestRun_StdoutCSV(t *testing.T) {
	in := writeVoid(t, "void.complex")
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-threshold", "9", in}, &stdout, &stderr))
	assert.Equal(t, "dim,birth,death\n-1,0,9\n2,0,5\n", stdout.String())
}

func TestRun_OutputFileAndVerify(t *testing.T) {
	in := writeVoid(t, "void.txt.zst")
	out := filepath.Join(t.TempDir(), "pairs.dipha.lz4")
	var stdout, stderr bytes.Buffer

	args := []string{"-method", "compute_pairs", "-verify", "-summary", "-output", out, "-log-level", "info", "-log-json", in}
	require.NoError(t, run(args, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"strategies agree"`)
	assert.Contains(t, stderr.String(), `"run":`)
	assert.Contains(t, stderr.String(), "dim  2:")

	pairs, err := diagram.Load(out)
	require.NoError(t, err)
	assert.True(t, diagram.Equal([]cubical.Pair{
		{Dim: -1, Birth: 0, Death: DefaultThreshold},
		{Dim: 2, Birth: 0, Death: 5},
	}, pairs))
}

func TestRun_TextLog(t *testing.T) {
	in := writeVoid(t, "void.complex")
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-log-level", "debug", in}, &stdout, &stderr))
	log := stderr.String()
	assert.Contains(t, log, `msg="image loaded"`)
	assert.Contains(t, log, `msg="dimension reduced"`)
	assert.Contains(t, log, "dimension=2")
	assert.Contains(t, log, "run=")
}

func TestRun_Errors(t *testing.T) {
	in := writeVoid(t, "void.complex")
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"NoInput", nil, "expected one input file"},
		{"BadMethod", []string{"-method", "bogus", in}, "unknown method"},
		{"BadFormat", []string{"-format", "png", in}, "unknown format"},
		{"BadLevel", []string{"-log-level", "loud", in}, "log level"},
		{"Missing", []string{filepath.Join(t.TempDir(), "none.complex")}, "no such file"},
		{"WrongFormat", []string{"-format", "perseus", in}, "malformed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(tc.args, &bytes.Buffer{}, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), tc.want)
		})
	}
}

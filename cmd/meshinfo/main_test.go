package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams() params {
	return params{
		size: 5, start: 0, end: 1, point: math.NaN(), density: 0.1,
		spot: 100, strike: 100, maturity: 1, rate: 0.05, vol: 0.2,
	}
}

func TestRegistryBuildsEveryMesher(t *testing.T) {
	p := defaultParams()
	p.point = 0.5
	for _, e := range registry {
		if e.name == "blackscholes" {
			p.point = 100
		}
		m, err := e.build(p)
		require.NoError(t, err, e.name)
		assert.Equal(t, p.size, m.Size(), e.name)
	}
}

func TestResolveEntries(t *testing.T) {
	got := resolveEntries([]string{" Uniform ", "nope", "concentrating"})
	require.Len(t, got, 2)
	assert.Equal(t, "uniform", got[0].name)
	assert.Equal(t, "concentrating", got[1].name)
}

func TestPrintNodesAndOperator(t *testing.T) {
	p := defaultParams()
	m, err := registry[0].build(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printNodes(&buf, m))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2+p.size)
	assert.Equal(t, []string{"0", "0.00000000", "-", "0.25000000"}, strings.Fields(lines[2]))
	assert.Equal(t, "-", strings.Fields(lines[len(lines)-1])[3])

	buf.Reset()
	require.NoError(t, printOperator(&buf, m, "dxx", p))
	assert.Contains(t, buf.String(), "32")

	for _, op := range []string{"dx", "bs"} {
		_, err := buildOperator(m, op, p)
		require.NoError(t, err, op)
	}
	_, err = buildOperator(m, "curl", p)
	assert.Error(t, err)
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(registry))
	assert.True(t, strings.HasPrefix(lines[0], "blackscholes"))
}

func TestSavePlot(t *testing.T) {
	p := defaultParams()
	p.size = 21
	p.point = 0.3
	var meshers []namedMesher
	for _, e := range registry[:2] {
		m, err := e.build(p)
		require.NoError(t, err)
		meshers = append(meshers, namedMesher{e.name, m})
	}

	path := filepath.Join(t.TempDir(), "grid.svg")
	require.NoError(t, savePlot(path, meshers))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treetrip/treegen"
)

func TestReadInput_YAMLRoundTrip(t *testing.T) {
	in := inputDoc{K: 5, Tree: treegen.Tree{
		Parents:        []int{1, 2, 2, 1, 2, 4, 4, 3},
		Attractiveness: []int{3, 5, 5, 4, 4, 3, 6, 5},
	}}

	var buf bytes.Buffer
	require.NoError(t, writeInput(&buf, in))
	assert.Contains(t, buf.String(), "k: 5")

	out, err := readInput(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadInput_JSON(t *testing.T) {
	doc, err := readInput(strings.NewReader(`{"k": 2, "parents": [0, 0], "attractiveness": [1, 7]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.K)
	assert.Equal(t, []int{0, 0}, doc.Parents)
	assert.Equal(t, []int{1, 7}, doc.Attractiveness)
}

func TestReadInput_UnknownField(t *testing.T) {
	_, err := readInput(strings.NewReader("k: 1\nparents: [0]\nattractiveness: [1]\ncolour: red\n"))
	require.Error(t, err)
}

func TestResolveK(t *testing.T) {
	k, err := inputDoc{K: 4}.resolveK(0)
	require.NoError(t, err)
	assert.Equal(t, 4, k)

	k, err = inputDoc{K: 4}.resolveK(9)
	require.NoError(t, err)
	assert.Equal(t, 9, k)

	_, err = inputDoc{}.resolveK(0)
	assert.ErrorIs(t, err, errMissingK)
}

func TestSolveCmd(t *testing.T) {
	var out bytes.Buffer
	root := &rootFlags{logLevel: "error"}
	doc := inputDoc{K: 5, Tree: treegen.Tree{
		Parents:        []int{1, 3, 0, 3, 2, 4, 4},
		Attractiveness: []int{6, 2, 7, 5, 6, 5, 2},
	}}

	require.NoError(t, runSolve(&out, root, &solveFlags{parallel: 1}, doc.K, doc))
	assert.True(t, strings.HasPrefix(out.String(), "Answer 4  "), out.String())
}

func TestSolveCmd_BadLogLevel(t *testing.T) {
	var out bytes.Buffer
	doc := inputDoc{K: 1, Tree: treegen.Tree{Parents: []int{0}, Attractiveness: []int{1}}}
	err := runSolve(&out, &rootFlags{logLevel: "loud"}, &solveFlags{}, 1, doc)
	require.Error(t, err)
}

func TestGenCmd_Output(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"gen", "--shape", "star", "--n", "4", "--profile", "uniform", "--base", "2", "--k", "3"})
	require.NoError(t, cmd.Execute())

	doc, err := readInput(&out)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.K)
	assert.Equal(t, []int{0, 0, 0, 0}, doc.Parents)
	assert.Equal(t, []int{2, 2, 2, 2}, doc.Attractiveness)
}

func TestGenCmd_Solve(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"gen", "--shape", "straight", "--n", "20", "--profile", "elevated",
		"--base", "4", "--peak", "5", "--index", "0", "--k", "10", "--solve"})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "Answer 10  "), out.String())
}

func TestGenCmd_UnknownShape(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"gen", "--shape", "ring"})
	require.Error(t, cmd.Execute())
}

func TestDumpMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "treetrip_test_total", Help: "test"})
	other := prometheus.NewCounter(prometheus.CounterOpts{Name: "unrelated_total", Help: "test"})
	reg.MustRegister(c, other)
	c.Add(3)

	var out bytes.Buffer
	require.NoError(t, dumpMetrics(&out, reg))
	assert.Equal(t, "treetrip_test_total 3\n", out.String())
}

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "minigrad "+version+"\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "Commands:")

	out.Reset()
	err := run([]string{"train"}, &out)
	assert.EqualError(t, err, `unknown command "train"`)
}

func TestRun_Demo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"demo"}, &out))

	s := out.String()
	assert.Contains(t, s, "a: Node(value=2, grad=6, op=leaf)")
	assert.Contains(t, s, "b: Node(value=-3, grad=-4, op=leaf)")
	assert.Contains(t, s, "g: Node(value=-8, grad=1, op=mul)")
	assert.Contains(t, s, "MLP[3 -> 4 relu, 4 -> 4 relu, 4 -> 1 linear]: 41 parameters")
}

func TestRun_GradCheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"gradcheck", "-n", "20", "-seed", "7"}, &out))
	assert.Contains(t, out.String(), "gradcheck: 20 points ok")

	assert.Error(t, run([]string{"gradcheck", "-n", "0"}, &out))
}

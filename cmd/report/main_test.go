package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestReport_RejectsUnknownGrade(t *testing.T) {
	err := execute("--grade", "GX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--grade")
	assert.Contains(t, err.Error(), "unknown grade")
}

func TestReport_RejectsInvertedYears(t *testing.T) {
	err := execute("--from", "2023", "--to", "2019")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is after")
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fromstr"
	"go.uber.org/zap"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCmd(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		expect      string
		expectErr   error
	}{
		{description: "text", args: []string{"parse", "Mark,20"}, expect: "name=Mark age=20\n"},
		{description: "json", args: []string{"parse", "-f", "json", "Mark,20", "John,32"}, expect: `[{"name":"Mark","age":20},{"name":"John","age":32}]` + "\n"},
		{description: "invalid", args: []string{"parse", "Mark,20", "John,32,man"}, expectErr: fromstr.ErrBadLen},
	}
	for _, testCase := range testCases {
		stdout, _, err := execute(t, "", testCase.args...)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, stdout, testCase.description)
	}
}

func TestParseCmd_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "", "parse", "-f", "xml", "Mark,20")
	assert.EqualError(t, err, "unknown format: xml")
}

func TestFileCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.txt")
	require.NoError(t, os.WriteFile(path, []byte("# people\nMark,20\n\nJohn,32\n"), 0o644))

	stdout, _, err := execute(t, "", "file", "--comment", "#", path)
	require.NoError(t, err)
	assert.Equal(t, "name=Mark age=20\nname=John age=32\n", stdout)

	stdout, stderr, err := execute(t, "Mark,20\nJohn\n", "file", "-f", "json", "-")
	assert.EqualError(t, err, "1 of 2 records were invalid")
	assert.Equal(t, `[{"name":"Mark","age":20}]`+"\n", stdout)
	assert.Contains(t, stderr, "line 2: failed to parse person \"John\"")

	_, _, err = execute(t, "", "file", filepath.Join(dir, "missing.txt"))
	assert.ErrorContains(t, err, "read records file")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestRunFile_ErrorWriteFailure(t *testing.T) {
	a := &app{logger: zap.NewNop()}
	var stdout bytes.Buffer
	err := runFile(a, &stdout, failingWriter{}, "text", []byte("Mark,20\nJohn\n"), nil)
	assert.EqualError(t, err, "closed")
	assert.Equal(t, "name=Mark age=20\n", stdout.String())
}

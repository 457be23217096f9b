package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSource writes src to a temp .c file and returns its path, per
// the teacher's lang/in/cli/cli_test.go pattern of driving Run/run
// against real files on disk instead of stubbing the file system.
func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.c")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunSuccess(t *testing.T) {
	path := writeSource(t, "int main(){ return 0; }")
	var stdout, stderr bytes.Buffer

	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "[OK] parse succeeded")
	assert.Empty(t, stderr.String())
}

func TestRunMissingFileArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Usage: llc")
}

func TestRunFileNotFound(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"does-not-exist.c"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stdout.String(), "[Error] Source file not found")
}

func TestRunSyntaxError(t *testing.T) {
	path := writeSource(t, "int main(){ return 0 }")
	var stdout, stderr bytes.Buffer

	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "[SyntaxError]")
}

func TestRunShowTreeAndAST(t *testing.T) {
	path := writeSource(t, "int main(){ return 0; }")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--show-tree", "--show-ast", path}, &stdout, &stderr)

	require.Equal(t, 0, code)
	out := stdout.String()
	assert.Contains(t, out, "=== Parse Tree ===")
	assert.Contains(t, out, "=== AST ===")
	assert.Contains(t, out, "FuncDef: main")
}

func TestRunExportXlsxExplicitPath(t *testing.T) {
	path := writeSource(t, "int main(){ return 0; }")
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "custom_table.xlsx")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--export-xlsx=" + xlsxPath, path}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "[Export] LL(1) parse table saved to: "+xlsxPath)
	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunExportXlsxBareDefaultsPath(t *testing.T) {
	path := writeSource(t, "int main(){ return 0; }")
	workDir := t.TempDir()

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(workDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(cwd)) })

	var stdout, stderr bytes.Buffer
	code := run([]string{"--export-xlsx", path}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "[Export] LL(1) parse table saved to: parse_table.xlsx")
	info, err := os.Stat(filepath.Join(workDir, "parse_table.xlsx"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunExportXlsxUsedAndTraceXlsx(t *testing.T) {
	path := writeSource(t, "int main(){ return 0; }")
	dir := t.TempDir()
	usedPath := filepath.Join(dir, "used.xlsx")
	tracePath := filepath.Join(dir, "trace.xlsx")
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"--export-xlsx-used=" + usedPath,
		"--export-trace-xlsx=" + tracePath,
		path,
	}, &stdout, &stderr)

	require.Equal(t, 0, code)
	out := stdout.String()
	assert.Contains(t, out, "[Export] Used LL(1) table entries saved to: "+usedPath)
	assert.Contains(t, out, "[Export] LL(1) trace table saved to: "+tracePath)
	require.FileExists(t, usedPath)
	require.FileExists(t, tracePath)
}

func TestRunBadFlagUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--not-a-real-flag"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.True(t, strings.Contains(stderr.String(), "flag provided but not defined") || stderr.String() != "")
}

package xlsxout_test

import (
	"archive/zip"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/llc-go/internal/xlsxout"
)

func TestWriteGridProducesAValidZipWithRequiredParts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	grid := [][]string{
		{"", "a", "b"},
		{"S", "S->a", ""},
	}
	err := xlsxout.WriteGrid(path, "Sheet1", grid)
	require.NoError(t, err)

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/worksheets/sheet1.xml",
		"xl/styles.xml",
	} {
		assert.True(t, names[want], "missing required OOXML part %s", want)
	}
}

func TestWriteGridOmitsEmptyCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	grid := [][]string{{"x", "", "y"}}
	require.NoError(t, xlsxout.WriteGrid(path, "Sheet1", grid))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	var sheet []byte
	for _, f := range zr.File {
		if f.Name == "xl/worksheets/sheet1.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			buf, err := io.ReadAll(rc)
			rc.Close()
			require.NoError(t, err)
			sheet = buf
		}
	}
	require.NotEmpty(t, sheet)
	content := string(sheet)
	assert.Contains(t, content, `r="A1"`)
	assert.NotContains(t, content, `r="B1"`)
	assert.Contains(t, content, `r="C1"`)
}

func TestWriteGridCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.xlsx")
	require.NoError(t, xlsxout.WriteGrid(path, "Sheet1", [][]string{{"a"}}))
}

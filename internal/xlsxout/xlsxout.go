// Package xlsxout writes a minimal single-sheet .xlsx workbook without any
// third-party spreadsheet library, porting
// original_source/service/parse_table.py's export_xlsx: raw archive/zip
// parts plus hand-written OOXML, exactly mirroring the Python original's
// own no-dependency approach rather than reaching for an ecosystem xlsx
// package (see DESIGN.md).
package xlsxout

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteGrid writes grid (row-major strings, "" cells omitted) as a
// single worksheet named sheetName to path, creating parent directories
// as needed.
func WriteGrid(path, sheetName string, grid [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("xlsxout: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xlsxout: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	parts := []struct {
		name string
		body []byte
	}{
		{"[Content_Types].xml", contentTypesXML()},
		{"_rels/.rels", relsRootXML()},
		{"xl/workbook.xml", workbookXML(sheetName)},
		{"xl/_rels/workbook.xml.rels", relsWorkbookXML()},
		{"xl/worksheets/sheet1.xml", sheetXML(grid)},
		{"xl/styles.xml", stylesXML()},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("xlsxout: %w", err)
		}
		if _, err := w.Write(part.body); err != nil {
			return fmt.Errorf("xlsxout: %w", err)
		}
	}

	return zw.Close()
}

// colLetter converts a 1-indexed column number to its base-26 A1 letters
// (1 -> A, 26 -> Z, 27 -> AA), matching parse_table.py's col_letter.
func colLetter(idx int) string {
	var letters []byte
	for idx > 0 {
		idx--
		rem := idx % 26
		letters = append(letters, byte('A'+rem))
		idx /= 26
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

func sheetXML(grid [][]string) []byte {
	var body strings.Builder
	for r, row := range grid {
		rowNum := r + 1
		fmt.Fprintf(&body, `<row r="%d">`, rowNum)
		for c, value := range row {
			if value == "" {
				continue
			}
			ref := fmt.Sprintf("%s%d", colLetter(c+1), rowNum)
			fmt.Fprintf(&body, `<c r="%s" t="inlineStr"><is><t>%s</t></is></c>`, ref, escapeXML(value))
		}
		body.WriteString("</row>")
	}

	var out bytes.Buffer
	out.WriteString(xmlDecl)
	out.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">`)
	out.WriteString("<sheetData>")
	out.WriteString(body.String())
	out.WriteString("</sheetData></worksheet>")
	return out.Bytes()
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}

const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

func workbookXML(sheetName string) []byte {
	return []byte(xmlDecl +
		`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<sheets><sheet name="` + escapeXML(sheetName) + `" sheetId="1" r:id="rId1"/></sheets>` +
		`</workbook>`)
}

func relsRootXML() []byte {
	return []byte(xmlDecl +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>` +
		`</Relationships>`)
}

func relsWorkbookXML() []byte {
	return []byte(xmlDecl +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>` +
		`</Relationships>`)
}

func stylesXML() []byte {
	return []byte(xmlDecl +
		`<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"/>`)
}

func contentTypesXML() []byte {
	return []byte(xmlDecl +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>` +
		`<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>` +
		`<Override PartName="/xl/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"/>` +
		`</Types>`)
}

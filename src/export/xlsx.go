// Package export writes grouped estimation records as tables: an XLSX workbook or a terminal summary.
package export

import (
	"sort"

	"github.com/xuri/excelize/v2"

	rerrors "github.com/iafilius/QuantumResourcePlots/src/errors"
	"github.com/iafilius/QuantumResourcePlots/src/results"
	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// Sheet names used in the workbook.
const (
	SheetRecords = "records"
	SheetGroups  = "groups"
)

// WriteXLSX writes one row per record (sheet "records") and one row per group (sheet "groups").
func WriteXLSX(path string, groups []types.Group) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRecords); err != nil {
		return rerrors.NewRender(path, err, "rename sheet")
	}
	tagNames := collectTagNames(groups)
	header := []any{"group", "index", types.FieldPhysicalQubits, types.FieldRuntimeSeconds}
	for _, n := range tagNames {
		header = append(header, n)
	}
	if err := writeRow(f, SheetRecords, 1, header); err != nil {
		return rerrors.NewRender(path, err, "write header")
	}
	row := 2
	for _, g := range groups {
		label := g.Label()
		for _, r := range g.Records {
			vals := []any{label, r.Index, r.PhysicalQubits, r.RuntimeSeconds}
			for _, n := range tagNames {
				vals = append(vals, cellValue(r, n))
			}
			if err := writeRow(f, SheetRecords, row, vals); err != nil {
				return rerrors.NewRender(path, err, "write row %d", row)
			}
			row++
		}
	}

	if _, err := f.NewSheet(SheetGroups); err != nil {
		return rerrors.NewRender(path, err, "add sheet")
	}
	if err := writeRow(f, SheetGroups, 1, []any{"group", "count", "min_qubits", "max_qubits", "min_runtime_s", "max_runtime_s"}); err != nil {
		return rerrors.NewRender(path, err, "write header")
	}
	for i, s := range results.Summarize(groups) {
		if err := writeRow(f, SheetGroups, i+2, []any{s.Label, s.Count, s.MinQubits, s.MaxQubits, s.MinRuntime, s.MaxRuntime}); err != nil {
			return rerrors.NewRender(path, err, "write group %d", i)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return rerrors.NewRender(path, err, "header style")
	}
	for _, sheet := range []string{SheetRecords, SheetGroups} {
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return rerrors.NewRender(path, err, "style %s", sheet)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return rerrors.NewRender(path, err, "save workbook")
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, vals []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &vals)
}

// cellValue stores numeric tags as numbers and everything else as text.
func cellValue(r types.Record, name string) any {
	v, ok := r.Tag(name)
	if !ok {
		return nil
	}
	if f, ok := v.Float(); ok {
		return f
	}
	return string(v)
}

func collectTagNames(groups []types.Group) []string {
	seen := map[string]bool{}
	for _, g := range groups {
		for _, r := range g.Records {
			for _, t := range r.Tags {
				seen[t.Name] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

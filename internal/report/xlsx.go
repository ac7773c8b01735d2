package report

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gowing/internal/polar"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// Workbook sheet names
const (
	WingSheet  = "wing"
	PolarSheet = "polars"
)

// WriteWorkbook writes the wing table and, when samples is non-empty, the
// section polars as a second sheet. Numbers are stored as numbers and absent
// values leave the cell blank.
func WriteWorkbook(w io.Writer, points []wing.Point, samples []polar.Sample) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", WingSheet); err != nil {
		return err
	}
	if err := setRow(f, WingSheet, 1, stringsToCells(WingHeader)); err != nil {
		return err
	}
	for i, pt := range points {
		name, vals := wingValues(pt)
		row := make([]any, 0, len(WingHeader))
		row = append(row, name)
		for _, v := range vals {
			row = append(row, cellValue(v.Get()))
		}
		if err := setRow(f, WingSheet, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetPanes(WingSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if len(samples) > 0 {
		if _, err := f.NewSheet(PolarSheet); err != nil {
			return err
		}
		if err := setRow(f, PolarSheet, 1, stringsToCells(PolarHeader)); err != nil {
			return err
		}
		for i, s := range samples {
			row := []any{
				s.Airfoil,
				s.Re,
				s.Alpha,
				cellValue(s.CL.Get()),
				cellValue(s.CD.Get()),
				cellValue(s.CM.Get()),
			}
			if err := setRow(f, PolarSheet, i+2, row); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// SaveWorkbook writes an .xlsx file.
func SaveWorkbook(path string, points []wing.Point, samples []polar.Sample) error {
	return writeFile(path, func(w io.Writer) error { return WriteWorkbook(w, points, samples) })
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func cellValue(v float64, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func stringsToCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

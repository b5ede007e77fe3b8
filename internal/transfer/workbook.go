package transfer

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportWorkbook writes all four tables into a single XLSX workbook, one
// sheet per table.
func (e *Exporter) ExportWorkbook(ctx context.Context, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for idx, table := range Tables {
		if idx == 0 {
			if err := f.SetSheetName("Sheet1", table); err != nil {
				return fmt.Errorf("naming sheet %s: %w", table, err)
			}
		} else {
			if _, err := f.NewSheet(table); err != nil {
				return fmt.Errorf("adding sheet %s: %w", table, err)
			}
		}

		columns := tableColumns[table]
		for ci, col := range columns {
			ref, err := excelize.CoordinatesToCellName(ci+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(table, ref, col); err != nil {
				return fmt.Errorf("writing header of %s: %w", table, err)
			}
		}

		rows, err := e.fetch(ctx, table)
		if err != nil {
			return err
		}
		for ri, row := range rows {
			for ci, col := range columns {
				ref, err := excelize.CoordinatesToCellName(ci+1, ri+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(table, ref, cell(row[col])); err != nil {
					return fmt.Errorf("writing %s row %d: %w", table, ri+1, err)
				}
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

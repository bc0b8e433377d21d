package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/atlas-cli/internal/model"
)

// WriteXLSX writes plants as a single-sheet workbook.
func WriteXLSX(plants []model.Plant, outputPath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Power Plants")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, col := range plantColumns {
		header.AddCell().Value = col
	}

	for _, p := range plants {
		row := sheet.AddRow()
		for _, val := range plantRow(p) {
			row.AddCell().Value = val
		}
	}

	if err := file.Save(outputPath); err != nil {
		return eris.Wrap(err, "export: save xlsx file")
	}
	return nil
}

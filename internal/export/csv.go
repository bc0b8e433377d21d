package export

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/atlas-cli/internal/model"
)

// WriteCSV writes plants as a flat CSV file.
func WriteCSV(plants []model.Plant, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create csv file")
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(plantColumns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, p := range plants {
		if err := w.Write(plantRow(p)); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}
	return nil
}

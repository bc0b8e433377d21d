package export

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"

	"github.com/sells-group/atlas-cli/internal/model"
)

// shapefile DBF field names are capped at 10 characters, so the attribute set
// is a compact subset of the flat export columns.
var shpFields = []shp.Field{
	shp.NumberField("PLANT_CODE", 10),
	shp.StringField("PLANT_NAME", 80),
	shp.StringField("UTILITY", 80),
	shp.StringField("SECTOR", 40),
	shp.StringField("PRIMSOURCE", 40),
	shp.StringField("ENERGY", 24),
	shp.StringField("RENEWABLE", 5),
	shp.StringField("STATE", 30),
	shp.StringField("CITY", 40),
	shp.FloatField("TOTAL_MW", 14, 3),
	shp.FloatField("RENEW_MW", 14, 3),
}

// WriteShapefile writes plants as a point shapefile with a compact attribute
// table.
func WriteShapefile(plants []model.Plant, outputPath string) error {
	w, err := shp.Create(outputPath, shp.POINT)
	if err != nil {
		return eris.Wrap(err, "export: create shapefile")
	}
	defer w.Close() //nolint:errcheck

	w.SetFields(shpFields)

	for i, p := range plants {
		w.Write(&shp.Point{X: p.Location.Longitude, Y: p.Location.Latitude})

		var totalMW float64
		if p.Capacity.TotalMW != nil {
			totalMW = *p.Capacity.TotalMW
		}
		attrs := []any{
			p.PlantCode,
			p.PlantName,
			p.UtilityName,
			p.SectorName,
			p.PrimarySource,
			string(p.PrimaryEnergyType()),
			boolStr(p.IsRenewable()),
			p.Location.State,
			p.Location.City,
			totalMW,
			p.Capacity.RenewableMW(),
		}
		for j, val := range attrs {
			w.WriteAttribute(i, j, val)
		}
	}
	return nil
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

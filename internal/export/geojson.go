package export

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/atlas-cli/internal/model"
)

// WriteGeoJSON writes plants as a GeoJSON FeatureCollection of WGS84 points,
// one feature per plant with the flattened record as properties.
func WriteGeoJSON(plants []model.Plant, outputPath string) error {
	fc := geojson.FeatureCollection{}
	for _, p := range plants {
		pt := geom.NewPointFlat(geom.XY, []float64{p.Location.Longitude, p.Location.Latitude}).SetSRID(4326)

		props := make(map[string]any, len(plantColumns))
		row := plantRow(p)
		for i, col := range plantColumns {
			// Geometry carries the coordinates.
			if col == "latitude" || col == "longitude" {
				continue
			}
			props[col] = row[i]
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry:   pt,
			Properties: props,
		})
	}

	data, err := json.Marshal(&fc)
	if err != nil {
		return eris.Wrap(err, "export: marshal geojson")
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return eris.Wrap(err, "export: write geojson file")
	}
	return nil
}

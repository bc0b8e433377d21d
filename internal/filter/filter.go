package filter

import (
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"github.com/sells-group/atlas-cli/internal/model"
)

// CapacityRange keeps plants whose named capacity field lies in
// [min, max]. A nil bound is open; plants without a value for the field are
// dropped.
func CapacityRange(plants []model.Plant, field model.CapacityField, min, max *float64) []model.Plant {
	var out []model.Plant
	for _, p := range plants {
		v := p.Capacity.Field(field)
		if v == nil {
			continue
		}
		if min != nil && *v < *min {
			continue
		}
		if max != nil && *v > *max {
			continue
		}
		out = append(out, p)
	}
	return out
}

// EnergyTypes keeps plants whose classified energy type is in the given set.
func EnergyTypes(plants []model.Plant, types []model.EnergyType) []model.Plant {
	want := make(map[model.EnergyType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out []model.Plant
	for _, p := range plants {
		if want[p.PrimaryEnergyType()] {
			out = append(out, p)
		}
	}
	return out
}

// States keeps plants located in any of the given states, case-insensitively.
func States(plants []model.Plant, states []string) []model.Plant {
	want := make(map[string]bool, len(states))
	for _, s := range states {
		want[strings.ToLower(s)] = true
	}
	var out []model.Plant
	for _, p := range plants {
		if want[strings.ToLower(p.Location.State)] {
			out = append(out, p)
		}
	}
	return out
}

// Sectors keeps plants whose sector name matches exactly.
func Sectors(plants []model.Plant, sectors []string) []model.Plant {
	want := make(map[string]bool, len(sectors))
	for _, s := range sectors {
		want[s] = true
	}
	var out []model.Plant
	for _, p := range plants {
		if want[p.SectorName] {
			out = append(out, p)
		}
	}
	return out
}

// RenewableOnly keeps plants whose primary energy type is renewable.
func RenewableOnly(plants []model.Plant) []model.Plant {
	var out []model.Plant
	for _, p := range plants {
		if p.IsRenewable() {
			out = append(out, p)
		}
	}
	return out
}

// BoundingBox keeps plants inside the inclusive lat/lon box.
func BoundingBox(plants []model.Plant, minLat, maxLat, minLon, maxLon float64) []model.Plant {
	var out []model.Plant
	for _, p := range plants {
		lat, lon := p.Location.Latitude, p.Location.Longitude
		if lat >= minLat && lat <= maxLat && lon >= minLon && lon <= maxLon {
			out = append(out, p)
		}
	}
	return out
}

// Polygon keeps plants whose location falls inside the polygon's outer ring
// (lon/lat coordinate order, matching the exported point geometry).
func Polygon(plants []model.Plant, poly *geom.Polygon) []model.Plant {
	if poly == nil || poly.NumLinearRings() == 0 {
		return nil
	}
	ring := poly.LinearRing(0)
	var out []model.Plant
	for _, p := range plants {
		pt := geom.Coord{p.Location.Longitude, p.Location.Latitude}
		if xy.IsPointInRing(poly.Layout(), pt, ring.FlatCoords()) {
			out = append(out, p)
		}
	}
	return out
}

// PeriodRange keeps plants whose YYYYMM reporting period lies within the
// given bounds. Year bounds compare the period's year digits; period bounds
// compare the full YYYYMM value. Plants without a period are dropped.
func PeriodRange(plants []model.Plant, minYear, maxYear, minPeriod, maxPeriod *int) []model.Plant {
	var out []model.Plant
	for _, p := range plants {
		if p.DataPeriod == nil {
			continue
		}
		period := *p.DataPeriod

		yearStr := strconv.Itoa(period)
		if len(yearStr) < 4 {
			continue
		}
		year, err := strconv.Atoi(yearStr[:4])
		if err != nil {
			continue
		}

		if minYear != nil && year < *minYear {
			continue
		}
		if maxYear != nil && year > *maxYear {
			continue
		}
		if minPeriod != nil && period < *minPeriod {
			continue
		}
		if maxPeriod != nil && period > *maxPeriod {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SinceYear keeps plants reporting from the given year onward.
func SinceYear(plants []model.Plant, year int) []model.Plant {
	return PeriodRange(plants, &year, nil, nil, nil)
}

package export

import (
	"strconv"

	"github.com/sells-group/atlas-cli/internal/model"
)

// plantColumns is the flattened export column order, matching the canonical
// record layout: identity, classification, location, capacity, extras.
var plantColumns = []string{
	"object_id",
	"plant_code",
	"plant_name",
	"utility_name",
	"utility_id",
	"sector_name",
	"primary_source",
	"primary_energy_type",
	"is_renewable",
	"latitude",
	"longitude",
	"city",
	"county",
	"state",
	"zip_code",
	"street_address",
	"total_mw",
	"install_mw",
	"coal_mw",
	"natural_gas_mw",
	"nuclear_mw",
	"hydro_mw",
	"hydro_pumped_mw",
	"solar_mw",
	"wind_mw",
	"geothermal_mw",
	"biomass_mw",
	"battery_mw",
	"crude_oil_mw",
	"other_mw",
	"renewable_capacity_mw",
	"tech_desc",
	"source_desc",
	"data_period",
	"source",
}

func floatStr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intStr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func strVal(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// plantRow flattens one plant into export column order. Absent optional
// fields become empty strings, never zeros.
func plantRow(p model.Plant) []string {
	c := p.Capacity
	row := []string{
		strconv.Itoa(p.ObjectID),
		strconv.Itoa(p.PlantCode),
		p.PlantName,
		p.UtilityName,
		strconv.Itoa(p.UtilityID),
		p.SectorName,
		p.PrimarySource,
		string(p.PrimaryEnergyType()),
		strconv.FormatBool(p.IsRenewable()),
		strconv.FormatFloat(p.Location.Latitude, 'f', -1, 64),
		strconv.FormatFloat(p.Location.Longitude, 'f', -1, 64),
		p.Location.City,
		p.Location.County,
		p.Location.State,
		intStr(p.Location.ZipCode),
		strVal(p.Location.StreetAddress),
	}
	for _, f := range model.AllCapacityFields() {
		row = append(row, floatStr(c.Field(f)))
	}
	row = append(row,
		strconv.FormatFloat(c.RenewableMW(), 'f', -1, 64),
		strVal(p.TechDesc),
		strVal(p.SourceDesc),
		intStr(p.DataPeriod),
		strVal(p.Source),
	)
	return row
}

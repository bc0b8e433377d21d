package atlas

import (
	"encoding/json"

	"github.com/sells-group/atlas-cli/internal/model"
)

// pageResponse is one page of a feature-service query. An absent
// exceededTransferLimit is treated as false.
type pageResponse struct {
	ObjectIDFieldName string            `json:"objectIdFieldName"`
	GeometryType      string            `json:"geometryType"`
	SpatialReference  json.RawMessage   `json:"spatialReference"`
	Fields            []json.RawMessage `json:"fields"`
	Features          []feature         `json:"features"`
	ExceededLimit     bool              `json:"exceededTransferLimit"`
	Error             *apiError         `json:"error"`
}

// apiError is the in-body error envelope some services return with HTTP 200.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type feature struct {
	Attributes attributes `json:"attributes"`
	Geometry   *geometry  `json:"geometry"`
}

type geometry struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// attributes is the union of attribute fields across the power-plant
// services. Every field is optional on the wire; pointer fields keep
// "absent" distinct from zero.
type attributes struct {
	ObjectID      *int     `json:"OBJECTID"`
	PlantCode     *int     `json:"Plant_Code"`
	PlantName     *string  `json:"Plant_Name"`
	UtilityName   *string  `json:"Utility_Name"`
	UtilityID     *int     `json:"Utility_ID"`
	SectorName    *string  `json:"Sector_Name"`
	PrimSource    *string  `json:"PrimSource"`
	Latitude      *float64 `json:"Latitude"`
	Longitude     *float64 `json:"Longitude"`
	City          *string  `json:"City"`
	County        *string  `json:"County"`
	StateName     *string  `json:"StateName"`
	Zip           *int     `json:"Zip"`
	StreetAddress *string  `json:"Street_Address"`
	TotalMW       *float64 `json:"Total_MW"`
	InstallMW     *float64 `json:"Install_MW"`
	CoalMW        *float64 `json:"Coal_MW"`
	NGMW          *float64 `json:"NG_MW"`
	NuclearMW     *float64 `json:"Nuclear_MW"`
	HydroMW       *float64 `json:"Hydro_MW"`
	HydroPSMW     *float64 `json:"HydroPS_MW"`
	SolarMW       *float64 `json:"Solar_MW"`
	WindMW        *float64 `json:"Wind_MW"`
	GeoMW         *float64 `json:"Geo_MW"`
	BioMW         *float64 `json:"Bio_MW"`
	BatMW         *float64 `json:"Bat_MW"`
	CrudeMW       *float64 `json:"Crude_MW"`
	OtherMW       *float64 `json:"Other_MW"`
	TechDesc      *string  `json:"tech_desc"`
	SourceDesc    *string  `json:"Source_Desc"`
	Period        *int     `json:"Period"`
	Source        *string  `json:"Source"`
}

func strOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func intOr(i *int, def int) int {
	if i == nil {
		return def
	}
	return *i
}

// parseFeature normalizes one raw feature into a Plant. Geometry y/x take
// precedence over attribute-level Latitude/Longitude when both are present;
// the attribute fields are inconsistent across services. Missing fields never
// fail parsing: identifiers default to 0, names to "", everything else stays
// absent.
func parseFeature(f feature) model.Plant {
	attrs := f.Attributes

	loc := model.Location{
		City:          strOr(attrs.City, ""),
		County:        strOr(attrs.County, ""),
		State:         strOr(attrs.StateName, ""),
		ZipCode:       attrs.Zip,
		StreetAddress: attrs.StreetAddress,
	}
	if f.Geometry != nil {
		loc.Latitude = f.Geometry.Y
		loc.Longitude = f.Geometry.X
	} else {
		if attrs.Latitude != nil {
			loc.Latitude = *attrs.Latitude
		}
		if attrs.Longitude != nil {
			loc.Longitude = *attrs.Longitude
		}
	}

	return model.Plant{
		ObjectID:      intOr(attrs.ObjectID, 0),
		PlantCode:     intOr(attrs.PlantCode, 0),
		PlantName:     strOr(attrs.PlantName, ""),
		UtilityName:   strOr(attrs.UtilityName, ""),
		UtilityID:     intOr(attrs.UtilityID, 0),
		SectorName:    strOr(attrs.SectorName, ""),
		PrimarySource: strOr(attrs.PrimSource, ""),
		Location:      loc,
		Capacity: model.Capacity{
			TotalMW:      attrs.TotalMW,
			InstallMW:    attrs.InstallMW,
			CoalMW:       attrs.CoalMW,
			NaturalGasMW: attrs.NGMW,
			NuclearMW:    attrs.NuclearMW,
			HydroMW:      attrs.HydroMW,
			HydroPSMW:    attrs.HydroPSMW,
			SolarMW:      attrs.SolarMW,
			WindMW:       attrs.WindMW,
			GeothermalMW: attrs.GeoMW,
			BiomassMW:    attrs.BioMW,
			BatteryMW:    attrs.BatMW,
			CrudeOilMW:   attrs.CrudeMW,
			OtherMW:      attrs.OtherMW,
		},
		TechDesc:   attrs.TechDesc,
		SourceDesc: attrs.SourceDesc,
		DataPeriod: attrs.Period,
		Source:     attrs.Source,
	}
}

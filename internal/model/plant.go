package model

// SectorType enumerates the known utility sector names. The upstream field is
// free text and not guaranteed to stay within this set.
type SectorType string

const (
	SectorElectricUtility   SectorType = "Electric Utility"
	SectorIPPNonCHP         SectorType = "IPP Non-CHP"
	SectorIPPCHP            SectorType = "IPP CHP"
	SectorCombinedHeatPower SectorType = "Combined Heat and Power"
)

// Location is the geographic position and address of a plant.
type Location struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	City          string  `json:"city,omitempty"`
	County        string  `json:"county,omitempty"`
	State         string  `json:"state,omitempty"`
	ZipCode       *int    `json:"zip_code,omitempty"`
	StreetAddress *string `json:"street_address,omitempty"`
}

// CapacityField identifies one of the named megawatt fields on Capacity.
type CapacityField string

const (
	CapTotal      CapacityField = "total_mw"
	CapInstall    CapacityField = "install_mw"
	CapCoal       CapacityField = "coal_mw"
	CapNaturalGas CapacityField = "natural_gas_mw"
	CapNuclear    CapacityField = "nuclear_mw"
	CapHydro      CapacityField = "hydro_mw"
	CapHydroPS    CapacityField = "hydro_pumped_mw"
	CapSolar      CapacityField = "solar_mw"
	CapWind       CapacityField = "wind_mw"
	CapGeothermal CapacityField = "geothermal_mw"
	CapBiomass    CapacityField = "biomass_mw"
	CapBattery    CapacityField = "battery_mw"
	CapCrudeOil   CapacityField = "crude_oil_mw"
	CapOther      CapacityField = "other_mw"
)

// AllCapacityFields returns the capacity fields in export column order.
func AllCapacityFields() []CapacityField {
	return []CapacityField{
		CapTotal, CapInstall, CapCoal, CapNaturalGas, CapNuclear,
		CapHydro, CapHydroPS, CapSolar, CapWind, CapGeothermal,
		CapBiomass, CapBattery, CapCrudeOil, CapOther,
	}
}

// Capacity holds per-fuel nameplate capacity in megawatts. A nil field means
// the upstream record carried no value, which is distinct from zero.
type Capacity struct {
	TotalMW      *float64 `json:"total_mw,omitempty"`
	InstallMW    *float64 `json:"install_mw,omitempty"`
	CoalMW       *float64 `json:"coal_mw,omitempty"`
	NaturalGasMW *float64 `json:"natural_gas_mw,omitempty"`
	NuclearMW    *float64 `json:"nuclear_mw,omitempty"`
	HydroMW      *float64 `json:"hydro_mw,omitempty"`
	HydroPSMW    *float64 `json:"hydro_pumped_mw,omitempty"`
	SolarMW      *float64 `json:"solar_mw,omitempty"`
	WindMW       *float64 `json:"wind_mw,omitempty"`
	GeothermalMW *float64 `json:"geothermal_mw,omitempty"`
	BiomassMW    *float64 `json:"biomass_mw,omitempty"`
	BatteryMW    *float64 `json:"battery_mw,omitempty"`
	CrudeOilMW   *float64 `json:"crude_oil_mw,omitempty"`
	OtherMW      *float64 `json:"other_mw,omitempty"`
}

// Field returns the named capacity value, or nil for an unknown field name.
// This replaces string-keyed reflection lookups with an enumerated accessor.
func (c Capacity) Field(f CapacityField) *float64 {
	switch f {
	case CapTotal:
		return c.TotalMW
	case CapInstall:
		return c.InstallMW
	case CapCoal:
		return c.CoalMW
	case CapNaturalGas:
		return c.NaturalGasMW
	case CapNuclear:
		return c.NuclearMW
	case CapHydro:
		return c.HydroMW
	case CapHydroPS:
		return c.HydroPSMW
	case CapSolar:
		return c.SolarMW
	case CapWind:
		return c.WindMW
	case CapGeothermal:
		return c.GeothermalMW
	case CapBiomass:
		return c.BiomassMW
	case CapBattery:
		return c.BatteryMW
	case CapCrudeOil:
		return c.CrudeOilMW
	case CapOther:
		return c.OtherMW
	}
	return nil
}

// ForEnergyType returns the capacity value for the given energy type.
func (c Capacity) ForEnergyType(t EnergyType) *float64 {
	switch t {
	case EnergyCoal:
		return c.CoalMW
	case EnergyNaturalGas:
		return c.NaturalGasMW
	case EnergyNuclear:
		return c.NuclearMW
	case EnergyHydro:
		return c.HydroMW
	case EnergyHydroPumped:
		return c.HydroPSMW
	case EnergySolar:
		return c.SolarMW
	case EnergyWind:
		return c.WindMW
	case EnergyGeothermal:
		return c.GeothermalMW
	case EnergyBiomass:
		return c.BiomassMW
	case EnergyBattery:
		return c.BatteryMW
	case EnergyCrudeOil:
		return c.CrudeOilMW
	case EnergyOther:
		return c.OtherMW
	}
	return nil
}

// RenewableMW sums solar, wind, hydro, geothermal and biomass capacity,
// treating absent fields as zero.
func (c Capacity) RenewableMW() float64 {
	var sum float64
	for _, v := range []*float64{c.SolarMW, c.WindMW, c.HydroMW, c.GeothermalMW, c.BiomassMW} {
		if v != nil {
			sum += *v
		}
	}
	return sum
}

// Plant is one normalized power-plant record. PlantCode is the stable
// cross-service identity used for deduplication; ObjectID is only unique
// within a single feature-service call.
type Plant struct {
	ObjectID      int      `json:"object_id"`
	PlantCode     int      `json:"plant_code"`
	PlantName     string   `json:"plant_name"`
	UtilityName   string   `json:"utility_name"`
	UtilityID     int      `json:"utility_id"`
	SectorName    string   `json:"sector_name"`
	PrimarySource string   `json:"primary_source"`
	Location      Location `json:"location"`
	Capacity      Capacity `json:"capacity"`
	TechDesc      *string  `json:"tech_desc,omitempty"`
	SourceDesc    *string  `json:"source_desc,omitempty"`
	DataPeriod    *int     `json:"data_period,omitempty"` // YYYYMM
	Source        *string  `json:"source,omitempty"`
}

// PrimaryEnergyType classifies the plant from its free-text primary source.
func (p Plant) PrimaryEnergyType() EnergyType {
	return ClassifyEnergySource(p.PrimarySource)
}

// IsRenewable reports whether the plant's primary energy type is renewable.
func (p Plant) IsRenewable() bool {
	return IsRenewableType(p.PrimaryEnergyType())
}

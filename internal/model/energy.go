package model

import "strings"

// EnergyType is the closed set of primary energy types in the EIA Atlas data.
type EnergyType string

const (
	EnergyCoal        EnergyType = "Coal"
	EnergyNaturalGas  EnergyType = "Natural Gas"
	EnergyNuclear     EnergyType = "Nuclear"
	EnergyHydro       EnergyType = "Hydroelectric"
	EnergyHydroPumped EnergyType = "Hydro Pumped Storage"
	EnergySolar       EnergyType = "Solar"
	EnergyWind        EnergyType = "Wind"
	EnergyGeothermal  EnergyType = "Geothermal"
	EnergyBiomass     EnergyType = "Biomass"
	EnergyBattery     EnergyType = "Battery Storage"
	EnergyCrudeOil    EnergyType = "Crude Oil"
	EnergyOther       EnergyType = "Other"
)

// AllEnergyTypes returns every enumerated energy type.
func AllEnergyTypes() []EnergyType {
	return []EnergyType{
		EnergyCoal, EnergyNaturalGas, EnergyNuclear,
		EnergyHydro, EnergyHydroPumped, EnergySolar,
		EnergyWind, EnergyGeothermal, EnergyBiomass,
		EnergyBattery, EnergyCrudeOil, EnergyOther,
	}
}

// RenewableEnergyTypes returns the types counted as renewable.
func RenewableEnergyTypes() []EnergyType {
	return []EnergyType{EnergySolar, EnergyWind, EnergyHydro, EnergyGeothermal, EnergyBiomass}
}

// sourceKeyword pairs a lowercase substring with the energy type it selects.
type sourceKeyword struct {
	keyword string
	energy  EnergyType
}

// sourceKeywords is ordered: the first matching keyword wins. "hydro" is
// checked before any pumped-storage text, so "Hydro Pumped Storage" classifies
// as Hydroelectric, and both "crude oil" and "petroleum" map to Crude Oil.
var sourceKeywords = []sourceKeyword{
	{"coal", EnergyCoal},
	{"natural gas", EnergyNaturalGas},
	{"nuclear", EnergyNuclear},
	{"hydroelectric", EnergyHydro},
	{"hydro", EnergyHydro},
	{"solar", EnergySolar},
	{"wind", EnergyWind},
	{"geothermal", EnergyGeothermal},
	{"biomass", EnergyBiomass},
	{"batteries", EnergyBattery},
	{"battery", EnergyBattery},
	{"crude oil", EnergyCrudeOil},
	{"petroleum", EnergyCrudeOil},
}

// ClassifyEnergySource maps a free-text primary-source label to an EnergyType
// by case-insensitive substring match against an ordered keyword table.
// Unmatched input yields EnergyOther; the function never fails.
func ClassifyEnergySource(primarySource string) EnergyType {
	lower := strings.ToLower(primarySource)
	for _, kw := range sourceKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.energy
		}
	}
	return EnergyOther
}

// IsRenewableType reports whether the energy type counts toward renewable
// capacity accounting.
func IsRenewableType(t EnergyType) bool {
	switch t {
	case EnergySolar, EnergyWind, EnergyHydro, EnergyGeothermal, EnergyBiomass:
		return true
	}
	return false
}

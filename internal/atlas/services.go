package atlas

import (
	"sort"

	"github.com/sells-group/atlas-cli/internal/model"
)

// ServiceID names one of the EIA Atlas power-plant feature services.
type ServiceID string

const (
	ServiceAllPlants        ServiceID = "all_plants"
	ServiceCoalPlants       ServiceID = "coal_plants"
	ServiceNaturalGasPlants ServiceID = "natural_gas_plants"
	ServiceNuclearPlants    ServiceID = "nuclear_plants"
	ServiceHydroPlants      ServiceID = "hydro_plants"
	ServiceHydroPumped      ServiceID = "hydro_pumped_plants"
	ServiceSolarPlants      ServiceID = "solar_plants"
	ServiceWindPlants       ServiceID = "wind_plants"
	ServiceGeothermalPlants ServiceID = "geothermal_plants"
	ServiceBatteryPlants    ServiceID = "battery_plants"
	ServicePetroleumPlants  ServiceID = "petroleum_plants"
	ServiceOtherPlants      ServiceID = "other_plants"
)

// servicePaths maps each service to its feature-server path under the Atlas
// base URL.
var servicePaths = map[ServiceID]string{
	ServiceAllPlants:        "ElectricPowerPlants/FeatureServer/0",
	ServiceCoalPlants:       "Coal_Power_Plants/FeatureServer/0",
	ServiceNaturalGasPlants: "Natural_Gas_Power_Plants/FeatureServer/0",
	ServiceNuclearPlants:    "Nuclear_Power_Plants/FeatureServer/0",
	ServiceHydroPlants:      "Hydroelectric_Power_Plants/FeatureServer/0",
	ServiceHydroPumped:      "Hydro_Pumped_Storage_Power_Plants/FeatureServer/0",
	ServiceSolarPlants:      "Solar_Power_Plants/FeatureServer/0",
	ServiceWindPlants:       "Wind_Power_Plants/FeatureServer/0",
	ServiceGeothermalPlants: "Geothermal_Power_Plants/FeatureServer/0",
	ServiceBatteryPlants:    "Battery_Storage_Plants/FeatureServer/0",
	ServicePetroleumPlants:  "Petroleum_Power_Plants/FeatureServer/0",
	ServiceOtherPlants:      "Other_Power_Plants/FeatureServer/0",
}

// serviceByEnergyType routes energy types to their dedicated feature services.
// HydroPumped, Biomass and Other have no dedicated endpoint; callers fetch the
// full dataset and filter client-side via the classifier.
var serviceByEnergyType = map[model.EnergyType]ServiceID{
	model.EnergyCoal:       ServiceCoalPlants,
	model.EnergyNaturalGas: ServiceNaturalGasPlants,
	model.EnergyNuclear:    ServiceNuclearPlants,
	model.EnergyHydro:      ServiceHydroPlants,
	model.EnergySolar:      ServiceSolarPlants,
	model.EnergyWind:       ServiceWindPlants,
	model.EnergyGeothermal: ServiceGeothermalPlants,
	model.EnergyBattery:    ServiceBatteryPlants,
	model.EnergyCrudeOil:   ServicePetroleumPlants,
}

// ServiceForEnergyType returns the dedicated service for an energy type, or
// false when the type has no dedicated endpoint.
func ServiceForEnergyType(t model.EnergyType) (ServiceID, bool) {
	svc, ok := serviceByEnergyType[t]
	return svc, ok
}

// KnownServices returns every service identifier, sorted.
func KnownServices() []ServiceID {
	services := make([]ServiceID, 0, len(servicePaths))
	for id := range servicePaths {
		services = append(services, id)
	}
	sort.Slice(services, func(i, j int) bool { return services[i] < services[j] })
	return services
}

// ServicePath returns the feature-server path for a service, or false for an
// unknown identifier.
func ServicePath(id ServiceID) (string, bool) {
	p, ok := servicePaths[id]
	return p, ok
}

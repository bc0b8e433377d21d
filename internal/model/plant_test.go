package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestCapacityRenewableMW(t *testing.T) {
	t.Parallel()

	t.Run("sums the five renewable fields", func(t *testing.T) {
		t.Parallel()
		c := Capacity{
			SolarMW:      f64(10),
			WindMW:       f64(20),
			HydroMW:      f64(30),
			GeothermalMW: f64(5),
			BiomassMW:    f64(2.5),
			CoalMW:       f64(500), // not renewable
			BatteryMW:    f64(50),  // not renewable
		}
		assert.InDelta(t, 67.5, c.RenewableMW(), 1e-9)
	})

	t.Run("absent fields count as zero", func(t *testing.T) {
		t.Parallel()
		c := Capacity{WindMW: f64(12)}
		assert.InDelta(t, 12, c.RenewableMW(), 1e-9)
		assert.InDelta(t, 0, Capacity{}.RenewableMW(), 1e-9)
	})
}

func TestCapacityField(t *testing.T) {
	t.Parallel()

	c := Capacity{
		TotalMW:      f64(100),
		InstallMW:    f64(110),
		CoalMW:       f64(1),
		NaturalGasMW: f64(2),
		NuclearMW:    f64(3),
		HydroMW:      f64(4),
		HydroPSMW:    f64(5),
		SolarMW:      f64(6),
		WindMW:       f64(7),
		GeothermalMW: f64(8),
		BiomassMW:    f64(9),
		BatteryMW:    f64(10),
		CrudeOilMW:   f64(11),
		OtherMW:      f64(12),
	}

	want := map[CapacityField]float64{
		CapTotal: 100, CapInstall: 110, CapCoal: 1, CapNaturalGas: 2,
		CapNuclear: 3, CapHydro: 4, CapHydroPS: 5, CapSolar: 6,
		CapWind: 7, CapGeothermal: 8, CapBiomass: 9, CapBattery: 10,
		CapCrudeOil: 11, CapOther: 12,
	}
	for _, field := range AllCapacityFields() {
		got := c.Field(field)
		require.NotNil(t, got, "field %s", field)
		assert.InDelta(t, want[field], *got, 1e-9, "field %s", field)
	}

	assert.Nil(t, c.Field(CapacityField("bogus")))
	assert.Nil(t, Capacity{}.Field(CapTotal))
}

func TestCapacityForEnergyType(t *testing.T) {
	t.Parallel()

	c := Capacity{SolarMW: f64(42), HydroPSMW: f64(7)}
	got := c.ForEnergyType(EnergySolar)
	require.NotNil(t, got)
	assert.InDelta(t, 42, *got, 1e-9)

	got = c.ForEnergyType(EnergyHydroPumped)
	require.NotNil(t, got)
	assert.InDelta(t, 7, *got, 1e-9)

	assert.Nil(t, c.ForEnergyType(EnergyCoal))
}

func TestPlantDerivedFields(t *testing.T) {
	t.Parallel()

	wind := Plant{PlantCode: 101, PrimarySource: "wind"}
	assert.Equal(t, EnergyWind, wind.PrimaryEnergyType())
	assert.True(t, wind.IsRenewable())

	gas := Plant{PlantCode: 102, PrimarySource: "Natural Gas"}
	assert.Equal(t, EnergyNaturalGas, gas.PrimaryEnergyType())
	assert.False(t, gas.IsRenewable())

	unknown := Plant{PlantCode: 103, PrimarySource: "antimatter"}
	assert.Equal(t, EnergyOther, unknown.PrimaryEnergyType())
	assert.False(t, unknown.IsRenewable())
}

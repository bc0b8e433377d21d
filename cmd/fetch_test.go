package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/atlas-cli/internal/model"
)

func TestParseEnergyType(t *testing.T) {
	cases := []struct {
		in   string
		want model.EnergyType
	}{
		{"Wind", model.EnergyWind},
		{"wind", model.EnergyWind},
		{"natural gas", model.EnergyNaturalGas},
		{"NATURAL GAS", model.EnergyNaturalGas},
		{"Hydro Pumped Storage", model.EnergyHydroPumped},
	}
	for _, tc := range cases {
		got, err := parseEnergyType(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := parseEnergyType("fusion")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown energy type")
}

func TestWriteExport_Dispatch(t *testing.T) {
	dir := t.TempDir()
	plants := []model.Plant{{PlantCode: 1, PlantName: "a", PrimarySource: "wind"}}

	require.NoError(t, writeExport(plants, filepath.Join(dir, "out.csv")))
	require.NoError(t, writeExport(plants, filepath.Join(dir, "out.CSV")))
	require.NoError(t, writeExport(plants, filepath.Join(dir, "out.geojson")))
	require.NoError(t, writeExport(plants, filepath.Join(dir, "out.xlsx")))

	err := writeExport(plants, filepath.Join(dir, "out.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

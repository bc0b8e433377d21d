package atlas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/atlas-cli/internal/model"
)

func TestFetchByEnergyType_DedicatedService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "Wind_Power_Plants/FeatureServer/0/query")
		writePage(w, []map[string]any{
			testFeature(57649, "Roscoe Wind Farm", "wind", -100.36, 32.29),
		}, false)
	}))
	defer srv.Close()

	c := newTestClient(srv, 100, 10)
	plants, err := c.FetchByEnergyType(context.Background(), model.EnergyWind, 0)
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "Roscoe Wind Farm", plants[0].PlantName)
}

func TestFetchByEnergyType_FallbackFiltersClientSide(t *testing.T) {
	// Biomass has no dedicated endpoint; the client fetches the full dataset
	// and keeps only plants the classifier assigns to the requested type.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "ElectricPowerPlants/FeatureServer/0/query")
		writePage(w, []map[string]any{
			testFeature(1, "Barry", "natural gas", 0, 0),
			testFeature(2, "Wheelabrator", "biomass", 0, 0),
			testFeature(3, "Covanta", "biomass", 0, 0),
		}, false)
	}))
	defer srv.Close()

	c := newTestClient(srv, 100, 10)
	plants, err := c.FetchByEnergyType(context.Background(), model.EnergyBiomass, 0)
	require.NoError(t, err)
	require.Len(t, plants, 2)
	for _, p := range plants {
		assert.Equal(t, model.EnergyBiomass, p.PrimaryEnergyType())
	}
}

func TestFetchByState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		where := r.URL.Query().Get("where")
		assert.Contains(t, where, "StateName = 'Texas'")
		assert.Contains(t, where, "StateName LIKE '%Texas%'")
		writePage(w, []map[string]any{
			testFeature(1, "W.A. Parish", "coal", -95.63, 29.48),
		}, false)
	}))
	defer srv.Close()

	c := newTestClient(srv, 100, 10)
	plants, err := c.FetchByState(context.Background(), "Texas", nil, 0)
	require.NoError(t, err)
	assert.Len(t, plants, 1)
}

func TestFetchByState_TypedService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "Solar_Power_Plants/FeatureServer/0/query")
		writePage(w, nil, false)
	}))
	defer srv.Close()

	c := newTestClient(srv, 100, 10)
	et := model.EnergySolar
	_, err := c.FetchByState(context.Background(), "Nevada", &et, 0)
	require.NoError(t, err)
}

func TestFetchRenewable_DeduplicatesAcrossServices(t *testing.T) {
	// Plant 42 appears on both the hydro service and in the full dataset the
	// biomass fallback scans; the union keeps one copy.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "Solar_Power_Plants"):
			writePage(w, []map[string]any{testFeature(10, "solar-a", "solar", 0, 0)}, false)
		case strings.Contains(r.URL.Path, "Wind_Power_Plants"):
			writePage(w, []map[string]any{testFeature(20, "wind-a", "wind", 0, 0)}, false)
		case strings.Contains(r.URL.Path, "Hydroelectric_Power_Plants"):
			writePage(w, []map[string]any{testFeature(42, "hydro-a", "hydroelectric", 0, 0)}, false)
		case strings.Contains(r.URL.Path, "Geothermal_Power_Plants"):
			writePage(w, nil, false)
		case strings.Contains(r.URL.Path, "ElectricPowerPlants"):
			// Biomass fallback scans the full dataset, which includes the
			// hydro plant again.
			writePage(w, []map[string]any{
				testFeature(42, "hydro-a", "hydroelectric", 0, 0),
				testFeature(30, "bio-a", "biomass", 0, 0),
			}, false)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv, 100, 10)
	plants, err := c.FetchRenewable(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, plants, 4)

	codes := make(map[int]int)
	for _, p := range plants {
		codes[p.PlantCode]++
		assert.True(t, p.IsRenewable())
	}
	assert.Equal(t, 1, codes[42])
}

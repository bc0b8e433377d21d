package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/atlas-cli/internal/atlas"
	"github.com/sells-group/atlas-cli/internal/export"
	"github.com/sells-group/atlas-cli/internal/filter"
	"github.com/sells-group/atlas-cli/internal/model"
)

var (
	fetchService   string
	fetchType      string
	fetchState     string
	fetchWhere     string
	fetchLimit     int
	fetchRenewable bool
	fetchMinMW     float64
	fetchMaxMW     float64
	fetchOutput    string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch power plants from the EIA Atlas",
	Long:  "Fetches plant records from a feature service, optionally filtered by energy type, state or capacity, and writes them to a file or prints a summary line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("fetch"); err != nil {
			return err
		}
		client := newAtlasClient()
		ctx := cmd.Context()

		var (
			plants []model.Plant
			err    error
		)
		switch {
		case fetchRenewable:
			plants, err = client.FetchRenewable(ctx, fetchLimit)
		case fetchState != "":
			var et *model.EnergyType
			if fetchType != "" {
				t, perr := parseEnergyType(fetchType)
				if perr != nil {
					return perr
				}
				et = &t
			}
			plants, err = client.FetchByState(ctx, fetchState, et, fetchLimit)
		case fetchType != "":
			t, perr := parseEnergyType(fetchType)
			if perr != nil {
				return perr
			}
			plants, err = client.FetchByEnergyType(ctx, t, fetchLimit)
		default:
			params := atlas.NewQueryParams()
			if fetchWhere != "" {
				params.Where = fetchWhere
			}
			plants, err = client.FetchAll(ctx, atlas.ServiceID(fetchService), params, fetchLimit)
		}
		if err != nil {
			return err
		}

		if fetchMinMW > 0 || fetchMaxMW > 0 {
			var min, max *float64
			if fetchMinMW > 0 {
				min = &fetchMinMW
			}
			if fetchMaxMW > 0 {
				max = &fetchMaxMW
			}
			plants = filter.CapacityRange(plants, model.CapTotal, min, max)
		}

		if fetchOutput == "" {
			fmt.Printf("fetched %d plants\n", len(plants))
			return nil
		}

		if err := writeExport(plants, fetchOutput); err != nil {
			return err
		}
		zap.L().Info("export written",
			zap.String("path", fetchOutput),
			zap.Int("plants", len(plants)),
		)
		fmt.Printf("wrote %d plants to %s\n", len(plants), fetchOutput)
		return nil
	},
}

// parseEnergyType resolves a user-supplied energy type label, accepting the
// canonical labels case-insensitively.
func parseEnergyType(s string) (model.EnergyType, error) {
	for _, t := range model.AllEnergyTypes() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", eris.Errorf("unknown energy type %q", s)
}

// writeExport dispatches on the output file extension.
func writeExport(plants []model.Plant, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return export.WriteCSV(plants, path)
	case ".xlsx":
		return export.WriteXLSX(plants, path)
	case ".geojson", ".json":
		return export.WriteGeoJSON(plants, path)
	case ".shp":
		return export.WriteShapefile(plants, path)
	}
	return eris.Errorf("unsupported output format %q", filepath.Ext(path))
}

func init() {
	fetchCmd.Flags().StringVar(&fetchService, "service", string(atlas.ServiceAllPlants), "feature service to query")
	fetchCmd.Flags().StringVar(&fetchType, "type", "", "energy type (e.g. \"Wind\", \"Natural Gas\")")
	fetchCmd.Flags().StringVar(&fetchState, "state", "", "state name filter")
	fetchCmd.Flags().StringVar(&fetchWhere, "where", "", "raw SQL-style where clause")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 0, "max records to fetch (0 = all)")
	fetchCmd.Flags().BoolVar(&fetchRenewable, "renewable", false, "fetch the union of renewable fuel services")
	fetchCmd.Flags().Float64Var(&fetchMinMW, "min-mw", 0, "minimum total capacity in MW")
	fetchCmd.Flags().Float64Var(&fetchMaxMW, "max-mw", 0, "maximum total capacity in MW")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "output file (.csv, .xlsx, .geojson, .shp)")
	rootCmd.AddCommand(fetchCmd)
}

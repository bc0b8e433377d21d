package main

import (
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/atlas-cli/internal/aggregate"
	"github.com/sells-group/atlas-cli/internal/atlas"
	"github.com/sells-group/atlas-cli/internal/model"
	"github.com/sells-group/atlas-cli/internal/store"
)

var (
	summarySnapshot string
	summaryLimit    int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregate fetched plant data",
}

// summaryPlants loads the working plant set, either from a stored snapshot or
// by fetching the full dataset.
func summaryPlants(cmd *cobra.Command) ([]model.Plant, error) {
	ctx := cmd.Context()

	if summarySnapshot != "" {
		if err := cfg.Validate("snapshot"); err != nil {
			return nil, err
		}
		st, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer st.Close() //nolint:errcheck

		var plants []model.Plant
		if summarySnapshot == "latest" {
			_, plants, err = st.LatestSnapshot(ctx)
		} else {
			_, plants, err = st.GetSnapshot(ctx, summarySnapshot)
		}
		if err != nil {
			return nil, err
		}
		return plants, nil
	}

	if err := cfg.Validate("fetch"); err != nil {
		return nil, err
	}
	return newAtlasClient().FetchAll(ctx, atlas.ServiceAllPlants, atlas.NewQueryParams(), summaryLimit)
}

var summaryStatesCmd = &cobra.Command{
	Use:   "states",
	Short: "Plant count and capacity per state",
	RunE: func(cmd *cobra.Command, args []string) error {
		plants, err := summaryPlants(cmd)
		if err != nil {
			return err
		}

		p := message.NewPrinter(language.AmericanEnglish)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		p.Fprintln(w, "STATE\tPLANTS\tTOTAL MW\tRENEWABLE MW")
		for _, s := range aggregate.ByState(plants) {
			p.Fprintf(w, "%s\t%d\t%.1f\t%.1f\n", s.State, s.PlantCount, s.TotalMW, s.RenewableMW)
		}
		return w.Flush()
	},
}

var summaryEnergyCmd = &cobra.Command{
	Use:   "energy-types",
	Short: "Plant count and capacity per energy type",
	RunE: func(cmd *cobra.Command, args []string) error {
		plants, err := summaryPlants(cmd)
		if err != nil {
			return err
		}

		p := message.NewPrinter(language.AmericanEnglish)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		p.Fprintln(w, "ENERGY TYPE\tPLANTS\tTOTAL MW\tMEAN MW")
		for _, s := range aggregate.ByEnergyType(plants) {
			p.Fprintf(w, "%s\t%d\t%.1f\t%.1f\n", s.EnergyType, s.PlantCount, s.TotalMW, s.MeanMW)
		}
		return w.Flush()
	},
}

var summaryRenewableCmd = &cobra.Command{
	Use:   "renewable",
	Short: "Renewable share of capacity per state",
	RunE: func(cmd *cobra.Command, args []string) error {
		plants, err := summaryPlants(cmd)
		if err != nil {
			return err
		}

		p := message.NewPrinter(language.AmericanEnglish)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		p.Fprintln(w, "STATE\tTOTAL MW\tRENEWABLE MW\tPERCENT")
		for _, s := range aggregate.RenewablePercentageByState(plants) {
			if math.IsNaN(s.Percentage) {
				p.Fprintf(w, "%s\t%.1f\t%.1f\tn/a\n", s.State, s.TotalMW, s.RenewableMW)
				continue
			}
			p.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f%%\n", s.State, s.TotalMW, s.RenewableMW, s.Percentage)
		}
		return w.Flush()
	},
}

func init() {
	summaryCmd.PersistentFlags().StringVar(&summarySnapshot, "snapshot", "", "summarize a stored snapshot instead of fetching (\"latest\" or an id)")
	summaryCmd.PersistentFlags().IntVar(&summaryLimit, "limit", 0, "max records to fetch (0 = all)")
	summaryCmd.AddCommand(summaryStatesCmd, summaryEnergyCmd, summaryRenewableCmd)
	rootCmd.AddCommand(summaryCmd)
}

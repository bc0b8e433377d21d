package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/atlas-cli/internal/atlas"
	"github.com/sells-group/atlas-cli/internal/store"
)

var (
	snapshotService string
	snapshotLabel   string
	snapshotLimit   int
	snapshotOutput  string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage stored plant snapshots",
}

// openSnapshotStore validates config and opens the snapshot store, running
// migrations.
func openSnapshotStore(cmd *cobra.Command) (store.Store, error) {
	if err := cfg.Validate("snapshot"); err != nil {
		return nil, err
	}
	st, err := store.Open(cmd.Context(), cfg.Store.Driver, cfg.Store.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(cmd.Context()); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Fetch a service and persist the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openSnapshotStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		client := newAtlasClient()
		plants, err := client.FetchAll(cmd.Context(), atlas.ServiceID(snapshotService), atlas.NewQueryParams(), snapshotLimit)
		if err != nil {
			return err
		}

		snap, err := st.SaveSnapshot(cmd.Context(), snapshotService, snapshotLabel, plants)
		if err != nil {
			return err
		}
		zap.L().Info("snapshot saved",
			zap.String("id", snap.ID),
			zap.String("service", snap.Service),
			zap.Int("plants", snap.PlantCount),
		)
		fmt.Printf("saved snapshot %s (%d plants)\n", snap.ID, snap.PlantCount)
		return nil
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openSnapshotStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		snaps, err := st.ListSnapshots(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSERVICE\tLABEL\tPLANTS\tCREATED")
		for _, s := range snaps {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				s.ID, s.Service, s.Label, s.PlantCount, s.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a stored snapshot to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openSnapshotStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		snap, plants, err := st.GetSnapshot(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if snap == nil {
			return fmt.Errorf("snapshot %s not found", args[0])
		}

		if err := writeExport(plants, snapshotOutput); err != nil {
			return err
		}
		fmt.Printf("wrote %d plants to %s\n", len(plants), snapshotOutput)
		return nil
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openSnapshotStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.DeleteSnapshot(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted snapshot %s\n", args[0])
		return nil
	},
}

func init() {
	snapshotSaveCmd.Flags().StringVar(&snapshotService, "service", string(atlas.ServiceAllPlants), "feature service to snapshot")
	snapshotSaveCmd.Flags().StringVar(&snapshotLabel, "label", "", "optional snapshot label")
	snapshotSaveCmd.Flags().IntVar(&snapshotLimit, "limit", 0, "max records to fetch (0 = all)")
	snapshotExportCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "plants.csv", "output file (.csv, .xlsx, .geojson, .shp)")
	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotListCmd, snapshotExportCmd, snapshotDeleteCmd)
	rootCmd.AddCommand(snapshotCmd)
}

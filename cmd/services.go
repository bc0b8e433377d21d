package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/atlas-cli/internal/atlas"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List known Atlas feature services",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, id := range atlas.KnownServices() {
			path, _ := atlas.ServicePath(id)
			fmt.Fprintf(w, "%s\t%s\n", id, path)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

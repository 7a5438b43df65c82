package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/stories"
)

func storiesCmd(flags *globalFlags) *cobra.Command {
	var (
		kind   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List the stories in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, catalog, err := loadProject(flags)
			if err != nil {
				return err
			}

			list := catalog.List()
			if kind != "" {
				list = catalog.ByKind()[stories.Kind(kind)]
			}

			out := cmd.OutOrStdout()
			if asJSON {
				type entry struct {
					ID          string   `json:"id"`
					Title       string   `json:"title"`
					Kind        string   `json:"kind"`
					Description string   `json:"description,omitempty"`
					Tags        []string `json:"tags,omitempty"`
				}
				entries := make([]entry, len(list))
				for i, s := range list {
					entries[i] = entry{s.ID, s.Title, string(s.Kind), s.Description, s.Tags}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tTITLE\tTAGS")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Kind, s.Title, strings.Join(s.Tags, ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Only list stories of this kind")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

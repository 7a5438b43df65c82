package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/internal/gallery"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render <story>",
		Short: "Print the HTML of a story's first render",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("E140").WithDetail("render takes exactly one story id").
					WithSuggestion("Run 'vangoui stories' to list ids")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, catalog, err := loadProject(flags)
			if err != nil {
				return err
			}
			story, err := catalog.Get(args[0])
			if err != nil {
				return err
			}
			html, err := gallery.RenderFragment(story, pretty)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", true, "Indent the HTML")
	return cmd
}

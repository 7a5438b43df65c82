package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/errors"
)

func initCmd(flags *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default vangoui.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := flags.dir
			if dir == "" {
				dir = "."
			}
			if config.Exists(dir) && !force {
				return errors.New("E140").
					WithDetail(config.ConfigFileName + " already exists in " + dir).
					WithSuggestion("Use --force to overwrite it")
			}

			path := filepath.Join(dir, config.ConfigFileName)
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			success("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")
	return cmd
}

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/export"
)

func exportCmd(flags *globalFlags) *cobra.Command {
	var (
		target string
		region string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every story as static HTML",
		Long: `Export every story as static HTML.

The target is a directory or an s3://bucket/prefix URL. S3 uploads use
the default AWS credential chain.

Examples:
  vangoui export
  vangoui export --target=public/stories --pretty
  vangoui export --target=s3://docs-bucket/ui --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, catalog, err := loadProject(flags)
			if err != nil {
				return err
			}
			if target != "" {
				cfg.Export.Target = target
			}
			if region != "" {
				cfg.Export.Region = region
			}
			if pretty {
				cfg.Export.Pretty = true
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			t, err := export.OpenTarget(ctx, cfg.Export.Target, cfg.Export.Region)
			if err != nil {
				return err
			}
			res, err := export.Export(ctx, catalog, t, export.Options{
				Title:  cfg.Name,
				Pretty: cfg.Export.Pretty,
			})
			if err != nil {
				return err
			}
			success("Exported %d pages to %s in %s", res.Pages, res.Target, res.Duration.Round(1000000))
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "o", "", "Directory or s3://bucket/prefix (default from vangoui.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region for S3 targets")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML")

	return cmd
}

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/internal/tui"
	"github.com/vango-dev/vangoui/pkg/carousel"
)

func previewCmd(flags *globalFlags) *cobra.Command {
	var (
		slides   string
		vertical bool
		loop     bool
		autoplay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Try the toast and carousel controllers in the terminal",
		Long: `Try the toast and carousel controllers in the terminal.

Keys: ←/→ navigate, 1-9 jump, t push a toast, x close it,
p play/pause autoplay, ? help, q quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			opts := tui.Options{
				Carousel:       carousel.Options{Loop: loop},
				Autoplay:       autoplay,
				ToasterOptions: cfg.ToasterOptions(),
			}
			if slides != "" {
				opts.Slides = strings.Split(slides, ",")
			}
			if vertical {
				opts.Orientation = carousel.Vertical
			}
			if autoplay < 0 {
				return errors.New("E140").WithDetail("--autoplay must not be negative")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return tui.Run(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&slides, "slides", "", "Comma separated slide labels (default 1-5)")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "Vertical carousel")
	cmd.Flags().BoolVar(&loop, "loop", false, "Wrap around at the ends")
	cmd.Flags().DurationVar(&autoplay, "autoplay", 0, "Advance every interval, e.g. 3s")

	return cmd
}

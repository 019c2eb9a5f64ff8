package main

import (
	"os"

	"villa/config"
	"villa/helper"
	"villa/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Run the villa Postgres migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newActionCmd(cfg, helper.ActionUp, "Apply every pending migration"),
		newActionCmd(cfg, helper.ActionDown, "Roll back the latest migration"),
		newActionCmd(cfg, helper.ActionStepUp, "Apply the next pending migration"),
		newActionCmd(cfg, helper.ActionDrop, "Roll back every migration"),
	)

	return root
}

func newActionCmd(cfg *config.Config, action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.Runner(cfg, action)
		},
	}
}

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
}

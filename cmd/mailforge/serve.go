package main

import (
	"github.com/mailforge-ai/mailforge/config"
	"github.com/mailforge-ai/mailforge/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the email generation API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := buildLogger(cfg)

		pipeline, err := buildPipeline(cfg, logger)
		if err != nil {
			return err
		}

		srv := server.New(cfg.HTTPAddr, pipeline, server.WithLogger(logger))
		return srv.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/eei/returns-calculator/internal/config"
	"github.com/eei/returns-calculator/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	var (
		configFile string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator forms over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg := config.DefaultServerConfig()
			if configFile != "" {
				loaded, err := parser.LoadServerConfig(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
				if err := parser.ValidateServerConfig(cfg); err != nil {
					return fmt.Errorf("invalid --addr: %w", err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return web.NewServer(cfg, c.engine, c.logger).Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "server YAML config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

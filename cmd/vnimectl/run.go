package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/username/vnime/internal/config"
	"github.com/username/vnime/internal/daemonhost"
	"github.com/username/vnime/internal/loggingutil"
)

func newRunCmd(v *viper.Viper, configPath *string) *cobra.Command {
	var method, logLevel, logFormat string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the D-Bus daemon that Fcitx5 talks to",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("method") {
				v.Set("method", method)
			}
			if cmd.Flags().Changed("log-level") {
				v.Set("log_level", logLevel)
			}
			if cmd.Flags().Changed("log-format") {
				v.Set("log_format", logFormat)
			}

			cfg, err := config.Load(v, *configPath)
			if err != nil {
				return err
			}
			log := loggingutil.New(cfg.LogLevel, cfg.LogFormat)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			return daemonhost.Run(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "telex|vni")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "console|json")
	return cmd
}

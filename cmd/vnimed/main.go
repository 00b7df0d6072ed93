// Command vnimed is the standalone daemon entry point, kept alongside
// "vnimectl run" (the same logic, reachable from the cobra tree) since some
// init systems expect one binary per unit file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/username/vnime/internal/config"
	"github.com/username/vnime/internal/daemonhost"
	"github.com/username/vnime/internal/loggingutil"
)

func main() {
	cfg, err := config.Load(viper.New(), "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := loggingutil.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := daemonhost.Run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("daemon exited with error")
		os.Exit(1)
	}
}

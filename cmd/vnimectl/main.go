// Command vnimectl is the cobra-based control surface: it can run the
// daemon itself, manage the persisted shortcut table, or type a string
// through the engine directly for a quick smoke test (spec §10.3).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildVersion is set at build time via -ldflags; a static placeholder
// otherwise (spec §10.6: version/update-check parsing stays out of scope).
var buildVersion = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configPath string

	root := &cobra.Command{
		Use:           "vnimectl",
		Short:         "Control and smoke-test the vnime input method engine",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default ~/.config/vnime/config.yaml)")

	root.AddCommand(
		newRunCmd(v, &configPath),
		newShortcutsCmd(),
		newTypeCmd(),
		newVersionCmd(),
	)
	return root
}

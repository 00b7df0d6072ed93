package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/username/vnime/internal/config"
	"github.com/username/vnime/internal/engine"
	"github.com/username/vnime/internal/shortcutfile"
)

func newShortcutsCmd() *cobra.Command {
	var immediate bool

	cmd := &cobra.Command{
		Use:   "shortcuts",
		Short: "Manage the persisted shortcut table",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List configured shortcuts",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := shortcutsPath()
			if err != nil {
				return err
			}
			table, err := shortcutfile.Load(path)
			if err != nil {
				return err
			}
			for _, e := range table.Entries() {
				mode := "word-boundary"
				if e.Mode == engine.Immediate {
					mode = "immediate"
				}
				fmt.Printf("%-20s -> %-30s [%s]\n", e.Trigger, e.Output, mode)
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <trigger> <output>",
		Short: "Add a shortcut",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := shortcutsPath()
			if err != nil {
				return err
			}
			table, err := shortcutfile.Load(path)
			if err != nil {
				return err
			}
			if immediate {
				table.AddImmediate(args[0], args[1])
			} else {
				table.Add(args[0], args[1])
			}
			return shortcutfile.Save(path, table)
		},
	}
	add.Flags().BoolVar(&immediate, "immediate", false, "register as an immediate (no boundary key) shortcut")

	remove := &cobra.Command{
		Use:   "remove <trigger>",
		Short: "Remove a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := shortcutsPath()
			if err != nil {
				return err
			}
			table, err := shortcutfile.Load(path)
			if err != nil {
				return err
			}
			table.Remove(args[0])
			return shortcutfile.Save(path, table)
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func shortcutsPath() (string, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return "", err
	}
	return dir + "/shortcuts.yaml", nil
}

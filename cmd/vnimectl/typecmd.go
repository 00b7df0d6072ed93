package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/username/vnime/internal/engine"
)

// newTypeCmd feeds a literal string through the engine one rune at a time
// and prints the resulting screen buffer, for checking a method's behavior
// without a running D-Bus session (spec §10.3).
func newTypeCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "type <text>",
		Short: "Feed literal keystrokes through the engine and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := engine.NewEngine()
			if strings.EqualFold(method, "vni") {
				e.SetMethod(1)
			}

			var screen []rune
			for _, r := range args[0] {
				key, caps, ok := runeToKey(r)
				if !ok {
					continue
				}
				d := e.OnKey(key, caps, false, false)
				if d.Action != engine.ActionSend {
					// No directive: a host types the key itself.
					screen = append(screen, r)
					continue
				}
				n := len(screen) - int(d.Backspace)
				if n < 0 {
					n = 0
				}
				screen = append(screen[:n], d.Chars[:d.Count]...)
			}
			fmt.Println(string(screen))
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "telex", "telex|vni")
	return cmd
}

func runeToKey(r rune) (engine.Key, bool, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return engine.Key(int(engine.KeyA) + int(r-'a')), false, true
	case r >= 'A' && r <= 'Z':
		return engine.Key(int(engine.KeyA) + int(r-'A')), true, true
	case r >= '0' && r <= '9':
		return engine.Key(int(engine.Key0) + int(r-'0')), false, true
	case r == ' ':
		return engine.KeySpace, false, true
	}
	return engine.KeyNone, false, false
}

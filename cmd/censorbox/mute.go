package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/censorbox/internal/storage"
)

var muteCmd = &cobra.Command{
	Use:   "mute [on|off]",
	Short: "Show or set the stored mute preference",
	Long: `Without an argument, prints whether audio cues are muted.
With on or off, stores the preference for the next session.

Examples:
  censorbox mute
  censorbox mute on
  censorbox mute off`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	Run:       runMute,
}

func runMute(_ *cobra.Command, args []string) {
	// Open preference storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening preferences database: %v", err)
	}
	defer store.Close()

	if len(args) == 1 {
		var muted bool
		switch args[0] {
		case "on":
			muted = true
		case "off":
			muted = false
		default:
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: expected on or off, got %q\n", args[0])
			os.Exit(1)
		}
		if err := store.SetMuted(muted); err != nil {
			store.Close()
			fail("%v", err)
		}
	}

	muted, ok, err := store.Muted()
	if err != nil {
		store.Close()
		fail("%v", err)
	}

	switch {
	case !ok:
		fmt.Println("Mute: not set (config default applies)")
	case muted:
		fmt.Println("Mute: on")
	default:
		fmt.Println("Mute: off")
	}
}

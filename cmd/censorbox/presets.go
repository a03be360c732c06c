package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/censorbox/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets from the loaded configuration.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, d := range cfg.Difficulties {
		if len(d.Name) > maxNameLen {
			maxNameLen = len(d.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %5s  %6s  %5s\n", maxNameLen, "Name", "Lives", "Time", "Words")
	fmt.Printf("  %-*s  %5s  %6s  %5s\n", maxNameLen, "----", "-----", "----", "-----")

	// Print presets
	for _, d := range cfg.Difficulties {
		marker := ""
		if d.Name == cfg.DefaultDifficulty {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %5d  %5ds  %5d%s\n", maxNameLen, d.Name, d.Lives, d.TimeBudget, d.WordCount, marker)
	}

	fmt.Println()
	fmt.Printf("Word pool: %d words. Size thresholds: S<=%d M<=%d L<=%d XL>%d\n",
		len(cfg.Words), cfg.Classifier.Small, cfg.Classifier.Medium, cfg.Classifier.Large, cfg.Classifier.Large)
	fmt.Println("Run 'censorbox play --difficulty <name>' to start a round.")
}

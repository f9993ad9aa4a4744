package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vearutop/jpegicc"
)

var stripCmd = &cobra.Command{
	Use:   "strip [jpeg]",
	Short: "Remove all embedded ICC profile segments",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrip,
}

func init() {
	stripCmd.Flags().StringP("output", "o", "", "Output JPEG file")
	stripCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	out, removed := jpegicc.StripProfile(data)
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	if removed {
		fmt.Printf("Stripped ICC segments (%d bytes removed) → %s\n", len(data)-len(out), outPath)
	} else {
		fmt.Printf("No ICC segments found, copied as-is → %s\n", outPath)
	}
	return nil
}

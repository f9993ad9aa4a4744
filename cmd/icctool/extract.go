package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vearutop/jpegicc"
)

var extractCmd = &cobra.Command{
	Use:   "extract [jpeg]",
	Short: "Extract the embedded ICC profile to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "Output ICC profile file")
	extractCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	profile, err := jpegicc.ExtractProfile(data)
	if err != nil {
		return fmt.Errorf("extracting from %s: %w", args[0], err)
	}
	if err := os.WriteFile(outPath, profile, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("Extracted %d bytes → %s\n", len(profile), outPath)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vearutop/jpegicc"
)

var embedCmd = &cobra.Command{
	Use:   "embed [jpeg]",
	Short: "Embed an ICC profile, replacing any existing one",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmbed,
}

func init() {
	embedCmd.Flags().String("icc", "", "ICC profile to embed")
	embedCmd.Flags().StringP("output", "o", "", "Output JPEG file")
	embedCmd.MarkFlagRequired("icc")
	embedCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(cmd *cobra.Command, args []string) error {
	iccPath, _ := cmd.Flags().GetString("icc")
	outPath, _ := cmd.Flags().GetString("output")

	if err := jpegicc.EmbedProfileFile(args[0], iccPath, outPath); err != nil {
		return fmt.Errorf("embedding %s into %s: %w", iccPath, args[0], err)
	}

	fmt.Printf("Embedded %s → %s\n", iccPath, outPath)
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vearutop/jpegicc"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [jpeg]",
	Short: "Report the embedded ICC profile, if any",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("File size: %d bytes\n", len(data))

	profile, err := jpegicc.ExtractProfile(data)
	if errors.Is(err, jpegicc.ErrProfileNotFound) {
		fmt.Println("ICC profile: none")
		return nil
	}
	if err != nil {
		return fmt.Errorf("scanning %s: %w", args[0], err)
	}

	p := jpegicc.NewProfile(profile)
	fmt.Printf("ICC profile: %d bytes in %d chunk(s)\n", p.Len(), p.ChunkCount())
	if v, ok := p.RenderingIntent(); ok {
		fmt.Printf("Rendering intent: %d (%s)\n", v, intentName(v))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vearutop/jpegicc"
)

var intentCmd = &cobra.Command{
	Use:   "intent [profile.icc]",
	Short: "Get or set the rendering intent of an ICC profile file",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntent,
}

func init() {
	intentCmd.Flags().Int("set", -1, "New rendering intent (0-3)")
	rootCmd.AddCommand(intentCmd)
}

func runIntent(cmd *cobra.Command, args []string) error {
	set, _ := cmd.Flags().GetInt("set")

	var p jpegicc.Profile
	if err := p.ReadFile(args[0]); err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	if set >= 0 {
		if _, ok := p.RenderingIntent(); !ok {
			return fmt.Errorf("%s: profile too short to carry a rendering intent", args[0])
		}
		p.SetRenderingIntent(uint32(set))
		if err := p.WriteFile(args[0]); err != nil {
			return fmt.Errorf("writing %s: %w", args[0], err)
		}
	}

	v, ok := p.RenderingIntent()
	if !ok {
		fmt.Println("Rendering intent: unavailable")
		return nil
	}
	fmt.Printf("Rendering intent: %d (%s)\n", v, intentName(v))
	return nil
}

func intentName(v uint32) string {
	switch v {
	case jpegicc.IntentPerceptual:
		return "perceptual"
	case jpegicc.IntentRelativeColorimetric:
		return "relative colorimetric"
	case jpegicc.IntentSaturation:
		return "saturation"
	case jpegicc.IntentAbsoluteColorimetric:
		return "absolute colorimetric"
	}
	return "unknown"
}

// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/led-badge/lbadge/pkg/badge"
	"github.com/led-badge/lbadge/pkg/font"
)

// Message flags, shared by send, export and preview. Each invocation
// configures a single slot.
var (
	slotIndex    int
	messageText  string
	messageFile  string
	imageFile    string
	fontFamilies []string
	effectName   string
	speed        uint8
	blink        bool
	frame        bool
	brightness   uint8
)

// addMessageFlags registers the slot configuration flags on a command.
// Short names follow the original single-letter option set.
func addMessageFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&slotIndex, "slot", "i", 0, "Message slot [0..7]")
	cmd.Flags().StringVarP(&messageText, "text", "t", "", "Message text")
	cmd.Flags().StringVarP(&messageFile, "text-file", "T", "", "Read message text from file")
	cmd.Flags().StringVarP(&imageFile, "image", "p", "", "Load the slot bitmap from a PNG file (11px tall)")
	cmd.Flags().StringArrayVarP(&fontFamilies, "font", "F", nil,
		fmt.Sprintf("Font family name or font file path (repeatable, default %s)",
			strings.Join(fontDefaults(), ", ")))
	cmd.Flags().StringVarP(&effectName, "effect", "e", "left",
		fmt.Sprintf("Scroll effect [%s]", strings.Join(effectNames(), ",")))
	cmd.Flags().Uint8VarP(&speed, "speed", "s", 0, "Animation speed [1..8]")
	cmd.Flags().BoolVarP(&blink, "blink", "b", false, "Blink the message")
	cmd.Flags().BoolVarP(&frame, "frame", "f", false, "Draw a border frame around the message")
	cmd.Flags().Uint8VarP(&brightness, "brightness", "B", 0, "LED brightness [0..4], 0 is brightest")
}

func effectNames() []string {
	names := make([]string, 0, len(badge.Effects()))
	for _, e := range badge.Effects() {
		names = append(names, e.String())
	}
	return names
}

func fontDefaults() []string {
	return append([]string(nil), font.DefaultFamilies...)
}

// buildBadge assembles a badge configuration from the message flags.
func buildBadge(cmd *cobra.Command) (*badge.Badge, error) {
	if slotIndex < 0 || slotIndex >= badge.NumSlots {
		return nil, fmt.Errorf("--slot %d: wrong value, specify [0..7]", slotIndex)
	}
	if messageText != "" && messageFile != "" {
		return nil, fmt.Errorf("--text and --text-file are mutually exclusive")
	}

	b := badge.New()

	switch {
	case messageFile != "":
		if err := b.SetTextFromFile(slotIndex, messageFile, fontFamilies); err != nil {
			return nil, err
		}
	case messageText != "":
		if err := b.SetText(slotIndex, messageText, fontFamilies); err != nil {
			return nil, err
		}
	}
	if imageFile != "" {
		if err := b.SetImageFile(slotIndex, imageFile); err != nil {
			return nil, err
		}
	}

	effect, err := badge.ParseEffect(effectName)
	if err != nil {
		return nil, fmt.Errorf("--effect: %w", err)
	}
	if err := b.SetEffect(slotIndex, effect); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("speed") {
		if err := b.SetSpeed(slotIndex, speed); err != nil {
			return nil, fmt.Errorf("--speed %d: wrong value, specify [1..8]", speed)
		}
	}
	if err := b.SetBlink(slotIndex, blink); err != nil {
		return nil, err
	}
	if err := b.SetFrame(slotIndex, frame); err != nil {
		return nil, err
	}
	if err := b.SetBrightness(brightness); err != nil {
		return nil, fmt.Errorf("--brightness %d: wrong value, specify [0..4]", brightness)
	}

	return b, nil
}

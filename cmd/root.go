// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Protocol selection, shared by every command that talks to a badge.
	protocolName string
)

var rootCmd = &cobra.Command{
	Use:   "lbadge",
	Short: "USB LED badge writer",
	Long: `lbadge - write text and images to USB LED scrolling badges.

Supports the two common badge firmware families: the older "wang" header
protocol (s1144, USB 0416:5020) and the newer indexed protocol (b1248,
USB 0483:5750). In auto mode both are tried in that order.

A badge stores eight independent message slots. Each invocation configures
one slot (bitmap, scroll effect, speed, blink, frame) plus the global
brightness and transmits the whole configuration:

  lbadge send --slot 0 --text "Hello" --effect left --speed 4
  lbadge send --slot 1 --image logo.png --frame
  lbadge export --text "Hello" --out hello.png
  lbadge preview --text "Hello" --effect left`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&protocolName, "protocol", "P", "auto",
		"Badge protocol (auto, s1144, b1248)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

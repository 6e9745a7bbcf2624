// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/led-badge/lbadge/pkg/badge/device"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Transmit the configured messages to the badge",
	Long: `Send builds the badge configuration from the message flags and writes
it to the connected badge over USB HID.

Exactly one badge must be connected. With --protocol auto (the default)
the s1144 protocol is tried first, then b1248; a protocol whose device is
not present is skipped, any other failure aborts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := device.ParseBadgeType(protocolName)
		if err != nil {
			return err
		}
		b, err := buildBadge(cmd)
		if err != nil {
			return err
		}
		if err := device.Send(b, typ); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "badge updated")
		return nil
	},
}

func init() {
	addMessageFlags(sendCmd)
	rootCmd.AddCommand(sendCmd)
}

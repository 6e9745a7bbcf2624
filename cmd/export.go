// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/led-badge/lbadge/pkg/badge"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the configured slot to a PNG file instead of a badge",
	Long: `Export renders the configured slot exactly as it would be sent to the
badge and writes it as an 11px tall 8-bit grayscale PNG. The PNG can be
edited and loaded back with --image.

The image width is rounded up to a multiple of 8 pixels, the unit the
badge protocols measure message length in.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := buildBadge(cmd)
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return &badge.FileError{Path: exportOut, Err: err}
		}
		if err := b.ExportPNG(slotIndex, f); err != nil {
			f.Close()
			os.Remove(exportOut)
			return err
		}
		if err := f.Close(); err != nil {
			return &badge.FileError{Path: exportOut, Err: err}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOut)
		return nil
	},
}

func init() {
	addMessageFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output PNG file path")
	exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

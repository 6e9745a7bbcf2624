// SPDX-License-Identifier: MIT
//
// lbadge - USB LED badge writer
//
// Writes text and images to USB HID LED scrolling badges using the
// s1144 and b1248 firmware protocols.

package main

import (
	"fmt"
	"os"

	"github.com/led-badge/lbadge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

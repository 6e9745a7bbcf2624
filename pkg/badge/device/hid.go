// SPDX-License-Identifier: MIT

package device

import (
	"fmt"

	"github.com/karalabe/hid"
)

// hidTransport opens badges over USB HID. The design assumes exactly one
// badge is reachable: seeing more than one matching device is an error,
// not a selection opportunity.
type hidTransport struct{}

func (hidTransport) Open(vendorID, productID uint16) (Device, error) {
	infos := hid.Enumerate(vendorID, productID)
	switch len(infos) {
	case 0:
		return nil, ErrNotFound
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d devices match %04x:%04x",
			ErrMultipleFound, len(infos), vendorID, productID)
	}

	dev, err := infos[0].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return dev, nil
}

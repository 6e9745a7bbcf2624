// SPDX-License-Identifier: MIT

package badge

import "fmt"

// Effect is the scroll/animation style applied to one message slot. The
// numeric value is the 3-bit (4-bit on the legacy wire) effect code both
// firmware families use.
type Effect uint8

const (
	EffectLeft Effect = iota
	EffectRight
	EffectUp
	EffectDown
	EffectFreeze
	EffectAnimation
	EffectSnow
	EffectVolume
	EffectLaser
)

var effectNames = [...]string{
	"left", "right", "up", "down", "freeze", "animation", "snow", "volume", "laser",
}

// String returns the lower-case wire/CLI name of the effect.
func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("effect(%d)", uint8(e))
}

// ParseEffect maps a lower-case effect name back to its code.
func ParseEffect(s string) (Effect, error) {
	for i, name := range effectNames {
		if s == name {
			return Effect(i), nil
		}
	}
	return 0, fmt.Errorf("unknown effect %q", s)
}

// Effects returns all effects in wire-code order.
func Effects() []Effect {
	all := make([]Effect, len(effectNames))
	for i := range all {
		all[i] = Effect(i)
	}
	return all
}

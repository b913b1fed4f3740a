// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import "fmt"

// Classification tags a scored signal. The numeric codes are a wire
// contract shared with the off-chain signal scorer and must never be
// reassigned across versions, so every variant carries an explicit value
// instead of relying on declaration order.
type Classification byte

const (
	ClassificationCapital   Classification = 0
	ClassificationInfo      Classification = 1
	ClassificationVelocity  Classification = 2
	ClassificationLiquidity Classification = 3
	ClassificationNews      Classification = 4
	ClassificationTime      Classification = 5
)

// Valid reports whether the byte decodes to a known variant.
func (c Classification) Valid() bool {
	return c <= ClassificationTime
}

func (c Classification) String() string {
	switch c {
	case ClassificationCapital:
		return "Capital"
	case ClassificationInfo:
		return "Info"
	case ClassificationVelocity:
		return "Velocity"
	case ClassificationLiquidity:
		return "Liquidity"
	case ClassificationNews:
		return "News"
	case ClassificationTime:
		return "Time"
	default:
		return fmt.Sprintf("Unknown(%d)", byte(c))
	}
}

// SPDX-License-Identifier: MIT

package extended

// Kind tags the state of an extended number. The numeric values follow the
// total order, so comparing two tags as integers orders the states.
type Kind int8

const (
	// NegInfinity is the least element of the double-bounded family.
	NegInfinity Kind = -1
	// Finite marks a value that wraps an ordinary T. It is the zero Kind.
	Finite Kind = 0
	// PosInfinity is the greatest element of either family.
	PosInfinity Kind = 1
	// Infinity names PosInfinity in the single-bounded family.
	Infinity = PosInfinity
)

// String returns the tag name.
func (k Kind) String() string {
	switch k {
	case NegInfinity:
		return "NegInfinity"
	case Finite:
		return "Finite"
	case PosInfinity:
		return "PosInfinity"
	default:
		return "Kind(?)"
	}
}

const (
	posInfText = "+infinity"
	negInfText = "-infinity"
)

// compareKinds orders two tags; it is only meaningful when at least one
// side is infinite.
func compareKinds(a, b Kind) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SPDX-License-Identifier: MIT

package extended

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/extnum/numeric"
)

// Literal tokens. Parsing is case-insensitive and ignores surrounding space.
var (
	posInfTokens = map[string]bool{"inf": true, "+inf": true, "infinity": true, posInfText: true}
	negInfTokens = map[string]bool{"-inf": true, negInfText: true}
)

// Parse reads a double-bounded literal. "+inf", "inf", "+infinity" and
// "infinity" give PosInfinity; "-inf" and "-infinity" give NegInfinity; any
// other token is handed to finite. Errors wrap ErrSyntax.
//
// Parse accepts everything String produces.
func Parse[T numeric.Signed[T]](tok string, finite func(string) (T, error)) (Number[T], error) {
	t := strings.ToLower(strings.TrimSpace(tok))
	switch {
	case posInfTokens[t]:
		return PosInf[T](), nil
	case negInfTokens[t]:
		return NegInf[T](), nil
	}
	v, err := finite(t)
	if err != nil {
		return Number[T]{}, fmt.Errorf("%w %q: %v", ErrSyntax, tok, err)
	}

	return New(v), nil
}

// ParseNonNegative reads a single-bounded literal. The negative infinity
// tokens are rejected with ErrSyntax.
func ParseNonNegative[T numeric.Unsigned[T]](tok string, finite func(string) (T, error)) (NonNegative[T], error) {
	t := strings.ToLower(strings.TrimSpace(tok))
	switch {
	case posInfTokens[t]:
		return Inf[T](), nil
	case negInfTokens[t]:
		return NonNegative[T]{}, fmt.Errorf("%w %q: no negative infinity in a non-negative domain", ErrSyntax, tok)
	}
	v, err := finite(t)
	if err != nil {
		return NonNegative[T]{}, fmt.Errorf("%w %q: %v", ErrSyntax, tok, err)
	}

	return NewNonNegative(v), nil
}

// ParseInt64 parses a base-10 or infinity literal into an Int64.
func ParseInt64(tok string) (Int64, error) {
	return Parse(tok, numeric.ParseSigned[numeric.Int64])
}

// ParseUint64 parses a base-10 or infinity literal into a Uint64.
func ParseUint64(tok string) (Uint64, error) {
	return ParseNonNegative(tok, numeric.ParseUnsigned[numeric.Uint64])
}

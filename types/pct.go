package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"math/big"
	"strings"
)

// PctBase is the fixed-point base used for ratios. A Pct of PctBase represents 100%.
const PctBase uint64 = 1_000_000_000_000_000_000

// pct16Unit is the value of a single percent in base PctBase.
const pct16Unit uint64 = 10_000_000_000_000_000

// Pct is a fixed-point ratio expressed in units of 1/PctBase.
type Pct uint64

// Pct16 returns the Pct for a whole percentage, e.g. Pct16(50) is 50%.
func Pct16(percent uint64) Pct {
	return Pct(percent * pct16Unit)
}

// Big returns the ratio numerator as a big integer.
func (p Pct) Big() *big.Int {
	return new(big.Int).SetUint64(uint64(p))
}

// String formats the ratio as a percentage, e.g. "50%" or "33.33%".
func (p Pct) String() string {
	r := new(big.Rat).SetFrac(
		new(big.Int).Mul(p.Big(), big.NewInt(100)),
		new(big.Int).SetUint64(PctBase),
	)

	s := r.FloatString(2)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return s + "%"
}

// MulBig returns value * p in units of PctBase, i.e. the unscaled product. Comparing it against
// another quantity scaled by PctBase keeps the arithmetic exact.
func (p Pct) MulBig(value *big.Int) *big.Int {
	return new(big.Int).Mul(value, p.Big())
}

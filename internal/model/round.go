package model

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Round rounds f to places decimals the way chart labels print it: from the
// exact binary value of f, halves away from zero. 1.0005 is stored just
// below the half and rounds to 1.000, not 1.001.
func Round(f float64, places int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	return exactDecimal(f).Round(places).InexactFloat64()
}

// exactDecimal expands f = mant * 2^exp without loss.
func exactDecimal(f float64) decimal.Decimal {
	frac, exp := math.Frexp(f)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// m / 2^k == m * 5^k / 10^k
	k := int64(-exp)
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, pow), int32(-k))
}

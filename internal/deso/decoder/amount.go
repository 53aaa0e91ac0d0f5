package decoder

import (
	"math/big"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

var satoshiPerBitcoin = decimal.NewFromInt(btcutil.SatoshiPerBitcoin)

// nanos converts an amount of nanos to the display unit (1e-9).
func nanos(n uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(n), -9)
}

// basisPoints converts basis points to a percentage.
func basisPoints(bp uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(bp), -2)
}

func satoshisToBTC(sat int64) decimal.Decimal {
	return decimal.NewFromInt(int64(btcutil.Amount(sat))).Div(satoshiPerBitcoin)
}

// ceilPercent returns ceil(part*100/whole), or nil when whole is zero.
func ceilPercent(part, whole uint64) *uint64 {
	if whole == 0 {
		return nil
	}
	num := new(big.Int).Mul(new(big.Int).SetUint64(part), big.NewInt(100))
	den := new(big.Int).SetUint64(whole)
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	if !q.IsUint64() {
		return nil
	}
	v := q.Uint64()
	return &v
}

func ptr[T any](v T) *T {
	return &v
}

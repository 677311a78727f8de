package models

import "github.com/shopspring/decimal"

var satoshisPerBTC = decimal.NewFromInt(100_000_000)

// BTCFromSatoshis renders a satoshi amount as a decimal BTC string without
// float formatting artifacts (150000000 -> "1.5").
func BTCFromSatoshis(sats float64) string {
	return decimal.NewFromFloat(sats).Div(satoshisPerBTC).String()
}

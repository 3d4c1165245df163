package domain

import "fmt"

// Currency identifies one of the currencies the tracker supports.
// The set is closed: conversion and formatting are total over it, and a
// request for anything else is a caller bug, not a transient condition.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyPLN Currency = "PLN"
)

// SupportedCurrencies lists every currency the application knows about.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyPLN}

// IsSupported reports whether c belongs to the supported set.
func (c Currency) IsSupported() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// PairKey builds the ordered cache key for a directional currency pair,
// e.g. PairKey(CurrencyUSD, CurrencyPLN) == "USD_PLN".
func PairKey(from, to Currency) string {
	return fmt.Sprintf("%s_%s", from, to)
}

// CurrencyForLanguage maps a UI language to its default display currency.
func CurrencyForLanguage(language string) Currency {
	if language == "pl" {
		return CurrencyPLN
	}
	return CurrencyUSD
}

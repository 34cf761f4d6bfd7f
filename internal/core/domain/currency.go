package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// USDDecimals is the fixed internal precision for USD-normalized values
// (Chainlink USD feed convention).
const USDDecimals = 8

// NativeCurrencyKey identifies the chain-native currency in ledger keys and
// oracle bindings.
const NativeCurrencyKey = "native"

const tokenKeyPrefix = "token:"

// CurrencyKind discriminates the bid-currency tagged union.
type CurrencyKind string

const (
	CurrencyKindNative CurrencyKind = "NATIVE"
	CurrencyKindToken  CurrencyKind = "TOKEN"
)

// Currency is a tagged currency value: either the native currency or a
// specific fungible-token contract. Token is empty for native.
type Currency struct {
	Kind  CurrencyKind `json:"kind"`
	Token string       `json:"token,omitempty"`
}

// NativeCurrency returns the native-currency tag.
func NativeCurrency() Currency {
	return Currency{Kind: CurrencyKindNative}
}

// TokenCurrency returns the tag for a fungible-token contract address.
func TokenCurrency(token string) Currency {
	return Currency{Kind: CurrencyKindToken, Token: token}
}

// IsNative reports whether c is the native currency.
func (c Currency) IsNative() bool {
	return c.Kind == CurrencyKindNative
}

// Key returns the canonical string key used for ledger rows and oracle
// bindings: "native" or "token:<address>".
func (c Currency) Key() string {
	if c.IsNative() {
		return NativeCurrencyKey
	}
	return tokenKeyPrefix + c.Token
}

// ParseCurrencyKey reverses Key.
func ParseCurrencyKey(key string) (Currency, error) {
	if key == NativeCurrencyKey {
		return NativeCurrency(), nil
	}
	if addr, ok := strings.CutPrefix(key, tokenKeyPrefix); ok && addr != "" {
		return TokenCurrency(addr), nil
	}
	return Currency{}, fmt.Errorf("invalid currency key %q", key)
}

// Bid is an offer amount in its own currency unit.
type Bid struct {
	Currency Currency        `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

type ID int64

func ParseID(raw string) (ID, bool) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return ID(value), true
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Amount is a monetary value. Prices, spend and loyalty math are all done in decimal.
type Amount = decimal.Decimal

func NewAmountFromInt(value int64) Amount {
	return decimal.NewFromInt(value)
}

func NewAmountFromString(value string) (Amount, error) {
	return decimal.NewFromString(value)
}

func RoundCents(a Amount) Amount {
	return a.Round(2)
}

type Event interface {
	GetName() string
	GetEntityName() string
}

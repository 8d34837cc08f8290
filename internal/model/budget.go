package model

import "github.com/shopspring/decimal"

// Budget is a monthly spending limit for a single expense category.
// The category is the natural key: at most one budget exists per category,
// and setting a budget for an existing category replaces the prior entry.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

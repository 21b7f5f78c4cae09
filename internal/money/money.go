// Package money holds the rules for amounts stored in NUMERIC(12,2) columns.
package money

import "math"

// Limit is the smallest amount a NUMERIC(12,2) column cannot hold.
const Limit = 1e10

// Round rounds v to whole cents, the precision the database keeps.
func Round(v float64) float64 { return math.Round(v*100) / 100 }

// Fits reports whether a rounded amount can be stored.
func Fits(v float64) bool { return v > -Limit && v < Limit }

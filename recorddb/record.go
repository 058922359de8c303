package recorddb

import (
	"strings"
)

// Record is one row of the database. Records are ordered and looked up by
// Brand.
type Record struct {
	Brand       string `json:"brand"   validate:"required"`
	Founder     string `json:"founder"`
	YearFounded int    `json:"year"    validate:"gte=0"`
}

// NewRecord returns a record with the given fields.
func NewRecord(brand, founder string, yearFounded int) *Record {
	return &Record{Brand: brand, Founder: founder, YearFounded: yearFounded}
}

// Compare orders records byte-wise by brand.
func Compare(a, b *Record) int {
	return strings.Compare(a.Brand, b.Brand)
}

// key returns a throwaway record usable as a search key for brand.
func key(brand string) *Record {
	return &Record{Brand: brand}
}

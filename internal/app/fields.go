package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"motorcalc.klederson.com/internal/config"
)

// fieldID indexes the wizard's input sequence.
type fieldID int

const (
	fieldKV fieldID = iota
	fieldVoltage
	fieldCells
	fieldNoLoad
	fieldMaxCurrent
	fieldResistance
	fieldCapacity
)

// field describes one wizard entry.
type field struct {
	what     string // Lowercase name used in the prompt
	unit     string
	nonZero  bool // Strictly positive, rather than merely non-negative
	optional bool // Blank entry skips the field
}

var fields = map[fieldID]field{
	fieldKV:         {what: "Kv", unit: "RPM/V", nonZero: true},
	fieldVoltage:    {what: "voltage", unit: "V", nonZero: true},
	fieldCells:      {what: "cell count", unit: "cells", nonZero: true},
	fieldNoLoad:     {what: "unloaded current", unit: "A"},
	fieldMaxCurrent: {what: "maximum current", unit: "A", nonZero: true},
	fieldResistance: {what: "armature resistance", unit: "mΩ"},
	fieldCapacity:   {what: "battery capacity", unit: "mAh", optional: true},
}

// prompt is the entry line shown while the field is being typed.
func (f field) prompt() string {
	if f.optional {
		return fmt.Sprintf("Enter %s (%s, blank to skip): ", f.what, f.unit)
	}
	return fmt.Sprintf("Enter %s (%s): ", f.what, f.unit)
}

// label is the capitalized form used on accepted rows.
func (f field) label() string {
	return strings.ToUpper(f.what[:1]) + f.what[1:]
}

// Entry validation outcomes. errEmptyEntry redisplays the prompt silently,
// the others show inline.
var (
	errEmptyEntry   = errors.New("empty entry")
	errInvalidEntry = errors.New("Invalid entry, try again.")
	errNotPositive  = errors.New("Value must be greater than zero, try again.")
	errNegative     = errors.New("Value must not be negative, try again.")
)

// parseEntry validates one typed value. skip reports a blank optional entry.
func parseEntry(f field, s string) (val float64, skip bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if f.optional {
			return 0, true, nil
		}
		return 0, false, errEmptyEntry
	}

	v, perr := strconv.ParseFloat(s, 64)
	if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, errInvalidEntry
	}
	if f.nonZero && v <= 0 {
		return 0, false, errNotPositive
	}
	if v < 0 {
		return 0, false, errNegative
	}
	return v, false, nil
}

// cellsToVolts converts a LiPo cell count to the nominal pack voltage.
func cellsToVolts(cells float64) float64 {
	return cells * config.VoltsPerCell
}

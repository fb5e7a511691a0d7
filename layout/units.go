package layout

import (
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for lengths. The layout
// engine computes everything in millimeters; template authors may write
// lengths in mm, cm, in or pt.

// Unit represents the original unit of a length value as specified in a template.
type Unit int

const (
	UnitNone Unit = iota // bare numbers, interpreted as mm
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// mmFactor maps each unit to its size in millimeters. Bare numbers count as mm.
func mmFactor(u Unit) float64 {
	switch u {
	case UnitCM:
		return 10
	case UnitIN:
		return 25.4
	case UnitPT:
		return PtToMm
	default:
		return 1
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// ToMM converts this length to millimeters.
func (l Length) ToMM() float64 { return l.Value * mmFactor(l.Unit) }

// ToPT converts this length to points.
func (l Length) ToPT() float64 { return l.ToMM() * MmToPt }

// ParseLength parses a template length token preserving its unit.
// A missing or malformed token yields ok=false.
func ParseLength(value string) (Length, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, false
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Value: f, Unit: unit}, true
}

// Package units models the EPSG units of measure needed to compare
// geodetic quantities reported in different units.
package units

import (
	"fmt"
	"math"
)

type Kind int

const (
	Linear Kind = iota
	Angular
	Scale
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Angular:
		return "angular"
	case Scale:
		return "scale"
	default:
		return "unknown"
	}
}

// Unit is a unit of measure. Factor converts a value in this unit to the
// base unit of its kind (metre, radian or unity). Units are value types
// and compare with ==.
type Unit struct {
	Code   int
	Name   string
	Symbol string
	Kind   Kind
	Factor float64
}

func (u Unit) String() string {
	return u.Name
}

var (
	Metre        = Unit{Code: 9001, Name: "metre", Symbol: "m", Kind: Linear, Factor: 1}
	Foot         = Unit{Code: 9002, Name: "foot", Symbol: "ft", Kind: Linear, Factor: 0.3048}
	USSurveyFoot = Unit{Code: 9003, Name: "US survey foot", Symbol: "ftUS", Kind: Linear, Factor: 12.0 / 39.37}
	Kilometre    = Unit{Code: 9036, Name: "kilometre", Symbol: "km", Kind: Linear, Factor: 1000}

	Radian      = Unit{Code: 9101, Name: "radian", Symbol: "rad", Kind: Angular, Factor: 1}
	Degree      = Unit{Code: 9102, Name: "degree", Symbol: "deg", Kind: Angular, Factor: math.Pi / 180}
	ArcSecond   = Unit{Code: 9104, Name: "arc-second", Symbol: "sec", Kind: Angular, Factor: math.Pi / (180 * 3600)}
	Grad        = Unit{Code: 9105, Name: "grad", Symbol: "gr", Kind: Angular, Factor: math.Pi / 200}
	MicroRadian = Unit{Code: 9109, Name: "microradian", Symbol: "urad", Kind: Angular, Factor: 1e-6}

	Unity = Unit{Code: 9201, Name: "unity", Symbol: "", Kind: Scale, Factor: 1}
	PPM   = Unit{Code: 9202, Name: "parts per million", Symbol: "ppm", Kind: Scale, Factor: 1e-6}
)

var all = []Unit{
	Metre, Foot, USSurveyFoot, Kilometre,
	Radian, Degree, ArcSecond, Grad, MicroRadian,
	Unity, PPM,
}

// ByCode returns the unit with the given EPSG code.
func ByCode(code int) (Unit, bool) {
	for _, u := range all {
		if u.Code == code {
			return u, true
		}
	}

	return Unit{}, false
}

// Convert expresses v, given in from, in to. Converting between units of
// different kinds is an error.
func Convert(v float64, from, to Unit) (float64, error) {
	if from == to {
		return v, nil
	}

	if from.Kind != to.Kind {
		return 0, fmt.Errorf("cannot convert %s (%s) to %s (%s)", from.Name, from.Kind, to.Name, to.Kind)
	}

	if from.Factor == 0 || to.Factor == 0 {
		return 0, fmt.Errorf("unit without conversion factor: %s to %s", from.Name, to.Name)
	}

	return v * from.Factor / to.Factor, nil
}

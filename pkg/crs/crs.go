// Package crs defines the read-only views of coordinate reference system
// objects that a candidate geodesy implementation exposes for verification.
//
// Verifiers only ever read these objects. Construction and ownership stay
// with the factory that produced them.
package crs

import (
	"github.com/akuznet/geoconform/pkg/units"
)

// Identifier is one authority code attached to an object, e.g. EPSG:4326.
type Identifier struct {
	CodeSpace string
	Code      string
}

func (i Identifier) String() string {
	return i.CodeSpace + ":" + i.Code
}

// IdentifiedObject is the minimal surface shared by all verifiable objects.
type IdentifiedObject interface {
	// Name returns the primary name, empty if the object is unnamed.
	Name() string
	Identifiers() []Identifier
	Aliases() []string
}

type Ellipsoid interface {
	IdentifiedObject

	// SemiMajorAxis is expressed in AxisUnit.
	SemiMajorAxis() float64
	// InverseFlattening is dimensionless.
	InverseFlattening() float64
	// AxisUnit returns the unit of the semi-major axis, nil if unknown.
	AxisUnit() *units.Unit
	// IvfDefinitive reports whether the inverse flattening is the defining
	// parameter, as opposed to being derived from the semi-minor axis.
	IvfDefinitive() bool
}

type PrimeMeridian interface {
	IdentifiedObject

	// GreenwichLongitude is expressed in AngularUnit, positive east.
	GreenwichLongitude() float64
	// AngularUnit returns the unit of the longitude, nil if unknown.
	AngularUnit() *units.Unit
}

type AxisDirection string

const (
	North AxisDirection = "north"
	South AxisDirection = "south"
	East  AxisDirection = "east"
	West  AxisDirection = "west"
	Up    AxisDirection = "up"
	Down  AxisDirection = "down"
)

type Axis struct {
	Abbrev    string
	Direction AxisDirection
	Unit      units.Unit
}

type CoordinateSystem interface {
	IdentifiedObject

	Dimension() int
	// Axis returns the i-th axis, nil if i is out of range.
	Axis(i int) *Axis
}

type GeodeticDatum interface {
	IdentifiedObject

	Ellipsoid() Ellipsoid
	PrimeMeridian() PrimeMeridian
}

type GeographicCRS interface {
	IdentifiedObject

	Datum() GeodeticDatum
	CoordinateSystem() CoordinateSystem
}

// Parameter is one operation parameter of a map projection conversion.
type Parameter struct {
	Name  string
	Value float64
	Unit  units.Unit
}

// Conversion is a defining conversion of a projected CRS, e.g. "UTM zone 31N".
type Conversion interface {
	IdentifiedObject

	Method() string
	Parameters() []Parameter
}

// Package epsg carries a subset of the EPSG geodetic parameter dataset
// and a registry-backed factory building candidate objects from it. The
// registry doubles as the reference candidate: a conformance run against
// it must fully pass.
package epsg

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/akuznet/geoconform/pkg/crs"
	"github.com/akuznet/geoconform/pkg/units"
)

// ErrUnsupportedCode is reported for codes the candidate does not
// implement. Runners record these checks as skipped.
var ErrUnsupportedCode = errors.New("unsupported code")

// Factory builds candidate objects by EPSG code. Implementations wrap the
// geodesy library under test.
type Factory interface {
	CreateEllipsoid(code int) (crs.Ellipsoid, error)
	CreatePrimeMeridian(code int) (crs.PrimeMeridian, error)
	CreateCoordinateSystem(code int) (crs.CoordinateSystem, error)
	CreateDatum(code int) (crs.GeodeticDatum, error)
	CreateGeographicCRS(code int) (crs.GeographicCRS, error)
	CreateConversion(code int) (crs.Conversion, error)
}

type object struct {
	name    string
	aliases []string
	ids     []crs.Identifier
}

func (o *object) Name() string { return o.name }
func (o *object) Aliases() []string { return o.aliases }
func (o *object) Identifiers() []crs.Identifier { return o.ids }

func newObject(code int, name string, aliases []string) object {
	return object{
		name:    name,
		aliases: aliases,
		ids:     []crs.Identifier{{CodeSpace: "EPSG", Code: strconv.Itoa(code)}},
	}
}

type ellipsoid struct {
	object
	a, rf float64
	unit  units.Unit
	ivf   bool
}

func (e *ellipsoid) SemiMajorAxis() float64 { return e.a }
func (e *ellipsoid) InverseFlattening() float64 { return e.rf }
func (e *ellipsoid) IvfDefinitive() bool { return e.ivf }

func (e *ellipsoid) AxisUnit() *units.Unit {
	u := e.unit

	return &u
}

type meridian struct {
	object
	lon  float64
	unit units.Unit
}

func (m *meridian) GreenwichLongitude() float64 { return m.lon }

func (m *meridian) AngularUnit() *units.Unit {
	u := m.unit

	return &u
}

type coordSystem struct {
	object
	axes []crs.Axis
}

func (c *coordSystem) Dimension() int { return len(c.axes) }

func (c *coordSystem) Axis(i int) *crs.Axis {
	if i < 0 || i >= len(c.axes) {
		return nil
	}

	return &c.axes[i]
}

type datum struct {
	object
	ellipsoid crs.Ellipsoid
	meridian  crs.PrimeMeridian
}

func (d *datum) Ellipsoid() crs.Ellipsoid { return d.ellipsoid }
func (d *datum) PrimeMeridian() crs.PrimeMeridian { return d.meridian }

type geographicCRS struct {
	object
	datum crs.GeodeticDatum
	cs    crs.CoordinateSystem
}

func (g *geographicCRS) Datum() crs.GeodeticDatum { return g.datum }
func (g *geographicCRS) CoordinateSystem() crs.CoordinateSystem { return g.cs }

type conversion struct {
	object
	method string
	params []crs.Parameter
}

func (c *conversion) Method() string { return c.method }
func (c *conversion) Parameters() []crs.Parameter { return c.params }

// Registry is the built-in Factory over the package dataset.
type Registry struct{}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) CreateEllipsoid(code int) (crs.Ellipsoid, error) {
	rec, ok := FindEllipsoid(code)
	if !ok {
		return nil, fmt.Errorf("ellipsoid %d: %w", code, ErrUnsupportedCode)
	}

	return &ellipsoid{
		object: newObject(rec.Code, rec.Name, rec.Aliases),
		a:      rec.SemiMajor,
		rf:     rec.InverseFlattening,
		unit:   rec.Unit,
		ivf:    rec.IvfDefinitive,
	}, nil
}

func (r *Registry) CreatePrimeMeridian(code int) (crs.PrimeMeridian, error) {
	rec, ok := FindPrimeMeridian(code)
	if !ok {
		return nil, fmt.Errorf("prime meridian %d: %w", code, ErrUnsupportedCode)
	}

	return &meridian{
		object: newObject(rec.Code, rec.Name, nil),
		lon:    rec.Longitude,
		unit:   rec.Unit,
	}, nil
}

func (r *Registry) CreateCoordinateSystem(code int) (crs.CoordinateSystem, error) {
	rec, ok := FindCoordinateSystem(code)
	if !ok {
		return nil, fmt.Errorf("coordinate system %d: %w", code, ErrUnsupportedCode)
	}

	axes := make([]crs.Axis, len(rec.Directions))
	for i, dir := range rec.Directions {
		axes[i] = crs.Axis{
			Abbrev:    rec.Abbrevs[i],
			Direction: dir,
			Unit:      rec.Units[min(i, len(rec.Units)-1)],
		}
	}

	return &coordSystem{
		object: newObject(rec.Code, rec.Name, nil),
		axes:   axes,
	}, nil
}

func (r *Registry) CreateDatum(code int) (crs.GeodeticDatum, error) {
	rec, ok := FindDatum(code)
	if !ok {
		return nil, fmt.Errorf("datum %d: %w", code, ErrUnsupportedCode)
	}

	e, err := r.CreateEllipsoid(rec.EllipsoidCode)
	if err != nil {
		return nil, err
	}

	pm, err := r.CreatePrimeMeridian(rec.MeridianCode)
	if err != nil {
		return nil, err
	}

	return &datum{
		object:    newObject(rec.Code, rec.Name, rec.Aliases),
		ellipsoid: e,
		meridian:  pm,
	}, nil
}

func (r *Registry) CreateGeographicCRS(code int) (crs.GeographicCRS, error) {
	rec, ok := FindGeographicCRS(code)
	if !ok {
		return nil, fmt.Errorf("geographic CRS %d: %w", code, ErrUnsupportedCode)
	}

	d, err := r.CreateDatum(rec.DatumCode)
	if err != nil {
		return nil, err
	}

	cs, err := r.CreateCoordinateSystem(rec.CSCode)
	if err != nil {
		return nil, err
	}

	return &geographicCRS{
		object: newObject(rec.Code, rec.Name, rec.Aliases),
		datum:  d,
		cs:     cs,
	}, nil
}

func (r *Registry) CreateConversion(code int) (crs.Conversion, error) {
	rec, ok := FindConversion(code)
	if !ok {
		return nil, fmt.Errorf("conversion %d: %w", code, ErrUnsupportedCode)
	}

	return &conversion{
		object: newObject(rec.Code, rec.Name, nil),
		method: rec.Method,
		params: rec.Parameters,
	}, nil
}

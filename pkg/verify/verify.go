// Package verify checks candidate geodesy objects against EPSG reference
// values. Name comparison tolerates spacing, punctuation and case
// differences, numeric comparison converts units and applies the package
// tolerances. All checks are read-only and fail fast: the first diverging
// property of an object aborts the remaining checks of that call.
package verify

import (
	"fmt"

	"github.com/akuznet/geoconform/pkg/crs"
	"github.com/akuznet/geoconform/pkg/naming"
	"github.com/akuznet/geoconform/pkg/units"
)

// Verifier runs property checks against candidate objects. The zero value
// is ready to use: case-insensitive name matching and the package unit
// converter.
type Verifier struct {
	// SkipIdentification disables name matching. Used when candidates are
	// fetched by authority code, where names legitimately diverge between
	// registries.
	SkipIdentification bool
	// CaseSensitive makes name matching distinguish case.
	CaseSensitive bool
	// Convert overrides the unit conversion capability. Defaults to
	// units.Convert.
	Convert func(v float64, from, to units.Unit) (float64, error)
	// Tip, when set, is appended to name-matching failures. Runners use it
	// to point at the configuration switch that relaxes those checks.
	Tip string
}

func (v *Verifier) convert(val float64, from, to units.Unit, field string) (float64, error) {
	conv := v.Convert
	if conv == nil {
		conv = units.Convert
	}

	res, err := conv(val, from, to)
	if err != nil {
		return 0, &Failure{Kind: Conversion, Field: field, Message: err.Error(), Cause: err}
	}

	return res, nil
}

func (v *Verifier) name(obj crs.IdentifiedObject, expected, field string) error {
	if expected == "" || v.SkipIdentification {
		return nil
	}

	if err := naming.Matches(&expected, naming.Opt(obj.Name()), !v.CaseSensitive); err != nil {
		msg := err.Error()
		if v.Tip != "" {
			msg += " (" + v.Tip + ")"
		}

		return &Failure{Kind: Assertion, Field: field, Message: msg, Cause: err}
	}

	return nil
}

// Identification checks the name and the authority code of any identified
// object. An empty expected name or code skips that half of the check.
func (v *Verifier) Identification(obj crs.IdentifiedObject, expectedName, expectedCode string) error {
	if obj == nil {
		return nil
	}

	if err := v.name(obj, expectedName, "Name()"); err != nil {
		return err
	}

	if expectedCode != "" {
		if err := ContainsCode(expectedCode, obj.Identifiers()); err != nil {
			return err
		}
	}

	return nil
}

// Ellipsoid checks the name, semi-major axis and inverse flattening of a
// candidate ellipsoid. semiMajor is expressed in axisUnit; the candidate
// value is converted from its own axis unit before comparison.
func (v *Verifier) Ellipsoid(e crs.Ellipsoid, expectedName string, semiMajor, inverseFlattening float64, axisUnit units.Unit) error {
	if e == nil {
		return nil
	}

	if err := v.name(e, expectedName, "Ellipsoid.Name()"); err != nil {
		return err
	}

	au := e.AxisUnit()
	if au == nil {
		return failf("Ellipsoid.AxisUnit()", "axis unit is missing")
	}

	actual, err := v.convert(e.SemiMajorAxis(), *au, axisUnit, "Ellipsoid.SemiMajorAxis()")
	if err != nil {
		return err
	}

	tol, err := v.convert(LinearTolerance, units.Metre, axisUnit, "Ellipsoid.SemiMajorAxis()")
	if err != nil {
		return err
	}

	if !WithinTolerance(semiMajor, actual, tol) {
		return failf("Ellipsoid.SemiMajorAxis()",
			"expected %v %s, got %v %s (tolerance %v)", semiMajor, axisUnit, actual, axisUnit, tol)
	}

	if !WithinTolerance(inverseFlattening, e.InverseFlattening(), FlatteningTolerance) {
		return failf("Ellipsoid.InverseFlattening()",
			"expected %v, got %v", inverseFlattening, e.InverseFlattening())
	}

	return nil
}

// PrimeMeridian checks the name and Greenwich longitude of a candidate
// prime meridian. longitude is expressed in angularUnit.
func (v *Verifier) PrimeMeridian(pm crs.PrimeMeridian, expectedName string, longitude float64, angularUnit units.Unit) error {
	if pm == nil {
		return nil
	}

	if err := v.name(pm, expectedName, "PrimeMeridian.Name()"); err != nil {
		return err
	}

	au := pm.AngularUnit()
	if au == nil {
		return failf("PrimeMeridian.AngularUnit()", "angular unit is missing")
	}

	actual, err := v.convert(pm.GreenwichLongitude(), *au, angularUnit, "PrimeMeridian.GreenwichLongitude()")
	if err != nil {
		return err
	}

	tol, err := v.convert(AngularTolerance, units.Degree, angularUnit, "PrimeMeridian.GreenwichLongitude()")
	if err != nil {
		return err
	}

	if !WithinTolerance(longitude, actual, tol) {
		return failf("PrimeMeridian.GreenwichLongitude()",
			"expected %v %s, got %v %s (tolerance %v)", longitude, angularUnit, actual, angularUnit, tol)
	}

	return nil
}

// CoordinateSystem checks the dimension, axis directions and axis units of
// a candidate coordinate system. Directions and units compare exactly.
// When axisUnits is shorter than the dimension, its last element applies
// to the remaining axes: EPSG coordinate systems list one unit for all
// horizontal axes and reuse it for trailing ones by convention.
func (v *Verifier) CoordinateSystem(cs crs.CoordinateSystem, directions []crs.AxisDirection, axisUnits []units.Unit) error {
	if cs == nil {
		return nil
	}

	if dim := cs.Dimension(); dim != len(directions) {
		return failf("CoordinateSystem.Dimension()", "expected %d axes, got %d", len(directions), dim)
	}

	for i, dir := range directions {
		field := fmt.Sprintf("CoordinateSystem.Axis(%d)", i)

		ax := cs.Axis(i)
		if ax == nil {
			return failf(field, "axis is missing")
		}

		if ax.Direction != dir {
			return failf(field, "expected direction %q, got %q", dir, ax.Direction)
		}

		if len(axisUnits) == 0 {
			continue
		}

		want := axisUnits[min(i, len(axisUnits)-1)]
		if ax.Unit != want {
			return failf(field, "expected unit %s, got %s", want, ax.Unit)
		}
	}

	return nil
}

// Conversion checks the operation method and the defining parameters of a
// map projection conversion. Parameters are matched by name with the same
// flexibility as object names, converted into the expected unit and
// compared with the relative tolerance.
func (v *Verifier) Conversion(c crs.Conversion, method string, params []crs.Parameter) error {
	if c == nil {
		return nil
	}

	if method != "" {
		if err := naming.Matches(&method, naming.Opt(c.Method()), !v.CaseSensitive); err != nil {
			return &Failure{Kind: Assertion, Field: "Conversion.Method()", Message: err.Error(), Cause: err}
		}
	}

	actual := c.Parameters()

	for _, p := range params {
		field := fmt.Sprintf("Conversion.Parameters()[%q]", p.Name)

		found, ok := findParameter(actual, p.Name, !v.CaseSensitive)
		if !ok {
			return failf(field, "parameter not found")
		}

		val, err := v.convert(found.Value, found.Unit, p.Unit, field)
		if err != nil {
			return err
		}

		if !WithinTolerance(p.Value, val, RelativeTolerance(p.Value)) {
			return failf(field, "expected %v %s, got %v %s", p.Value, p.Unit, val, p.Unit)
		}
	}

	return nil
}

func findParameter(params []crs.Parameter, name string, ignoreCase bool) (crs.Parameter, bool) {
	for _, p := range params {
		if naming.Matches(&name, naming.Opt(p.Name), ignoreCase) == nil {
			return p, true
		}
	}

	return crs.Parameter{}, false
}

package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuznet/geoconform/pkg/crs"
	"github.com/akuznet/geoconform/pkg/units"
)

type fakeObject struct {
	name    string
	ids     []crs.Identifier
	aliases []string
}

func (o *fakeObject) Name() string { return o.name }
func (o *fakeObject) Identifiers() []crs.Identifier { return o.ids }
func (o *fakeObject) Aliases() []string { return o.aliases }

type fakeEllipsoid struct {
	fakeObject
	a, rf float64
	unit  *units.Unit
}

func (e *fakeEllipsoid) SemiMajorAxis() float64 { return e.a }
func (e *fakeEllipsoid) InverseFlattening() float64 { return e.rf }
func (e *fakeEllipsoid) AxisUnit() *units.Unit { return e.unit }
func (e *fakeEllipsoid) IvfDefinitive() bool { return true }

type fakeMeridian struct {
	fakeObject
	lon  float64
	unit *units.Unit
}

func (m *fakeMeridian) GreenwichLongitude() float64 { return m.lon }
func (m *fakeMeridian) AngularUnit() *units.Unit { return m.unit }

type fakeCS struct {
	fakeObject
	axes []crs.Axis
}

func (c *fakeCS) Dimension() int { return len(c.axes) }

func (c *fakeCS) Axis(i int) *crs.Axis {
	if i < 0 || i >= len(c.axes) {
		return nil
	}

	return &c.axes[i]
}

func wgs84() *fakeEllipsoid {
	u := units.Metre

	return &fakeEllipsoid{
		fakeObject: fakeObject{
			name: "WGS 84",
			ids:  []crs.Identifier{{CodeSpace: "EPSG", Code: "7030"}},
		},
		a:    6378137,
		rf:   298.257223563,
		unit: &u,
	}
}

func TestWithinToleranceBoundary(t *testing.T) {
	assert.True(t, WithinTolerance(1000.0000, 1000.00049, 0.0005))
	assert.False(t, WithinTolerance(1000.0000, 1000.00051, 0.0005))
	assert.True(t, WithinTolerance(-1, -1, 0))
}

func TestContainsCode(t *testing.T) {
	ids := []crs.Identifier{
		{CodeSpace: "EPSG", Code: "4326"},
		{CodeSpace: "OTHER", Code: "X"},
	}

	assert.NoError(t, ContainsCode("4326", ids))
	assert.NoError(t, ContainsCode("x", ids))

	err := ContainsCode("9999", ids)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), `"9999"`)
}

func TestEllipsoidFullPass(t *testing.T) {
	v := &Verifier{}

	require.NoError(t, v.Ellipsoid(wgs84(), "WGS 84", 6378137, 298.257223563, units.Metre))
	require.NoError(t, v.Identification(wgs84(), "WGS 84", "7030"))
}

func TestEllipsoidUnitConversion(t *testing.T) {
	v := &Verifier{}

	e := wgs84()
	u := units.USSurveyFoot
	e.unit = &u
	e.a = 6378137 / 0.30480060960121924

	assert.NoError(t, v.Ellipsoid(e, "WGS 84", 6378137, 298.257223563, units.Metre))
}

func TestEllipsoidSemiMajorMismatch(t *testing.T) {
	v := &Verifier{}

	e := wgs84()
	e.a = 6378137.001

	err := v.Ellipsoid(e, "WGS 84", 6378137, 298.257223563, units.Metre)
	require.Error(t, err)

	var f *Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, Assertion, f.Kind)
	assert.Equal(t, "Ellipsoid.SemiMajorAxis()", f.Field)
}

func TestEllipsoidFlatteningMismatch(t *testing.T) {
	v := &Verifier{}

	e := wgs84()
	e.rf = 298.257222101 // GRS 1980

	err := v.Ellipsoid(e, "WGS 84", 6378137, 298.257223563, units.Metre)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ellipsoid.InverseFlattening()")
}

func TestEllipsoidMissingAxisUnit(t *testing.T) {
	v := &Verifier{}

	e := wgs84()
	e.unit = nil

	err := v.Ellipsoid(e, "WGS 84", 6378137, 298.257223563, units.Metre)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ellipsoid.AxisUnit()")
}

func TestEllipsoidIncommensurableUnit(t *testing.T) {
	v := &Verifier{}

	e := wgs84()
	u := units.Degree
	e.unit = &u

	err := v.Ellipsoid(e, "WGS 84", 6378137, 298.257223563, units.Metre)
	require.Error(t, err)

	var f *Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, Conversion, f.Kind)
}

func TestEllipsoidNilIsNoop(t *testing.T) {
	v := &Verifier{}

	assert.NoError(t, v.Ellipsoid(nil, "WGS 84", 6378137, 298.257223563, units.Metre))
	assert.NoError(t, v.PrimeMeridian(nil, "Greenwich", 0, units.Degree))
	assert.NoError(t, v.CoordinateSystem(nil, nil, nil))
	assert.NoError(t, v.Identification(nil, "WGS 84", "7030"))
}

func TestSkipIdentification(t *testing.T) {
	v := &Verifier{SkipIdentification: true}

	e := wgs84()
	e.name = "World Geodetic System of 1984"

	assert.NoError(t, v.Ellipsoid(e, "WGS 84", 6378137, 298.257223563, units.Metre))
	// code membership still applies
	assert.Error(t, v.Identification(e, "WGS 84", "9999"))
}

func TestPrimeMeridianGradConversion(t *testing.T) {
	v := &Verifier{}

	u := units.Grad
	pm := &fakeMeridian{
		fakeObject: fakeObject{name: "Paris", ids: []crs.Identifier{{CodeSpace: "EPSG", Code: "8903"}}},
		lon:        2.5969213,
		unit:       &u,
	}

	// 2.5969213 grad expressed in grads
	require.NoError(t, v.PrimeMeridian(pm, "Paris", 2.5969213, units.Grad))
	// and in degrees
	require.NoError(t, v.PrimeMeridian(pm, "Paris", 2.33722917, units.Degree))

	err := v.PrimeMeridian(pm, "Paris", 2.34, units.Degree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PrimeMeridian.GreenwichLongitude()")
}

func TestCoordinateSystemUnitRepetition(t *testing.T) {
	v := &Verifier{}

	cs := &fakeCS{axes: []crs.Axis{
		{Abbrev: "Lat", Direction: crs.North, Unit: units.Degree},
		{Abbrev: "Lon", Direction: crs.East, Unit: units.Degree},
		{Abbrev: "h", Direction: crs.Up, Unit: units.Degree},
	}}

	dirs := []crs.AxisDirection{crs.North, crs.East, crs.Up}

	// two units for three axes: the second one repeats for the height axis
	assert.NoError(t, v.CoordinateSystem(cs, dirs, []units.Unit{units.Degree, units.Degree}))

	cs.axes[2].Unit = units.Metre
	err := v.CoordinateSystem(cs, dirs, []units.Unit{units.Degree, units.Degree})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Axis(2)")
}

func TestCoordinateSystemDimensionMismatch(t *testing.T) {
	v := &Verifier{}

	cs := &fakeCS{axes: []crs.Axis{
		{Abbrev: "E", Direction: crs.East, Unit: units.Metre},
		{Abbrev: "N", Direction: crs.North, Unit: units.Metre},
	}}

	err := v.CoordinateSystem(cs, []crs.AxisDirection{crs.East, crs.North, crs.Up}, []units.Unit{units.Metre})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dimension()")

	err = v.CoordinateSystem(cs, []crs.AxisDirection{crs.North, crs.East}, []units.Unit{units.Metre})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "direction")
}

func TestIdentificationNameMismatch(t *testing.T) {
	v := &Verifier{}

	err := v.Identification(wgs84(), "NAD83", "7030")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name()")

	// empty expected values skip both halves
	assert.NoError(t, v.Identification(wgs84(), "", ""))
}

func TestFailureTip(t *testing.T) {
	v := &Verifier{Tip: "set checks.identification=false to disable"}

	err := v.Identification(wgs84(), "NAD83", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checks.identification")
}

type fakeConversion struct {
	fakeObject
	method string
	params []crs.Parameter
}

func (c *fakeConversion) Method() string { return c.method }
func (c *fakeConversion) Parameters() []crs.Parameter { return c.params }

func TestConversionParameters(t *testing.T) {
	v := &Verifier{}

	c := &fakeConversion{
		fakeObject: fakeObject{name: "UTM zone 31N", ids: []crs.Identifier{{CodeSpace: "EPSG", Code: "16031"}}},
		method:     "Transverse Mercator",
		params: []crs.Parameter{
			{Name: "Latitude of natural origin", Value: 0, Unit: units.Degree},
			{Name: "Longitude of natural origin", Value: 3, Unit: units.Degree},
			{Name: "Scale factor at natural origin", Value: 0.9996, Unit: units.Unity},
			{Name: "False easting", Value: 500000, Unit: units.Metre},
			{Name: "False northing", Value: 0, Unit: units.Metre},
		},
	}

	expected := []crs.Parameter{
		{Name: "False easting", Value: 500, Unit: units.Kilometre},
		{Name: "scale factor at natural origin", Value: 0.9996, Unit: units.Unity},
	}

	require.NoError(t, v.Conversion(c, "Transverse Mercator", expected))

	err := v.Conversion(c, "Lambert Conic Conformal (2SP)", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Conversion.Method()")

	err = v.Conversion(c, "", []crs.Parameter{{Name: "Latitude of false origin", Value: 0, Unit: units.Degree}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

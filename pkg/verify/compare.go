package verify

import (
	"math"
	"strings"

	"github.com/akuznet/geoconform/pkg/crs"
)

// Tolerances applied to reference comparisons. Linear and angular values
// are converted into the unit of the expected value before these apply.
const (
	// ToleranceRelative scales with the magnitude of the value under test.
	ToleranceRelative = 1e-10
	// LinearTolerance is half a millimetre, in metres.
	LinearTolerance = 0.5e-3
	// AngularTolerance is half of 1e-7 degree, in degrees. On the WGS 84
	// ellipsoid this is about 0.5 mm on the ground.
	AngularTolerance = 0.5e-7
	// FlatteningTolerance bounds the dimensionless inverse flattening.
	FlatteningTolerance = 0.5e-9
	// AngularEpsilon is the fixed absolute epsilon for angular equality
	// checks that are not tied to a magnitude.
	AngularEpsilon = 1e-7
)

// WithinTolerance reports whether actual is within tol of expected.
func WithinTolerance(expected, actual, tol float64) bool {
	return math.Abs(expected-actual) <= math.Abs(tol)
}

// RelativeTolerance returns the tolerance for a generic numeric check on a
// value of the given magnitude.
func RelativeTolerance(magnitude float64) float64 {
	tol := math.Abs(magnitude) * ToleranceRelative
	if tol == 0 {
		return ToleranceRelative
	}

	return tol
}

// ContainsCode reports whether an identifier with the given code is
// present in ids. The code space is informational only and the comparison
// is case-insensitive, so candidates carrying extra identifiers from other
// authorities still pass.
func ContainsCode(code string, ids []crs.Identifier) error {
	for _, id := range ids {
		if strings.EqualFold(id.Code, code) {
			return nil
		}
	}

	return failf("Identifiers()", "identifier %q not found in %v", code, ids)
}

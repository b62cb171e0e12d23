package session

import (
	"strconv"

	"github.com/akuznet/geoconform/internal/epsg"
	"github.com/akuznet/geoconform/pkg/crs"
	"github.com/akuznet/geoconform/pkg/verify"
)

// Check is one reference record bound to its verification routine.
type Check struct {
	Code int
	Kind string
	Name string

	run func(s *Session) error
}

// DefaultSuite builds one check per record of the built-in EPSG dataset.
func DefaultSuite() []Check {
	var checks []Check

	checks = append(checks, EllipsoidChecks()...)
	checks = append(checks, PrimeMeridianChecks()...)
	checks = append(checks, CoordinateSystemChecks()...)
	checks = append(checks, DatumChecks()...)
	checks = append(checks, GeographicCRSChecks()...)
	checks = append(checks, ConversionChecks()...)

	return checks
}

func EllipsoidChecks() []Check {
	checks := make([]Check, 0, len(epsg.EllipsoidRecords))

	for _, rec := range epsg.EllipsoidRecords {
		rec := rec

		checks = append(checks, Check{
			Code: rec.Code,
			Kind: "ellipsoid",
			Name: rec.Name,
			run: func(s *Session) error {
				e, err := s.ellipsoid(rec.Code)
				if err != nil {
					return err
				}

				if err := s.verifier.Ellipsoid(e, rec.Name, rec.SemiMajor, rec.InverseFlattening, rec.Unit); err != nil {
					return err
				}

				return s.verifier.Identification(e, "", strconv.Itoa(rec.Code))
			},
		})
	}

	return checks
}

func PrimeMeridianChecks() []Check {
	checks := make([]Check, 0, len(epsg.PrimeMeridianRecords))

	for _, rec := range epsg.PrimeMeridianRecords {
		rec := rec

		checks = append(checks, Check{
			Code: rec.Code,
			Kind: "prime_meridian",
			Name: rec.Name,
			run: func(s *Session) error {
				pm, err := s.primeMeridian(rec.Code)
				if err != nil {
					return err
				}

				if err := s.verifier.PrimeMeridian(pm, rec.Name, rec.Longitude, rec.Unit); err != nil {
					return err
				}

				return s.verifier.Identification(pm, "", strconv.Itoa(rec.Code))
			},
		})
	}

	return checks
}

func CoordinateSystemChecks() []Check {
	checks := make([]Check, 0, len(epsg.CoordinateSystemRecords))

	for _, rec := range epsg.CoordinateSystemRecords {
		rec := rec

		checks = append(checks, Check{
			Code: rec.Code,
			Kind: "cs",
			Name: rec.Name,
			run: func(s *Session) error {
				cs, err := s.coordinateSystem(rec.Code)
				if err != nil {
					return err
				}

				if err := s.verifier.CoordinateSystem(cs, rec.Directions, rec.Units); err != nil {
					return err
				}

				return s.verifier.Identification(cs, "", strconv.Itoa(rec.Code))
			},
		})
	}

	return checks
}

// DatumChecks verifies each datum and the components it aggregates. The
// component records are resolved from the dataset so a datum built on a
// wrong ellipsoid fails the datum check, not only the ellipsoid one.
func DatumChecks() []Check {
	checks := make([]Check, 0, len(epsg.DatumRecords))

	for _, rec := range epsg.DatumRecords {
		rec := rec

		checks = append(checks, Check{
			Code: rec.Code,
			Kind: "datum",
			Name: rec.Name,
			run: func(s *Session) error {
				d, err := s.datum(rec.Code)
				if err != nil {
					return err
				}

				if err := s.verifier.Identification(d, rec.Name, strconv.Itoa(rec.Code)); err != nil {
					return err
				}

				return s.verifyDatumComponents(d, rec)
			},
		})
	}

	return checks
}

func (s *Session) verifyDatumComponents(d crs.GeodeticDatum, rec epsg.DatumRecord) error {
	if e, ok := epsg.FindEllipsoid(rec.EllipsoidCode); ok {
		if err := s.verifier.Ellipsoid(d.Ellipsoid(), e.Name, e.SemiMajor, e.InverseFlattening, e.Unit); err != nil {
			return err
		}
	}

	if pm, ok := epsg.FindPrimeMeridian(rec.MeridianCode); ok {
		if err := s.verifier.PrimeMeridian(d.PrimeMeridian(), pm.Name, pm.Longitude, pm.Unit); err != nil {
			return err
		}
	}

	return nil
}

func GeographicCRSChecks() []Check {
	checks := make([]Check, 0, len(epsg.GeographicCRSRecords))

	for _, rec := range epsg.GeographicCRSRecords {
		rec := rec

		checks = append(checks, Check{
			Code: rec.Code,
			Kind: "crs",
			Name: rec.Name,
			run: func(s *Session) error {
				c, err := s.geographicCRS(rec.Code)
				if err != nil {
					return err
				}

				if err := s.verifier.Identification(c, rec.Name, strconv.Itoa(rec.Code)); err != nil {
					return err
				}

				if d, ok := epsg.FindDatum(rec.DatumCode); ok {
					if err := s.verifyDatumComponents(c.Datum(), d); err != nil {
						return err
					}
				}

				if cs, ok := epsg.FindCoordinateSystem(rec.CSCode); ok {
					if err := s.verifier.CoordinateSystem(c.CoordinateSystem(), cs.Directions, cs.Units); err != nil {
						return err
					}
				}

				return nil
			},
		})
	}

	return checks
}

func ConversionChecks() []Check {
	checks := make([]Check, 0, len(epsg.ConversionRecords))

	for _, rec := range epsg.ConversionRecords {
		rec := rec

		checks = append(checks, Check{
			Code: rec.Code,
			Kind: "conversion",
			Name: rec.Name,
			run: func(s *Session) error {
				c, err := s.conversion(rec.Code)
				if err != nil {
					return err
				}

				if err := s.verifier.Identification(c, rec.Name, strconv.Itoa(rec.Code)); err != nil {
					return err
				}

				return s.verifier.Conversion(c, rec.Method, rec.Parameters)
			},
		})
	}

	return checks
}

// FilterKinds keeps only checks of the listed kinds. An empty list keeps
// everything.
func FilterKinds(checks []Check, kinds []string) []Check {
	if len(kinds) == 0 {
		return checks
	}

	keep := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		keep[k] = true
	}

	out := make([]Check, 0, len(checks))

	for _, c := range checks {
		if keep[c.Kind] {
			out = append(out, c)
		}
	}

	return out
}

// NewVerifier builds the suite verifier. Objects are fetched by authority
// code, so name checks on top-level identification are kept but the
// verifier can be told to skip them for candidates with divergent naming.
func NewVerifier(skipIdentification, caseSensitive bool) *verify.Verifier {
	return &verify.Verifier{
		SkipIdentification: skipIdentification,
		CaseSensitive:      caseSensitive,
		Tip:                "set checks.skip_identification=true to relax name checks",
	}
}

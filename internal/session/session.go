// Package session drives one conformance run: it resolves candidate
// objects through a factory, caches them per code, feeds them to the
// verifiers and classifies every outcome as passed, failed or skipped.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/akuznet/geoconform/internal/cache"
	"github.com/akuznet/geoconform/internal/epsg"
	"github.com/akuznet/geoconform/internal/report"
	"github.com/akuznet/geoconform/pkg/crs"
	"github.com/akuznet/geoconform/pkg/verify"
)

type Session struct {
	factory  epsg.Factory
	verifier *verify.Verifier
	logger   *slog.Logger

	objects *cache.Cache[crs.IdentifiedObject]
}

func New(f epsg.Factory, v *verify.Verifier) *Session {
	s := &Session{
		factory:  f,
		verifier: v,
		logger:   slog.Default().With(slog.String("logger", "session")),
	}

	s.objects = cache.New(s.load)

	return s
}

// Run executes every check and returns the aggregated summary. A check
// whose factory call reports an unsupported code is skipped, any other
// error fails it.
func (s *Session) Run(checks []Check) *report.Summary {
	sum := report.NewSummary()

	for _, c := range checks {
		res := report.Result{Code: c.Code, Kind: c.Kind, Name: c.Name}

		err := c.run(s)

		switch {
		case err == nil:
			res.Status = report.StatusPassed
		case errors.Is(err, epsg.ErrUnsupportedCode):
			res.Status = report.StatusSkipped
			res.Detail = err.Error()

			s.logger.Debug(fmt.Sprintf("EPSG:%d skipped: %s", c.Code, err.Error()))
		default:
			res.Status = report.StatusFailed
			res.Detail = err.Error()

			s.logger.Error(fmt.Sprintf("EPSG:%d %s: %s", c.Code, c.Name, err.Error()))
		}

		sum.Add(res)
	}

	sum.Done()

	return sum
}

func (s *Session) load(key string) (crs.IdentifiedObject, error) {
	var (
		kind string
		code int
	)

	if _, err := fmt.Sscanf(key, "%s %d", &kind, &code); err != nil {
		return nil, fmt.Errorf("bad cache key %q: %w", key, err)
	}

	switch kind {
	case "ellipsoid":
		return s.factory.CreateEllipsoid(code)
	case "prime_meridian":
		return s.factory.CreatePrimeMeridian(code)
	case "cs":
		return s.factory.CreateCoordinateSystem(code)
	case "datum":
		return s.factory.CreateDatum(code)
	case "crs":
		return s.factory.CreateGeographicCRS(code)
	case "conversion":
		return s.factory.CreateConversion(code)
	default:
		return nil, fmt.Errorf("unknown object kind %q", kind)
	}
}

func (s *Session) object(kind string, code int) (crs.IdentifiedObject, error) {
	return s.objects.Load(fmt.Sprintf("%s %d", kind, code))
}

func (s *Session) ellipsoid(code int) (crs.Ellipsoid, error) {
	o, err := s.object("ellipsoid", code)
	if err != nil {
		return nil, err
	}

	return o.(crs.Ellipsoid), nil
}

func (s *Session) primeMeridian(code int) (crs.PrimeMeridian, error) {
	o, err := s.object("prime_meridian", code)
	if err != nil {
		return nil, err
	}

	return o.(crs.PrimeMeridian), nil
}

func (s *Session) coordinateSystem(code int) (crs.CoordinateSystem, error) {
	o, err := s.object("cs", code)
	if err != nil {
		return nil, err
	}

	return o.(crs.CoordinateSystem), nil
}

func (s *Session) datum(code int) (crs.GeodeticDatum, error) {
	o, err := s.object("datum", code)
	if err != nil {
		return nil, err
	}

	return o.(crs.GeodeticDatum), nil
}

func (s *Session) geographicCRS(code int) (crs.GeographicCRS, error) {
	o, err := s.object("crs", code)
	if err != nil {
		return nil, err
	}

	return o.(crs.GeographicCRS), nil
}

func (s *Session) conversion(code int) (crs.Conversion, error) {
	o, err := s.object("conversion", code)
	if err != nil {
		return nil, err
	}

	return o.(crs.Conversion), nil
}

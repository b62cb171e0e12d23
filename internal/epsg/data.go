package epsg

import (
	"github.com/akuznet/geoconform/pkg/crs"
	"github.com/akuznet/geoconform/pkg/units"
)

// Reference records, one per supported EPSG code. Values are taken from
// the EPSG geodetic parameter dataset.

type EllipsoidRecord struct {
	Code              int
	Name              string
	Aliases           []string
	SemiMajor         float64
	InverseFlattening float64
	Unit              units.Unit
	IvfDefinitive     bool
}

type PrimeMeridianRecord struct {
	Code      int
	Name      string
	Longitude float64
	Unit      units.Unit
}

type CoordinateSystemRecord struct {
	Code       int
	Name       string
	Directions []crs.AxisDirection
	Units      []units.Unit
	Abbrevs    []string
}

type DatumRecord struct {
	Code          int
	Name          string
	Aliases       []string
	EllipsoidCode int
	MeridianCode  int
}

type GeographicCRSRecord struct {
	Code      int
	Name      string
	Aliases   []string
	DatumCode int
	CSCode    int
}

type ConversionRecord struct {
	Code       int
	Name       string
	Method     string
	Parameters []crs.Parameter
}

var EllipsoidRecords = []EllipsoidRecord{
	{Code: 7001, Name: "Airy 1830", SemiMajor: 6377563.396, InverseFlattening: 299.3249646, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7002, Name: "Airy Modified 1849", SemiMajor: 6377340.189, InverseFlattening: 299.3249646, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7003, Name: "Australian National Spheroid", SemiMajor: 6378160, InverseFlattening: 298.25, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7004, Name: "Bessel 1841", SemiMajor: 6377397.155, InverseFlattening: 299.1528128, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7008, Name: "Clarke 1866", SemiMajor: 6378206.4, InverseFlattening: 294.978698213898, Unit: units.Metre},
	{Code: 7011, Name: "Clarke 1880 (IGN)", SemiMajor: 6378249.2, InverseFlattening: 293.4660212936269, Unit: units.Metre},
	{Code: 7012, Name: "Clarke 1880 (RGS)", Aliases: []string{"Clarke Modified 1880"}, SemiMajor: 6378249.145, InverseFlattening: 293.465, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7015, Name: "Everest 1830 (1937 Adjustment)", SemiMajor: 6377276.345, InverseFlattening: 300.8017, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7019, Name: "GRS 1980", Aliases: []string{"International 1979"}, SemiMajor: 6378137, InverseFlattening: 298.257222101, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7022, Name: "International 1924", Aliases: []string{"Hayford 1909"}, SemiMajor: 6378388, InverseFlattening: 297, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7024, Name: "Krassowsky 1940", SemiMajor: 6378245, InverseFlattening: 298.3, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7030, Name: "WGS 84", Aliases: []string{"World Geodetic System 1984"}, SemiMajor: 6378137, InverseFlattening: 298.257223563, Unit: units.Metre, IvfDefinitive: true},
	{Code: 7043, Name: "WGS 72", SemiMajor: 6378135, InverseFlattening: 298.26, Unit: units.Metre, IvfDefinitive: true},
}

var PrimeMeridianRecords = []PrimeMeridianRecord{
	{Code: 8901, Name: "Greenwich", Longitude: 0, Unit: units.Degree},
	{Code: 8902, Name: "Lisbon", Longitude: -9.131906111111112, Unit: units.Degree},
	{Code: 8903, Name: "Paris", Longitude: 2.5969213, Unit: units.Grad},
	{Code: 8904, Name: "Bogota", Longitude: -74.08091666666667, Unit: units.Degree},
	{Code: 8906, Name: "Rome", Longitude: 12.452333333333334, Unit: units.Degree},
	{Code: 8907, Name: "Bern", Longitude: 7.439583333333333, Unit: units.Degree},
	{Code: 8908, Name: "Jakarta", Longitude: 106.80771944444444, Unit: units.Degree},
	{Code: 8912, Name: "Athens", Longitude: 23.7163375, Unit: units.Degree},
}

var CoordinateSystemRecords = []CoordinateSystemRecord{
	{
		Code:       4400,
		Name:       "Cartesian 2D CS (E,N)",
		Directions: []crs.AxisDirection{crs.East, crs.North},
		// one unit for both axes: the trailing axis reuses it
		Units:   []units.Unit{units.Metre},
		Abbrevs: []string{"E", "N"},
	},
	{
		Code:       4500,
		Name:       "Cartesian 2D CS (N,E)",
		Directions: []crs.AxisDirection{crs.North, crs.East},
		Units:      []units.Unit{units.Metre},
		Abbrevs:    []string{"N", "E"},
	},
	{
		Code:       6403,
		Name:       "Ellipsoidal 2D CS (grads)",
		Directions: []crs.AxisDirection{crs.North, crs.East},
		Units:      []units.Unit{units.Grad},
		Abbrevs:    []string{"Lat", "Lon"},
	},
	{
		Code:       6422,
		Name:       "Ellipsoidal 2D CS",
		Directions: []crs.AxisDirection{crs.North, crs.East},
		Units:      []units.Unit{units.Degree},
		Abbrevs:    []string{"Lat", "Lon"},
	},
	{
		Code:       6423,
		Name:       "Ellipsoidal 3D CS",
		Directions: []crs.AxisDirection{crs.North, crs.East, crs.Up},
		Units:      []units.Unit{units.Degree, units.Degree, units.Metre},
		Abbrevs:    []string{"Lat", "Lon", "h"},
	},
}

var DatumRecords = []DatumRecord{
	{Code: 6258, Name: "European Terrestrial Reference System 1989", Aliases: []string{"ETRS89"}, EllipsoidCode: 7019, MeridianCode: 8901},
	{Code: 6267, Name: "North American Datum 1927", Aliases: []string{"NAD27"}, EllipsoidCode: 7008, MeridianCode: 8901},
	{Code: 6269, Name: "North American Datum 1983", Aliases: []string{"NAD83"}, EllipsoidCode: 7019, MeridianCode: 8901},
	{Code: 6277, Name: "OSGB 1936", EllipsoidCode: 7001, MeridianCode: 8901},
	{Code: 6301, Name: "Tokyo", EllipsoidCode: 7004, MeridianCode: 8901},
	{Code: 6326, Name: "World Geodetic System 1984", Aliases: []string{"WGS 84"}, EllipsoidCode: 7030, MeridianCode: 8901},
	{Code: 6807, Name: "Nouvelle Triangulation Francaise (Paris)", Aliases: []string{"NTF (Paris)"}, EllipsoidCode: 7011, MeridianCode: 8903},
}

var GeographicCRSRecords = []GeographicCRSRecord{
	{Code: 4258, Name: "ETRS89", DatumCode: 6258, CSCode: 6422},
	{Code: 4267, Name: "NAD27", DatumCode: 6267, CSCode: 6422},
	{Code: 4269, Name: "NAD83", DatumCode: 6269, CSCode: 6422},
	{Code: 4277, Name: "OSGB 1936", DatumCode: 6277, CSCode: 6422},
	{Code: 4301, Name: "Tokyo", DatumCode: 6301, CSCode: 6422},
	{Code: 4326, Name: "WGS 84", DatumCode: 6326, CSCode: 6422},
	{Code: 4807, Name: "NTF (Paris)", DatumCode: 6807, CSCode: 6403},
	{Code: 4979, Name: "WGS 84", DatumCode: 6326, CSCode: 6423},
}

var ConversionRecords = []ConversionRecord{
	{
		Code:   16031,
		Name:   "UTM zone 31N",
		Method: "Transverse Mercator",
		Parameters: []crs.Parameter{
			{Name: "Latitude of natural origin", Value: 0, Unit: units.Degree},
			{Name: "Longitude of natural origin", Value: 3, Unit: units.Degree},
			{Name: "Scale factor at natural origin", Value: 0.9996, Unit: units.Unity},
			{Name: "False easting", Value: 500000, Unit: units.Metre},
			{Name: "False northing", Value: 0, Unit: units.Metre},
		},
	},
	{
		Code:   19916,
		Name:   "British National Grid",
		Method: "Transverse Mercator",
		Parameters: []crs.Parameter{
			{Name: "Latitude of natural origin", Value: 49, Unit: units.Degree},
			{Name: "Longitude of natural origin", Value: -2, Unit: units.Degree},
			{Name: "Scale factor at natural origin", Value: 0.9996012717, Unit: units.Unity},
			{Name: "False easting", Value: 400000, Unit: units.Metre},
			{Name: "False northing", Value: -100000, Unit: units.Metre},
		},
	},
	{
		Code:   19914,
		Name:   "RD New",
		Method: "Oblique Stereographic",
		Parameters: []crs.Parameter{
			{Name: "Latitude of natural origin", Value: 52.15616055555556, Unit: units.Degree},
			{Name: "Longitude of natural origin", Value: 5.38763888888889, Unit: units.Degree},
			{Name: "Scale factor at natural origin", Value: 0.9999079, Unit: units.Unity},
			{Name: "False easting", Value: 155000, Unit: units.Metre},
			{Name: "False northing", Value: 463000, Unit: units.Metre},
		},
	},
}

func FindEllipsoid(code int) (EllipsoidRecord, bool) {
	for _, r := range EllipsoidRecords {
		if r.Code == code {
			return r, true
		}
	}

	return EllipsoidRecord{}, false
}

func FindPrimeMeridian(code int) (PrimeMeridianRecord, bool) {
	for _, r := range PrimeMeridianRecords {
		if r.Code == code {
			return r, true
		}
	}

	return PrimeMeridianRecord{}, false
}

func FindCoordinateSystem(code int) (CoordinateSystemRecord, bool) {
	for _, r := range CoordinateSystemRecords {
		if r.Code == code {
			return r, true
		}
	}

	return CoordinateSystemRecord{}, false
}

func FindDatum(code int) (DatumRecord, bool) {
	for _, r := range DatumRecords {
		if r.Code == code {
			return r, true
		}
	}

	return DatumRecord{}, false
}

func FindGeographicCRS(code int) (GeographicCRSRecord, bool) {
	for _, r := range GeographicCRSRecords {
		if r.Code == code {
			return r, true
		}
	}

	return GeographicCRSRecord{}, false
}

func FindConversion(code int) (ConversionRecord, bool) {
	for _, r := range ConversionRecords {
		if r.Code == code {
			return r, true
		}
	}

	return ConversionRecord{}, false
}

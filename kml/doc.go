// Package kml renders decoded SITAC figures as a KML 2.2 document.
//
// Geometry is computed on orb types with X = longitude and Y = latitude, the
// coordinate order KML itself uses. Distances given in meters are turned into
// degrees with a flat approximation (MetersToDegrees); no geodesic correction
// is applied, so shapes far from the equator are stretched east-west.
//
// Usage:
//
//	r := kml.NewRenderer(logger)
//	out, err := r.Render(figures, "SITAC_20240101_120000")
//	if err != nil {
//	    return err
//	}
//	return kml.WriteFile("out/sitac.kml", out)
package kml

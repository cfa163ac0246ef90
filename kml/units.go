package kml

// MetersPerDegree is the flat-earth length of one degree used for every
// meter/degree conversion.
const MetersPerDegree = 111111.0

// MetersToDegrees converts a linear offset in meters to degrees. It is linear
// and must be applied once, to meter quantities only.
func MetersToDegrees(meters float64) float64 {
	return meters / MetersPerDegree
}

package kml

import _ "embed"

// DefaultStyles is the static style block merged into every document header.
// It defines the style ids referenced by the Style* constants.
//
//go:embed styles_sitac.xml
var DefaultStyles string

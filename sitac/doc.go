// Package sitac reads SITAC tactical-map documents and decodes their figures.
//
// A SITAC document is loosely structured XML: one <figures> container holding
// <figure> fragments, each with a <figureType>, a <name> and type-specific
// tags (points, dimensions, bullseye rings). The package does not use an XML
// decoder. It scans the text with a dialect-specific table of patterns, the
// same way the producing tools' exports are read in the field, so partially
// broken documents still yield every figure that can be recovered.
//
// Processing happens in three layers:
//
//   - Semantics: the ordered pattern table for a dialect ("ntk" today).
//   - Lexer: normalizes whitespace and produces one Token per table rule,
//     holding every match of that rule in the document.
//   - Parser: splits the figure token into fragments and decodes each one
//     into a Figure (Point, Line, Polygon, Rectangle, Bullseye, Ellipse,
//     Corridor). Fragments that fail to decode are dropped and reported as
//     Diagnostics.
//
// Usage:
//
//	figs, diags, err := sitac.Parse(src, sitac.DialectNTK, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range diags {
//	    fmt.Println(d)
//	}
//	fmt.Println(len(figs), "figures")
package sitac

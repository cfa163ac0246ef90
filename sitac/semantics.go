package sitac

import (
	"regexp"
	"strings"
)

// Dialects understood by LookupSemantics.
const (
	DialectNTK     = "ntk"
	DialectMelissa = "melissa"
)

// Tag names one semantic element of a SITAC document.
type Tag string

const (
	TagBody      Tag = "body"
	TagFigure    Tag = "figure"
	TagType      Tag = "figType"
	TagName      Tag = "figName"
	TagHoriz     Tag = "figHoriz"
	TagVert      Tag = "figVert"
	TagPoints    Tag = "figPoints"
	TagPoint     Tag = "figPoint"
	TagLatitude  Tag = "ptLatitude"
	TagLongitude Tag = "ptLongitude"
	TagBullseye  Tag = "bullseye"
	TagRings     Tag = "bullsRings"
	TagRingDist  Tag = "bullsDist"
)

// Rule binds a tag to the pattern that extracts it. The first capture group
// of Pattern is the tag's value.
type Rule struct {
	Tag     Tag
	Element string // XML element the pattern captures, e.g. "figureType"
	Pattern *regexp.Regexp
}

// Semantics is the ordered pattern table of one dialect.
type Semantics struct {
	Dialect string
	Rules   []Rule
}

// ntkPatterns is the NTK table. Order matters: the lexer emits tokens in this
// order and the parser relies on tag names, never on positions.
var ntkPatterns = []struct {
	tag     Tag
	pattern string
}{
	{TagBody, `(?s)<figures>(.*)</figures>`},
	{TagFigure, `(?s)<figure(?:\s(?:[^>]*[^/>])?)?>(.*?)</figure>`},
	{TagType, `<figureType>(.*?)</figureType>`},
	{TagName, `<name>(.*?)</name>`},
	{TagHoriz, `<horizontal>(.*?)</horizontal>`},
	{TagVert, `<vertical>(.*?)</vertical>`},
	{TagPoints, `(?s)<points>(.*)</points>`},
	{TagPoint, `(?s)<point>(.*?)</point>`},
	{TagLatitude, `<latitude>(.*?)</latitude>`},
	{TagLongitude, `<longitude>(.*?)</longitude>`},
	{TagBullseye, `(?s)<bullseye>(.*?)</bullseye>`},
	{TagRings, `<numberOfRings>(.*?)</numberOfRings>`},
	{TagRingDist, `<distanceBetweenRing>(.*?)</distanceBetweenRing>`},
}

var elementRE = regexp.MustCompile(`<([A-Za-z][A-Za-z0-9]*)`)

var ntkSemantics = buildSemantics(DialectNTK)

func buildSemantics(dialect string) *Semantics {
	s := &Semantics{Dialect: dialect}
	for _, p := range ntkPatterns {
		var element string
		if m := elementRE.FindStringSubmatch(p.pattern); m != nil {
			element = m[1]
		}
		s.Rules = append(s.Rules, Rule{
			Tag:     p.tag,
			Element: element,
			Pattern: regexp.MustCompile(p.pattern),
		})
	}
	return s
}

// LookupSemantics returns the pattern table for dialect. Unknown dialects,
// and the Melissa dialect which has no defined tag set yet, yield an empty
// table together with an *UnsupportedDialectError.
func LookupSemantics(dialect string) (*Semantics, error) {
	d := strings.ToLower(strings.TrimSpace(dialect))
	if d == DialectNTK {
		return ntkSemantics, nil
	}
	return &Semantics{Dialect: d}, &UnsupportedDialectError{Dialect: d}
}

// Empty reports whether the table has no rules.
func (s *Semantics) Empty() bool {
	return s == nil || len(s.Rules) == 0
}

// Rule looks up the rule for tag.
func (s *Semantics) Rule(tag Tag) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	for _, r := range s.Rules {
		if r.Tag == tag {
			return r, true
		}
	}
	return Rule{}, false
}

// Pattern returns the pattern for tag, or nil.
func (s *Semantics) Pattern(tag Tag) *regexp.Regexp {
	r, ok := s.Rule(tag)
	if !ok {
		return nil
	}
	return r.Pattern
}

// Element returns the XML element name matched by tag's rule. Tags without a
// rule map to their own name.
func (s *Semantics) Element(tag Tag) string {
	if r, ok := s.Rule(tag); ok && r.Element != "" {
		return r.Element
	}
	return string(tag)
}

// Elements returns the tag to XML element mapping.
func (s *Semantics) Elements() map[Tag]string {
	if s == nil {
		return nil
	}
	m := make(map[Tag]string, len(s.Rules))
	for _, r := range s.Rules {
		m[r.Tag] = r.Element
	}
	return m
}

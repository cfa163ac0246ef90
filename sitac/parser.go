package sitac

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Default names given to figures whose fragment has no <name>.
const (
	DefaultPointName     = "Pt"
	DefaultLineName      = "Ln"
	DefaultPolygonName   = "Pg"
	DefaultBullseyeName  = "Bs"
	DefaultEllipseName   = "El"
	DefaultRectangleName = "Rt"
	DefaultCorridorName  = "Cr"
)

// Attributes of an opening <figure> tag, used when the matching child
// element is absent.
var (
	typeAttrRE = regexp.MustCompile(`^<figure\s[^>]*\btype\s*=\s*"([^"]*)"`)
	nameAttrRE = regexp.MustCompile(`^<figure\s[^>]*\bname\s*=\s*"([^"]*)"`)
)

// Parse tokenizes src with the dialect's table and decodes every figure.
// The returned error is the dialect error; fragment failures are reported as
// diagnostics only.
func Parse(src []byte, dialect string, logger *slog.Logger) ([]Figure, []Diagnostic, error) {
	lex := NewLexer(src, dialect, logger)
	p := NewParser(lex.Tokenize(), dialect, logger)
	figs := p.ParseFigures()
	return figs, p.Diagnostics(), lex.Err()
}

// Parser decodes the figure token produced by a Lexer into Figures.
type Parser struct {
	tokens      []Token
	sem         *Semantics
	err         error
	logger      *slog.Logger
	diagnostics []Diagnostic
}

// NewParser creates a Parser over tokens using the dialect's semantics table.
func NewParser(tokens []Token, dialect string, logger *slog.Logger) *Parser {
	logger = componentLogger(logger, "parser")
	sem, err := LookupSemantics(dialect)
	if err != nil {
		logger.Error("cannot build parser", "dialect", dialect, "error", err)
	}
	return &Parser{tokens: tokens, sem: sem, err: err, logger: logger}
}

// Err returns the dialect error, if any.
func (p *Parser) Err() error { return p.err }

// Diagnostics returns the findings of the last ParseFigures call.
func (p *Parser) Diagnostics() []Diagnostic { return p.diagnostics }

// Name returns the first <name> found in the document, or "" if none.
func (p *Parser) Name() string {
	tok, ok := p.token(TagName)
	if !ok {
		return ""
	}
	values := tok.Values()
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func (p *Parser) token(tag Tag) (Token, bool) {
	kind := KindOf(tag)
	for _, tok := range p.tokens {
		if tok.Is(kind) {
			return tok, true
		}
	}
	return Token{}, false
}

// ParseFigures decodes every figure fragment in document order. Fragments
// that fail to decode are dropped and recorded in Diagnostics.
func (p *Parser) ParseFigures() []Figure {
	p.diagnostics = nil
	if p.sem.Empty() {
		return nil
	}

	tok, ok := p.token(TagFigure)
	if !ok {
		p.logger.Warn("no figure token")
		return nil
	}

	figures := make([]Figure, 0, len(tok.Matches))
	for i, match := range tok.Matches {
		fig, err := p.parseFigure(i, match)
		if err != nil {
			p.drop(i, err)
			continue
		}
		figures = append(figures, fig)
	}
	p.logger.Info("parsed figures", "figures", len(figures), "dropped", len(tok.Matches)-len(figures))
	return figures
}

func (p *Parser) drop(index int, err error) {
	d := Diagnostic{
		Rule:     "figure_decode",
		Severity: Error,
		Message:  err.Error(),
		Index:    index,
		Err:      err,
	}
	var fe *FigureError
	if errors.As(err, &fe) {
		d.Figure = fe.Name
	}
	p.diagnostics = append(p.diagnostics, d)
	p.logger.Error("ignoring figure", "index", index, "figure", d.Figure, "error", err)
}

func (p *Parser) parseFigure(index int, match []string) (fig Figure, err error) {
	var frag string
	if len(match) > 1 {
		frag = match[1]
	}

	name, hasName := p.field(TagName, frag)
	if !hasName && len(match) > 0 {
		name, hasName = attribute(nameAttrRE, match[0])
	}
	figType, hasType := p.field(TagType, frag)
	if !hasType && len(match) > 0 {
		figType, hasType = attribute(typeAttrRE, match[0])
	}
	figType = strings.ToLower(figType)

	wrap := func(cause error) error {
		fe := &FigureError{Index: index, Type: figType, Name: name}
		fe.Message = cause.Error()
		fe.Cause = cause
		var ve *ValueError
		if errors.As(cause, &ve) {
			fe.Pos = ve.Pos
		}
		return fe
	}

	if !hasType {
		return nil, wrap(p.missing(TagType))
	}

	p.logger.Debug("parsing figure", "name", name, "type", figType)

	switch FigureKind(figType) {
	case KindPoint:
		fig, err = p.decodePoint(frag, orDefault(name, hasName, DefaultPointName))
	case KindLine:
		var points []Point
		points, err = p.decodePoints(frag)
		if err == nil {
			fig = NewLine(orDefault(name, hasName, DefaultLineName), points)
		}
	case KindPolygon:
		var points []Point
		points, err = p.decodePoints(frag)
		if err == nil {
			fig = NewPolygon(orDefault(name, hasName, DefaultPolygonName), points)
		}
	case KindBullseye:
		fig, err = p.decodeBullseye(frag, orDefault(name, hasName, DefaultBullseyeName))
	case KindEllipse:
		fig, err = p.decodeEllipse(frag, orDefault(name, hasName, DefaultEllipseName))
	case KindRectangle:
		fig, err = p.decodeRectangle(frag, orDefault(name, hasName, DefaultRectangleName))
	case KindCorridor:
		fig, err = p.decodeCorridor(frag, orDefault(name, hasName, DefaultCorridorName))
	default:
		err = fmt.Errorf("%w %q", ErrUnknownFigureType, figType)
	}
	if err != nil {
		return nil, wrap(err)
	}
	return fig, nil
}

// attribute returns the trimmed, non-empty value captured by re in the
// opening tag of element.
func attribute(re *regexp.Regexp, element string) (string, bool) {
	m := re.FindStringSubmatch(element)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	return v, v != ""
}

func orDefault(name string, ok bool, def string) string {
	if !ok {
		return def
	}
	return name
}

// field returns the trimmed first capture of tag's pattern in text.
func (p *Parser) field(tag Tag, text string) (string, bool) {
	re := p.sem.Pattern(tag)
	if re == nil {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil || len(m) < 2 {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// fields returns the first capture of every match of tag's pattern in text.
func (p *Parser) fields(tag Tag, text string) []string {
	re := p.sem.Pattern(tag)
	if re == nil {
		return nil
	}
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if len(m) > 1 {
			out = append(out, m[1])
		}
	}
	return out
}

func (p *Parser) missing(tag Tag) error {
	return fmt.Errorf("%w <%s>", ErrMissingTag, p.sem.Element(tag))
}

func (p *Parser) number(tag Tag, text string) (float64, error) {
	raw, ok := p.field(tag, text)
	if !ok {
		return 0, p.missing(tag)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValueError{
			ParseError: ParseError{
				Message: fmt.Sprintf("invalid number %q in %s", raw, tag),
				Cause:   err,
			},
			Tag:  tag,
			Text: raw,
		}
	}
	// ParseFloat accepts NaN and Inf spellings.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ValueError{
			ParseError: ParseError{Message: fmt.Sprintf("non-finite number %q in %s", raw, tag)},
			Tag:        tag,
			Text:       raw,
		}
	}
	return f, nil
}

func (p *Parser) integer(tag Tag, text string) (int, error) {
	raw, ok := p.field(tag, text)
	if !ok {
		return 0, p.missing(tag)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValueError{
			ParseError: ParseError{
				Message: fmt.Sprintf("invalid integer %q in %s", raw, tag),
				Cause:   err,
			},
			Tag:  tag,
			Text: raw,
		}
	}
	return n, nil
}

func (p *Parser) decodePoint(text, name string) (*Point, error) {
	lat, err := p.number(TagLatitude, text)
	if err != nil {
		return nil, err
	}
	lon, err := p.number(TagLongitude, text)
	if err != nil {
		return nil, err
	}
	pt := NewPoint(name, lat, lon)
	return &pt, nil
}

// decodePoints decodes every <point> of text. No points is not an error.
func (p *Parser) decodePoints(text string) ([]Point, error) {
	raw := p.fields(TagPoint, text)
	points := make([]Point, 0, len(raw))
	for _, r := range raw {
		pt, err := p.decodePoint(r, DefaultPointName)
		if err != nil {
			return nil, err
		}
		points = append(points, *pt)
	}
	return points, nil
}

// anchor decodes the first <point> of text, which positions single-anchor
// figures. Without a <point> the coordinates are read from text itself.
func (p *Parser) anchor(text string) (Point, error) {
	src := text
	if pts := p.fields(TagPoint, text); len(pts) > 0 {
		src = pts[0]
	}
	pt, err := p.decodePoint(src, "")
	if err != nil {
		return Point{}, err
	}
	return *pt, nil
}

func (p *Parser) dimensions(text string) (horiz, vert float64, err error) {
	if horiz, err = p.number(TagHoriz, text); err != nil {
		return 0, 0, err
	}
	if vert, err = p.number(TagVert, text); err != nil {
		return 0, 0, err
	}
	return horiz, vert, nil
}

func (p *Parser) decodeBullseye(text, name string) (*Bullseye, error) {
	center, err := p.anchor(text)
	if err != nil {
		return nil, err
	}
	horiz, vert, err := p.dimensions(text)
	if err != nil {
		return nil, err
	}
	rings, err := p.integer(TagRings, text)
	if err != nil {
		return nil, err
	}
	dist, err := p.number(TagRingDist, text)
	if err != nil {
		return nil, err
	}
	return NewBullseye(name, center, horiz, vert, rings, dist), nil
}

func (p *Parser) decodeEllipse(text, name string) (*Ellipse, error) {
	center, err := p.anchor(text)
	if err != nil {
		return nil, err
	}
	horiz, vert, err := p.dimensions(text)
	if err != nil {
		return nil, err
	}
	return NewEllipse(name, center, horiz, vert), nil
}

func (p *Parser) decodeRectangle(text, name string) (*Rectangle, error) {
	start, err := p.anchor(text)
	if err != nil {
		return nil, err
	}
	horiz, vert, err := p.dimensions(text)
	if err != nil {
		return nil, err
	}
	return NewRectangle(name, start, horiz, vert), nil
}

func (p *Parser) decodeCorridor(text, name string) (*Corridor, error) {
	points, err := p.decodePoints(text)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("corridor needs 2 points, got %d: %w", len(points), p.missing(TagPoint))
	}
	width, err := p.number(TagHoriz, text)
	if err != nil {
		return nil, err
	}
	return NewCorridor(name, points[0], points[1], width), nil
}

package sitac

import "fmt"

// Position tracks a location in the normalized source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// TokenKind is a semantic tag prefixed with ':' so it cannot be confused
// with a figure type name.
type TokenKind string

// KindOf returns the token kind for tag.
func KindOf(tag Tag) TokenKind {
	return TokenKind(":" + string(tag))
}

// Tag strips the ':' prefix.
func (k TokenKind) Tag() Tag {
	if len(k) > 0 && k[0] == ':' {
		return Tag(k[1:])
	}
	return Tag(k)
}

// Token holds every match of one semantics rule. Each entry of Matches is a
// full regexp submatch: index 0 is the matched text, index 1 the captured value.
type Token struct {
	Kind    TokenKind
	Matches [][]string
	Pos     Position // first match, zero when there is none
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}

// Values returns the first capture group of every match.
func (t Token) Values() []string {
	values := make([]string, 0, len(t.Matches))
	for _, m := range t.Matches {
		if len(m) > 1 {
			values = append(values, m[1])
		} else if len(m) == 1 {
			values = append(values, m[0])
		}
	}
	return values
}

func (t Token) String() string {
	if len(t.Matches) == 1 {
		return fmt.Sprintf("%s : 1 match", t.Kind)
	}
	return fmt.Sprintf("%s : %d matches", t.Kind, len(t.Matches))
}

package sitac

import (
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// whitespaceRunRE matches the runs collapsed by the lexer. Multi-line XML
// fragments become one logical line per element, which the leaf patterns need.
var whitespaceRunRE = regexp.MustCompile(`\s{2,}`)

// Lexer turns SITAC source text into one Token per semantics rule.
type Lexer struct {
	src    string // normalized text
	sem    *Semantics
	err    error
	logger *slog.Logger
}

// NewLexer creates a Lexer for src using the dialect's semantics table. An
// unsupported dialect is logged and leaves the lexer empty: Tokenize returns
// no tokens and Err reports the dialect error.
func NewLexer(src []byte, dialect string, logger *slog.Logger) *Lexer {
	logger = componentLogger(logger, "lexer")
	sem, err := LookupSemantics(dialect)
	if err != nil {
		logger.Error("cannot build lexer", "dialect", dialect, "error", err)
	}
	return &Lexer{
		src:    normalize(string(src)),
		sem:    sem,
		err:    err,
		logger: logger,
	}
}

func normalize(src string) string {
	return whitespaceRunRE.ReplaceAllString(src, "\n")
}

// Err returns the dialect error, if any.
func (l *Lexer) Err() error { return l.err }

// Source returns the normalized text the lexer scans.
func (l *Lexer) Source() string { return l.src }

// Semantics returns the table the lexer was built with.
func (l *Lexer) Semantics() *Semantics { return l.sem }

// Tokenize returns one token per rule, in rule order. Each token carries every
// match of its pattern across the whole text.
func (l *Lexer) Tokenize() []Token {
	if l.sem.Empty() {
		return nil
	}

	tokens := make([]Token, 0, len(l.sem.Rules))
	for _, rule := range l.sem.Rules {
		tokens = append(tokens, l.scan(rule))
	}
	l.logger.Info("tokenized", "tokens", len(tokens), "bytes", len(l.src))
	return tokens
}

func (l *Lexer) scan(rule Rule) Token {
	tok := Token{Kind: KindOf(rule.Tag)}
	idx := rule.Pattern.FindAllStringSubmatchIndex(l.src, -1)
	if len(idx) == 0 {
		return tok
	}
	tok.Pos = l.position(idx[0][0])
	tok.Matches = make([][]string, 0, len(idx))
	for _, loc := range idx {
		match := make([]string, len(loc)/2)
		for i := range match {
			if loc[2*i] >= 0 {
				match[i] = l.src[loc[2*i]:loc[2*i+1]]
			}
		}
		tok.Matches = append(tok.Matches, match)
	}
	l.logger.Debug("scanned rule", "tag", rule.Tag, "matches", len(tok.Matches))
	return tok
}

func (l *Lexer) position(offset int) Position {
	before := l.src[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndexByte(before, '\n')
	return Position{Line: line, Column: col, Offset: offset}
}

// componentLogger tags logger with the component name. A nil logger discards.
func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger.With("component", component)
}

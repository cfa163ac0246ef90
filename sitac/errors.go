package sitac

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFigureType is wrapped by FigureError when a fragment declares
	// a figure type no decoder handles.
	ErrUnknownFigureType = errors.New("unknown figure type")

	// ErrMissingTag is wrapped by FigureError when a required tag is absent.
	ErrMissingTag = errors.New("missing tag")
)

// ParseError is the base error type for all sitac errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ValueError represents a numeric conversion failure inside a figure.
type ValueError struct {
	ParseError
	Tag  Tag
	Text string
}

// FigureError reports why a single figure fragment was dropped.
type FigureError struct {
	ParseError
	Index int    // 0-based position of the fragment in the document
	Type  string // declared figure type, lower-cased (may be empty)
	Name  string // declared figure name (may be empty)
}

func (e *FigureError) Error() string {
	label := e.Name
	if label == "" {
		label = fmt.Sprintf("#%d", e.Index)
	}
	if e.Type != "" {
		return fmt.Sprintf("figure %s (%s): %s", label, e.Type, e.Message)
	}
	return fmt.Sprintf("figure %s: %s", label, e.Message)
}

// UnsupportedDialectError is returned when no semantics table exists for the
// requested dialect.
type UnsupportedDialectError struct {
	Dialect string
}

func (e *UnsupportedDialectError) Error() string {
	if e.Dialect == DialectMelissa {
		return fmt.Sprintf("dialect %q is not supported yet", e.Dialect)
	}
	return fmt.Sprintf("unsupported dialect %q", e.Dialect)
}

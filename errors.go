package featstore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/featstore/i18n"
)

// Issue codes.
const (
	CodeUnknownField      = "unknown_field"
	CodeInvalidType       = "invalid_type"
	CodeOverflow          = "overflow"
	CodeDuplicateField    = "duplicate_field"
	CodeNameMismatch      = "name_mismatch"
	CodeUnsupportedFormat = "unsupported_format"
	CodeParseError        = "parse_error"
	CodeTooBig            = "too_big"
)

// Sentinels matched by errors.Is against any Issues value.
var (
	// ErrUnknownField matches unknown_field issues.
	ErrUnknownField = errors.New("featstore: unknown field")
	// ErrTypeMismatch matches invalid_type and overflow issues.
	ErrTypeMismatch = errors.New("featstore: type mismatch")
	// ErrMalformed matches every other decode issue.
	ErrMalformed = errors.New("featstore: malformed document")
)

// Issue is a single decode or validation problem.
type Issue struct {
	Path    string // "/field", or "/" for document-level problems
	Code    string
	Message string
	Raw     string // offending source text, when there is one
	Line    int    // 1-based source line, 0 when unknown
	Cause   error
}

// Field returns the field name the issue refers to ("" for document-level issues).
func (i Issue) Field() string { return strings.TrimPrefix(i.Path, "/") }

func (i Issue) sentinel() error {
	switch i.Code {
	case CodeUnknownField:
		return ErrUnknownField
	case CodeInvalidType, CodeOverflow:
		return ErrTypeMismatch
	default:
		return ErrMalformed
	}
}

func (i Issue) summary() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s at %s", i.Code, i.Path)
	if i.Line > 0 {
		fmt.Fprintf(b, " (line %d)", i.Line)
	}
	if i.Raw != "" {
		b.WriteString(": ")
		b.WriteString(strconv.Quote(i.Raw))
	}
	return b.String()
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].summary())
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Is matches the sentinel errors of the contained issue codes.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if it.sentinel() == target {
			return true
		}
	}
	return false
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// NewIssue builds an issue with a localized message for code.
func NewIssue(path, code, raw string, line int, cause error) Issue {
	return newIssue(path, code, raw, line, cause, nil)
}

func newIssue(path, code, raw string, line int, cause error, data map[string]string) Issue {
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["field"]; !ok {
		data["field"] = strings.TrimPrefix(path, "/")
	}
	if raw != "" {
		data["raw"] = raw
	}
	return Issue{Path: path, Code: code, Message: i18n.T(code, data), Raw: raw, Line: line, Cause: cause}
}

// NewIssueWith is NewIssue with extra message parameters (for example
// "expected" or "schema").
func NewIssueWith(path, code, raw string, line int, cause error, data map[string]string) Issue {
	return newIssue(path, code, raw, line, cause, data)
}

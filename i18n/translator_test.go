package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	msg := T("unknown_field", map[string]string{"field": "thresh"})
	require.Equal(t, "unknown field thresh", msg)

	SetLanguage("ja")
	defer SetLanguage("en")
	require.Equal(t, "未知のフィールドです: thresh", T("unknown_field", map[string]string{"field": "thresh"}))
}

func TestTranslator_OptionalSegments(t *testing.T) {
	require.Equal(t, "invalid value for delta: expected int, got 5.",
		T("invalid_type", map[string]string{"field": "delta", "expected": "int", "raw": "5."}))
	require.Equal(t, "invalid value for delta",
		T("invalid_type", map[string]string{"field": "delta"}))
	require.Equal(t, "parse error", T("parse_error", nil))
	require.Equal(t, "document type Feature2D.BRISK does not match Feature2D.BRIEF",
		T("name_mismatch", map[string]string{"raw": "Feature2D.BRISK", "expected": "Feature2D.BRIEF"}))
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	require.Equal(t, "no_such_code", T("no_such_code", nil))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	require.Equal(t, "X:too_big", T("too_big", nil))
	SetTranslator(nil)
	require.Equal(t, "document too large", T("too_big", nil))
}

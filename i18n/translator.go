package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field", "raw" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data; placeholders without data are removed
// together with the clause that holds them.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"unknown_field":      "unknown field {field}",
		"invalid_type":       "invalid value for {field}[: expected {expected}][, got {raw}]",
		"overflow":           "value of {field} does not fit in[ {bits}-bit] integer[: {raw}]",
		"duplicate_field":    "field {field} appears more than once[ (first on line {first})]",
		"name_mismatch":      "document type[ {raw}] does not match[ {expected}]",
		"unsupported_format": "unsupported format version[ {raw}][ (newest supported {expected})]",
		"parse_error":        "parse error[: {detail}]",
		"too_big":            "document too large[ (limit {limit} bytes)]",
	},
	"ja": {
		"unknown_field":      "未知のフィールドです: {field}",
		"invalid_type":       "{field} の値が不正です[ (期待: {expected})][: {raw}]",
		"overflow":           "{field} の値が[{bits}ビット]整数の範囲外です[: {raw}]",
		"duplicate_field":    "フィールド {field} が重複しています[ (最初は{first}行目)]",
		"name_mismatch":      "種別が一致しません[: {raw}][ (期待: {expected})]",
		"unsupported_format": "未対応のフォーマットバージョンです[: {raw}][ (対応: {expected}まで)]",
		"parse_error":        "解析エラー[: {detail}]",
		"too_big":            "ドキュメントが大きすぎます[ (上限 {limit} バイト)]",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return render(tpl, data)
}

// render substitutes {key} placeholders. A bracketed [segment] is kept only
// when every placeholder inside it has a non-empty value.
func render(tpl string, data map[string]string) string {
	var b strings.Builder
	for len(tpl) > 0 {
		open := strings.IndexByte(tpl, '[')
		if open < 0 {
			b.WriteString(fill(tpl, data))
			break
		}
		b.WriteString(fill(tpl[:open], data))
		rest := tpl[open+1:]
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			b.WriteString(fill(rest, data))
			break
		}
		if seg := rest[:end]; complete(seg, data) {
			b.WriteString(fill(seg, data))
		}
		tpl = rest[end+1:]
	}
	return b.String()
}

func fill(s string, data map[string]string) string {
	for {
		i := strings.IndexByte(s, '{')
		if i < 0 {
			return s
		}
		j := strings.IndexByte(s[i:], '}')
		if j < 0 {
			return s
		}
		key := s[i+1 : i+j]
		s = s[:i] + data[key] + s[i+j+1:]
	}
}

func complete(seg string, data map[string]string) bool {
	for {
		i := strings.IndexByte(seg, '{')
		if i < 0 {
			return true
		}
		j := strings.IndexByte(seg[i:], '}')
		if j < 0 {
			return true
		}
		if data[seg[i+1:i+j]] == "" {
			return false
		}
		seg = seg[i+j+1:]
	}
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// Languages lists the languages of the built-in dictionary.
func Languages() []string { return []string{"en", "ja"} }

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }

// Package jsonrepair recovers a JSON object from the free-form text a
// completion model returns. The model output is untrusted: it may be wrapped
// in markdown fences, use typographic quotes, carry trailing commas or
// comments, or append prose after the closing brace. Each repair step is a
// pure string transform so it can be tested on its own.
package jsonrepair

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseError reports that no parseable JSON could be recovered. Raw keeps the
// original model text so new malformed shapes can be diagnosed offline.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsonrepair: no recoverable JSON in model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	fenceOpenRe  = regexp.MustCompile("^```[a-zA-Z]*\n?")
	fenceCloseRe = regexp.MustCompile("```$")

	doubleQuoteRe = regexp.MustCompile("[“”„‟]")
	singleQuoteRe = regexp.MustCompile("[‘’‛]")
	lineBreakRe   = regexp.MustCompile(`[\r\n]+`)

	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	undefinedRe     = regexp.MustCompile(`:\s*undefined(\s*[,}])`)

	lineCommentRe  = regexp.MustCompile(`//[^\n\r]*[\n\r]?`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// StripFences removes a leading code-fence marker (optionally language-tagged)
// and a trailing fence.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = fenceOpenRe.ReplaceAllString(s, "")
	return fenceCloseRe.ReplaceAllString(s, "")
}

// NormalizeQuotes maps typographic quotation marks to ASCII, non-breaking
// spaces to plain spaces, and collapses line breaks to single spaces. Unescaped
// newlines inside string values would otherwise break the parser.
func NormalizeQuotes(s string) string {
	s = doubleQuoteRe.ReplaceAllString(s, `"`)
	s = singleQuoteRe.ReplaceAllString(s, "'")
	s = strings.ReplaceAll(s, " ", " ")
	return lineBreakRe.ReplaceAllString(s, " ")
}

// ExtractLargestObject returns the largest balanced {...} starting at the
// first brace, discarding trailing prose the model appended. Brace depth only
// changes outside string literals; a quote toggles the in-string state unless
// escaped. Without a balanced close the tail from the first brace is returned
// so later truncation still has something to work with.
func ExtractLargestObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return s
	}

	inStr := false
	esc := false
	depth := 0
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inStr {
			if !esc && ch == '"' {
				inStr = false
			}
			esc = ch == '\\' && !esc
			continue
		}
		switch ch {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

// StripTrailingCommas removes commas immediately preceding a closing } or ].
func StripTrailingCommas(s string) string {
	return trailingCommaRe.ReplaceAllString(s, "$1")
}

// ReplaceUndefined rewrites bare undefined values to null.
func ReplaceUndefined(s string) string {
	return undefinedRe.ReplaceAllString(s, ": null$1")
}

// StripComments removes // line comments and /* */ block comments.
func StripComments(s string) string {
	s = lineCommentRe.ReplaceAllString(s, "")
	return blockCommentRe.ReplaceAllString(s, "")
}

// Parse runs the repair pipeline over raw model output and unmarshals the
// result. When the first parse fails it truncates at the last closing brace,
// re-strips trailing commas, and tries once more. All failures surface as a
// *ParseError carrying the original text; an unparseable response is never
// coerced to an empty object.
func Parse(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Raw: raw, Err: fmt.Errorf("empty response")}
	}

	s := StripFences(raw)
	s = NormalizeQuotes(s)
	s = ExtractLargestObject(s)
	s = StripTrailingCommas(s)
	s = ReplaceUndefined(s)
	s = StripComments(s)

	var out map[string]any
	firstErr := json.Unmarshal([]byte(s), &out)
	if firstErr == nil {
		return out, nil
	}

	if last := strings.LastIndexByte(s, '}'); last > 0 {
		cand := StripTrailingCommas(s[:last+1])
		if err := json.Unmarshal([]byte(cand), &out); err == nil {
			return out, nil
		}
	}

	return nil, &ParseError{Raw: raw, Err: firstErr}
}

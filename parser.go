// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strings"
)

const (
	// paramBody matches one segment of a ":name" param without custom body.
	paramBody = `[^/]+`
	// wildcardBody matches one or more slash-separated segments.
	wildcardBody = `[^/]+(?:/[^/]+)*`
	// boundaryTail ends a non-exact pattern. The empty group marks where the
	// matched URL ends; the rest must be empty or start with "#" or "?".
	boundaryTail = `/?()(?:[#?]|$)`
)

// Parser is a compiled route pattern.
//
// Parser is immutable after NewParser and safe for concurrent use.
type Parser struct {
	// re is the anchored matching expression.
	re *regexp.Regexp
	// pattern is original source pattern.
	pattern string
	// tokens are lexer output of pattern.
	tokens []Token
	// plan is tokens without custom param bodies, walked by Compile.
	plan []Token
	// keys are capture group names in group order.
	keys []string
	// score is the score vector without wildcard weights.
	score []Weight
	// wildcardAt is the score index where wildcard weights are inserted, -1 when none.
	wildcardAt int
	// opts are compilation options.
	opts Options
	// boundary is set when re ends with boundaryTail and its extra group.
	boundary bool
}

// NewParser compiles pattern with options.
func NewParser(pattern string, opts Options) (*Parser, error) {
	tokens, err := Lex(pattern)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		pattern:    pattern,
		tokens:     tokens,
		plan:       make([]Token, 0, len(tokens)),
		wildcardAt: -1,
		opts:       opts,
	}

	onlyWildcard := len(tokens) == 1 && tokens[0].Kind == TokenWildcard

	var b strings.Builder
	if opts.CaseInsensitive {
		b.WriteString("(?i)")
	}
	b.WriteByte('^')

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Kind {
		case TokenDelimiter:
			b.WriteByte('/')
			p.plan = append(p.plan, tok)

		case TokenStatic:
			b.WriteString(escapeStatic(tok.Value))
			p.score = append(p.score, WeightStatic)
			p.plan = append(p.plan, tok)

		case TokenParam:
			if tok.Value == "" {
				return nil, fmt.Errorf("%w: %q: param without name", ErrPatternSyntax, pattern)
			}

			body, next, err := readParamBody(tokens, i+1)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrPatternSyntax, pattern, err)
			}

			i = next - 1
			if body == "" {
				b.WriteString("(" + paramBody + ")")
			} else {
				b.WriteString("((?:" + body + "))")
			}

			p.keys = append(p.keys, tok.Value)
			p.score = append(p.score, WeightParam)
			p.plan = append(p.plan, tok)

		case TokenWildcard:
			if p.wildcardAt >= 0 {
				return nil, fmt.Errorf("%w: %q: more than one wildcard", ErrPatternSyntax, pattern)
			}

			p.keys = append(p.keys, WildcardKey)
			p.plan = append(p.plan, tok)

			if onlyWildcard {
				// Lone "*" also matches "" and "/", so zero segments are allowed.
				b.WriteString("/?((?:" + wildcardBody + ")?)")
				p.score = append(p.score, WeightWildcard)
				continue
			}

			b.WriteString("(" + wildcardBody + ")")
			p.wildcardAt = len(p.score)

		case TokenLBracket, TokenRBracket, TokenPattern:
			// Only meaningful as a param body.
		}
	}

	p.writeTail(&b)

	expr := b.String()
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrPatternSyntax, pattern, err)
	}

	if re.NumSubexp() != p.groupCount() {
		return nil, fmt.Errorf("%w: %q: %d capture groups for %d keys", ErrPatternSyntax, pattern, re.NumSubexp(), len(p.keys))
	}

	p.re = re
	return p, nil
}

// writeTail appends trailing boundary rule for pattern end.
func (p *Parser) writeTail(b *strings.Builder) {
	if n := len(p.tokens); n > 0 && p.tokens[n-1].Kind == TokenWildcard {
		if !p.opts.Strict {
			b.WriteString("/?")
		}
		b.WriteByte('$')
		return
	}

	if !p.opts.Exact {
		b.WriteString(boundaryTail)
		p.boundary = true
		return
	}

	if !p.opts.Strict {
		b.WriteString("/?")
	}
	b.WriteByte('$')
}

// groupCount returns the number of capture groups re must have.
func (p *Parser) groupCount() int {
	if p.boundary {
		return len(p.keys) + 1
	}

	return len(p.keys)
}

// readParamBody reads bracketed param body starting at tokens[start].
//
// It returns body regexp source and index of the first token after body.
// Empty body means no brackets follow the param.
func readParamBody(tokens []Token, start int) (string, int, error) {
	if start >= len(tokens) || tokens[start].Kind != TokenLBracket {
		return "", start, nil
	}

	var b strings.Builder
	depth := 1

	for i := start + 1; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case TokenLBracket:
			depth++
			// Inner groups must not capture, keys map 1:1 to groups.
			b.WriteString("(?:")
		case TokenRBracket:
			depth--
			if depth == 0 {
				return b.String(), i + 1, nil
			}
			b.WriteByte(')')
		case TokenParam:
			return "", 0, fmt.Errorf("param %q inside brackets", tokens[i].Value)
		case TokenWildcard:
			return "", 0, errors.New("wildcard inside brackets")
		default:
			b.WriteString(tokens[i].Value)
		}
	}

	return "", 0, errors.New(`unclosed "("`)
}

// Parse matches candidate URL against pattern.
//
// It reports false when candidate does not match; that is not an error.
func (p *Parser) Parse(candidate string) (MatchResult, bool) {
	loc := p.re.FindStringSubmatchIndex(candidate)
	if loc == nil {
		return MatchResult{}, false
	}

	end := loc[1]
	if p.boundary {
		end = loc[2*len(p.keys)+2]
	}
	matched := candidate[:end]

	params := make(Params, len(p.keys))
	segments := 0

	for i, key := range p.keys {
		start, end := loc[2*i+2], loc[2*i+3]

		if key == WildcardKey {
			captured := ""
			if start >= 0 {
				captured = candidate[start:end]
			}

			list := splitSegments(captured)
			params[key] = list
			segments = len(list)
			continue
		}

		if start < 0 {
			params[key] = []string{}
			continue
		}

		params[key] = candidate[start:end]
	}

	url := matched
	if candidate == "/" && matched == "" {
		url = "/"
	}

	return MatchResult{
		Score:   expandScore(p.score, p.wildcardAt, segments),
		Params:  params,
		Path:    p.pattern,
		URL:     url,
		IsExact: matched == candidate,
	}, true
}

// Compile builds a URL from params.
//
// Every named param must have a non-empty value: nil, "", false and numeric
// zero are rejected. Values are inserted as is, without escaping.
func (p *Parser) Compile(params Params) (string, error) {
	var b strings.Builder

	for _, tok := range p.plan {
		switch tok.Kind {
		case TokenDelimiter:
			b.WriteByte('/')
		case TokenStatic:
			b.WriteString(tok.Value)
		case TokenParam:
			v, ok := params[tok.Value]
			if !ok || isFalsy(v) {
				return "", fmt.Errorf("%w: %q: param %q is required", ErrParamCompile, p.pattern, tok.Value)
			}
			b.WriteString(formatParam(v))
		case TokenWildcard:
			v := params[WildcardKey]
			if v == nil {
				continue
			}

			if list, ok := paramList(v); ok {
				b.WriteString(strings.Join(list, "/"))
			} else {
				b.WriteString(formatParam(v))
			}
		}
	}

	return b.String(), nil
}

// Pattern returns source pattern.
func (p *Parser) Pattern() string {
	return p.pattern
}

// Keys returns capture keys in group order, "*" stands for the wildcard.
func (p *Parser) Keys() []string {
	return slices.Clone(p.keys)
}

// Tokens returns lexer output of the pattern.
func (p *Parser) Tokens() []Token {
	return slices.Clone(p.tokens)
}

// Regexp returns the compiled matching expression.
//
// Non-exact patterns end with one extra empty group after the keys' groups,
// it marks the end of the matched URL.
func (p *Parser) Regexp() *regexp.Regexp {
	return p.re
}

// Options returns compilation options.
func (p *Parser) Options() Options {
	return p.opts
}

// isFalsy reports whether v counts as a missing param value.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.IsZero()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// formatParam renders one param value, lists are joined with ",".
func formatParam(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	if list, ok := paramList(v); ok {
		return strings.Join(list, ",")
	}

	return fmt.Sprint(v)
}

// paramList renders a slice or array value as a list of strings.
//
// Decoded YAML and JSON yield []any, so any element type is accepted.
func paramList(v any) ([]string, bool) {
	if list, ok := v.([]string); ok {
		return list, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}

	return out, true
}

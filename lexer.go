// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import "fmt"

// TokenKind is a lexical class of pattern text.
type TokenKind uint8

const (
	// TokenDelimiter is one "/" separator.
	TokenDelimiter TokenKind = iota
	// TokenStatic is literal segment text.
	TokenStatic
	// TokenParam is a ":name" parameter, Value holds the name.
	TokenParam
	// TokenWildcard is a "*" wildcard.
	TokenWildcard
	// TokenLBracket opens a custom parameter body.
	TokenLBracket
	// TokenRBracket closes a custom parameter body.
	TokenRBracket
	// TokenPattern is regexp fragment text outside segment start.
	TokenPattern
)

// Token is one lexical unit of a pattern.
type Token struct {
	Value string    `json:"value" yaml:"value"`
	Kind  TokenKind `json:"kind" yaml:"kind"`
}

// String returns token kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenDelimiter:
		return "delimiter"
	case TokenStatic:
		return "static"
	case TokenParam:
		return "param"
	case TokenWildcard:
		return "wildcard"
	case TokenLBracket:
		return "lbracket"
	case TokenRBracket:
		return "rbracket"
	case TokenPattern:
		return "pattern"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// MarshalText encodes token kind by name.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Lex splits pattern into tokens.
//
// Empty pattern yields no tokens. Any other pattern must start with "/"
// unless it is exactly "*".
func Lex(pattern string) ([]Token, error) {
	if pattern == "" {
		return nil, nil
	}

	if pattern[0] != '/' && pattern != WildcardKey {
		return nil, fmt.Errorf("%w: %q must start with \"/\"", ErrPatternSyntax, pattern)
	}

	pattern = collapseSlashes(pattern)
	tokens := make([]Token, 0, len(pattern)/2+1)

	for i := 0; i < len(pattern); {
		c := pattern[i]
		afterSlash := i > 0 && pattern[i-1] == '/'

		switch {
		case c == '/':
			tokens = append(tokens, Token{Kind: TokenDelimiter, Value: "/"})
			i++
		case afterSlash && c == ':':
			end := scanWord(pattern, i+1)
			tokens = append(tokens, Token{Kind: TokenParam, Value: pattern[i+1 : end]})
			i = end
		case (afterSlash || i == 0) && c == '*':
			tokens = append(tokens, Token{Kind: TokenWildcard, Value: WildcardKey})
			i++
		case afterSlash && isWordByte(c):
			end := scanWord(pattern, i)
			tokens = append(tokens, Token{Kind: TokenStatic, Value: pattern[i:end]})
			i = end
		case c == '(':
			tokens = append(tokens, Token{Kind: TokenLBracket, Value: "("})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: TokenRBracket, Value: ")"})
			i++
		case isWordByte(c):
			end := scanWord(pattern, i)
			tokens = append(tokens, Token{Kind: TokenPattern, Value: pattern[i:end]})
			i = end
		default:
			// Stray ":" and "*" carry no meaning outside segment start.
			i++
		}
	}

	return tokens, nil
}

// isWordByte reports whether c belongs to class [^/:*()].
func isWordByte(c byte) bool {
	switch c {
	case '/', ':', '*', '(', ')':
		return false
	default:
		return true
	}
}

// scanWord returns end index of the [^/:*()] run starting at start.
func scanWord(s string, start int) int {
	end := start
	for end < len(s) && isWordByte(s[end]) {
		end++
	}

	return end
}

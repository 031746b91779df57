package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokDirname
	tokBasename
	tokNamed
)

// token is one segment of a pattern: literal text or a placeholder.
type token struct {
	kind tokenKind
	text string // literal text, or the placeholder name for tokNamed
}

// matcher is a compiled pattern: the anchored expression used to match paths
// and the ordered tokens used to substitute captures back into a path.
type matcher struct {
	source string
	re     *regexp.Regexp
	tokens []token
	// groups maps each regexp capture group (1-based index - 1) to its token.
	groups []token
}

// tokenize splits a slash-normalized pattern into literal and placeholder
// tokens. "{dirname}" consumes the "/" that must follow it.
func tokenize(p string) ([]token, error) {
	var tokens []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{kind: tokLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(p); {
		if p[i] != '{' {
			lit.WriteByte(p[i])
			i++
			continue
		}

		end := strings.IndexByte(p[i:], '}')
		if end < 0 {
			lit.WriteString(p[i:])
			break
		}
		name := p[i+1 : i+end]
		next := i + end + 1

		switch {
		case name == "dirname":
			if next >= len(p) || p[next] != '/' {
				return nil, fmt.Errorf("%w: {dirname} must be followed by '/' in %q", ErrInvalidPattern, p)
			}
			flush()
			tokens = append(tokens, token{kind: tokDirname})
			next++
		case name == "basename":
			flush()
			tokens = append(tokens, token{kind: tokBasename})
		case isIdentifier(name):
			flush()
			tokens = append(tokens, token{kind: tokNamed, text: name})
		default:
			lit.WriteString(p[i:next])
		}
		i = next
	}
	flush()

	return tokens, nil
}

// compile builds the matcher for a single side of a pattern.
func compile(p string) (*matcher, error) {
	p = Normalize(p)

	tokens, err := tokenize(p)
	if err != nil {
		return nil, err
	}

	basenames := 0
	var expr strings.Builder
	var groups []token
	expr.WriteString("^")
	for _, tok := range tokens {
		switch tok.kind {
		case tokLiteral:
			expr.WriteString(regexp.QuoteMeta(tok.text))
		case tokDirname:
			expr.WriteString(`(?:(.+?)/)?`)
			groups = append(groups, tok)
		case tokBasename:
			basenames++
			expr.WriteString(`([^/]+)`)
			groups = append(groups, tok)
		case tokNamed:
			expr.WriteString(`([^/]+)`)
			groups = append(groups, tok)
		}
	}
	expr.WriteString("$")

	if basenames != 1 {
		return nil, fmt.Errorf("%w: %q must contain exactly one {basename}, found %d", ErrInvalidPattern, p, basenames)
	}

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
	}

	return &matcher{source: p, re: re, tokens: tokens, groups: groups}, nil
}

// match applies the matcher to a slash-normalized path.
func (m *matcher) match(path string) (Captures, bool) {
	sub := m.re.FindStringSubmatch(path)
	if sub == nil {
		return Captures{}, false
	}

	var c Captures
	for i, tok := range m.groups {
		value := sub[i+1]
		switch tok.kind {
		case tokDirname:
			c.Dirnames = append(c.Dirnames, value)
		case tokBasename:
			c.Basename = value
		case tokNamed:
			if c.Named == nil {
				c.Named = make(map[string]string)
			}
			c.Named[tok.text] = value
		}
	}

	if c.Basename == "" {
		return Captures{}, false
	}
	return c, true
}

// substitute renders the matcher's tokens with the given captures. It fails
// when a named placeholder has no captured value.
func (m *matcher) substitute(c Captures) (string, bool) {
	var out strings.Builder
	dirIndex := 0
	for _, tok := range m.tokens {
		switch tok.kind {
		case tokLiteral:
			out.WriteString(tok.text)
		case tokDirname:
			if dirIndex < len(c.Dirnames) && c.Dirnames[dirIndex] != "" {
				out.WriteString(c.Dirnames[dirIndex])
				out.WriteString("/")
			}
			dirIndex++
		case tokBasename:
			out.WriteString(c.Basename)
		case tokNamed:
			value, ok := c.Named[tok.text]
			if !ok || value == "" {
				return "", false
			}
			out.WriteString(value)
		}
	}
	return out.String(), true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

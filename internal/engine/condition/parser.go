package condition

import (
	"strconv"
	"strings"

	"github.com/lacc97/libloot/internal/core/domain"
	"go.trai.ch/zerr"
)

// tokenKind enumerates the lexical categories of the condition grammar.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokLParen
	tokRParen
	tokComma
	tokOr
	tokAnd
	tokNot
	tokCmp
)

type token struct {
	kind tokenKind
	text string
}

// lex tokenises a condition string. It is deliberately small and
// hand-written: the grammar (§4.3) has no operator precedence beyond
// and/or/not and parentheses, so a recursive-descent parser over a simple
// token stream is the idiomatic fit — there is no grammar/parser-combinator
// library in the retrieved dependency set to reach for instead (see
// DESIGN.md).
func lex(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ","})
			i++
		case c == '"':
			j := i + 1
			for j < len(s) && s[j] != '"' {
				j++
			}
			if j >= len(s) {
				return nil, zerr.With(domain.ErrConditionSyntax, "reason", "unterminated string")
			}
			toks = append(toks, token{tokString, s[i+1 : j]})
			i = j + 1
		case c == '=' && i+1 < len(s) && s[i+1] == '=':
			toks = append(toks, token{tokCmp, "=="})
			i += 2
		case c == '!' && i+1 < len(s) && s[i+1] == '=':
			toks = append(toks, token{tokCmp, "!="})
			i += 2
		case c == '<' && i+1 < len(s) && s[i+1] == '=':
			toks = append(toks, token{tokCmp, "<="})
			i += 2
		case c == '>' && i+1 < len(s) && s[i+1] == '=':
			toks = append(toks, token{tokCmp, ">="})
			i += 2
		case c == '<':
			toks = append(toks, token{tokCmp, "<"})
			i++
		case c == '>':
			toks = append(toks, token{tokCmp, ">"})
			i++
		case c >= '0' && c <= '9':
			// A bare word starting with a digit, e.g. the checksum() hex
			// literal 00000000.
			j := i + 1
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			toks = append(toks, token{tokIdent, s[i:j]})
			i = j
		case isIdentStart(c):
			j := i + 1
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			word := s[i:j]
			switch word {
			case "or":
				toks = append(toks, token{tokOr, word})
			case "and":
				toks = append(toks, token{tokAnd, word})
			case "not":
				toks = append(toks, token{tokNot, word})
			default:
				toks = append(toks, token{tokIdent, word})
			}
			i = j
		default:
			return nil, zerr.With(zerr.With(domain.ErrConditionSyntax, "reason", "unexpected character"), "at", string(c))
		}
	}
	return toks, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// parser is a recursive-descent parser over the token stream produced by
// lex, implementing the grammar in §4.3 exactly:
//
//	expr   := term ('or' term)*
//	term   := factor ('and' factor)*
//	factor := 'not'? atom | '(' expr ')'
//	atom   := file(path) | active(path) | many(regex) | many_active(regex)
//	        | checksum(path, hex) | version(path, str, cmp) | regex(regex)
type parser struct {
	toks []token
	pos  int
}

// Parse parses a condition string into an Expr. An empty (all-whitespace)
// condition is always true and parses to an Expr with zero Terms; callers
// must special-case it.
func Parse(s string) (*Expr, error) {
	if strings.TrimSpace(s) == "" {
		return &Expr{}, nil
	}
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, zerr.With(domain.ErrConditionSyntax, "reason", "trailing input")
	}
	return expr, nil
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) parseExpr() (*Expr, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Term{*term}
	for p.peek().kind == tokOr {
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, *term)
	}
	return &Expr{Terms: terms}, nil
}

func (p *parser) parseTerm() (*Term, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	factors := []Factor{*factor}
	for p.peek().kind == tokAnd {
		p.next()
		factor, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		factors = append(factors, *factor)
	}
	return &Term{Factors: factors}, nil
}

func (p *parser) parseFactor() (*Factor, error) {
	negate := false
	if p.peek().kind == tokNot {
		p.next()
		negate = true
	}

	if p.peek().kind == tokLParen {
		p.next()
		sub, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, zerr.With(domain.ErrConditionSyntax, "reason", "expected closing parenthesis")
		}
		p.next()
		return &Factor{Negate: negate, Sub: sub}, nil
	}

	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return &Factor{Negate: negate, Atom: atom}, nil
}

func (p *parser) parseAtom() (*Atom, error) {
	name := p.next()
	if name.kind != tokIdent {
		return nil, zerr.With(domain.ErrConditionSyntax, "reason", "expected function name")
	}
	if p.peek().kind != tokLParen {
		return nil, zerr.With(domain.ErrConditionSyntax, "reason", "expected '('")
	}
	p.next()

	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}

	if p.peek().kind != tokRParen {
		return nil, zerr.With(domain.ErrConditionSyntax, "reason", "expected ')'")
	}
	p.next()

	switch name.text {
	case "file":
		if len(args) != 1 {
			return nil, argCountError(name.text, 1, len(args))
		}
		return &Atom{Kind: AtomFile, Path: args[0]}, nil
	case "active":
		if len(args) != 1 {
			return nil, argCountError(name.text, 1, len(args))
		}
		return &Atom{Kind: AtomActive, Path: args[0]}, nil
	case "many":
		if len(args) != 1 {
			return nil, argCountError(name.text, 1, len(args))
		}
		return &Atom{Kind: AtomMany, Regex: args[0]}, nil
	case "many_active":
		if len(args) != 1 {
			return nil, argCountError(name.text, 1, len(args))
		}
		return &Atom{Kind: AtomManyActive, Regex: args[0]}, nil
	case "regex":
		if len(args) != 1 {
			return nil, argCountError(name.text, 1, len(args))
		}
		return &Atom{Kind: AtomRegex, Regex: args[0]}, nil
	case "checksum":
		if len(args) != 2 {
			return nil, argCountError(name.text, 2, len(args))
		}
		hex, err := strconv.ParseUint(args[1], 16, 32)
		if err != nil {
			return nil, zerr.With(zerr.With(domain.ErrConditionSyntax, "reason", "invalid checksum hex"), "value", args[1])
		}
		return &Atom{Kind: AtomChecksum, Path: args[0], Hex: uint32(hex)}, nil
	case "version":
		return p.parseVersionAtom(args)
	default:
		return nil, zerr.With(domain.ErrConditionSyntax, "reason", "unknown function "+name.text)
	}
}

// parseArgs parses a comma-separated argument list where each argument is
// a quoted string, a bare word (the checksum() hex literal), or, for the
// version() comparator, a bare comparison-operator token.
func (p *parser) parseArgs() ([]string, error) {
	var args []string
	if p.peek().kind == tokRParen {
		return args, nil
	}
	for {
		tok := p.peek()
		switch tok.kind {
		case tokString, tokIdent:
			args = append(args, tok.text)
			p.next()
		case tokCmp:
			args = append(args, tok.text)
			p.next()
		default:
			return nil, zerr.With(domain.ErrConditionSyntax, "reason", "expected argument")
		}
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	return args, nil
}

func (p *parser) parseVersionAtom(args []string) (*Atom, error) {
	if len(args) != 3 {
		return nil, argCountError("version", 3, len(args))
	}
	cmp, err := parseComparator(args[2])
	if err != nil {
		return nil, err
	}
	return &Atom{Kind: AtomVersion, Path: args[0], Version: args[1], Comparator: cmp}, nil
}

func parseComparator(s string) (Comparator, error) {
	switch s {
	case "==":
		return CmpEq, nil
	case "!=":
		return CmpNe, nil
	case "<":
		return CmpLt, nil
	case "<=":
		return CmpLe, nil
	case ">":
		return CmpGt, nil
	case ">=":
		return CmpGe, nil
	default:
		return 0, zerr.With(domain.ErrConditionSyntax, "reason", "unknown comparator "+s)
	}
}

func argCountError(fn string, want, got int) error {
	err := zerr.With(domain.ErrConditionSyntax, "reason", "wrong argument count")
	err = zerr.With(err, "function", fn)
	err = zerr.With(err, "want", want)
	err = zerr.With(err, "got", got)
	return err
}

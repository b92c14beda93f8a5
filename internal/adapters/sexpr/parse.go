package sexpr

import (
	"strconv"

	"go.trai.ch/zerr"
)

type formKind uint8

const (
	formInt formKind = iota
	formStr
	formSym
	formList
)

// form is one parsed expression.
type form struct {
	kind formKind
	num  int64
	text string // symbol name or string literal
	kids []form
	line int
}

type token struct {
	kind tokenKind
	text string
	line int
}

type tokenKind uint8

const (
	tokOpen tokenKind = iota
	tokClose
	tokAtom
	tokStr
)

// parse turns source text into a sequence of top-level forms. name is used in
// error messages only.
func parse(name, src string) ([]form, error) {
	tokens, err := lex(name, src)
	if err != nil {
		return nil, err
	}

	var forms []form
	pos := 0
	for pos < len(tokens) {
		f, next, err := parseForm(name, tokens, pos)
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
		pos = next
	}
	return forms, nil
}

func lex(name, src string) ([]token, error) {
	var tokens []token
	line := 1
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == ';':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '(':
			tokens = append(tokens, token{kind: tokOpen, line: line})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokClose, line: line})
			i++
		case c == '"':
			text, next, err := lexString(src, i+1)
			if err != nil {
				return nil, errAt(err, name, line)
			}
			tokens = append(tokens, token{kind: tokStr, text: text, line: line})
			i = next
		default:
			start := i
			for i < len(src) && !atomEnd(src[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokAtom, text: src[start:i], line: line})
		}
	}
	return tokens, nil
}

func atomEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '"', ';':
		return true
	}
	return false
}

func lexString(src string, start int) (string, int, error) {
	var sb []byte
	i := start
	for i < len(src) {
		switch src[i] {
		case '"':
			return string(sb), i + 1, nil
		case '\\':
			if i+1 >= len(src) {
				return "", 0, zerr.New("unterminated escape")
			}
			switch src[i+1] {
			case 'n':
				sb = append(sb, '\n')
			case 't':
				sb = append(sb, '\t')
			case '"':
				sb = append(sb, '"')
			case '\\':
				sb = append(sb, '\\')
			default:
				return "", 0, zerr.With(zerr.New("unknown escape"), "escape", string(src[i+1]))
			}
			i += 2
		default:
			sb = append(sb, src[i])
			i++
		}
	}
	return "", 0, zerr.New("unterminated string literal")
}

func parseForm(name string, tokens []token, pos int) (form, int, error) {
	t := tokens[pos]
	switch t.kind {
	case tokClose:
		return form{}, 0, errAt(zerr.New("unexpected closing paren"), name, t.line)
	case tokStr:
		return form{kind: formStr, text: t.text, line: t.line}, pos + 1, nil
	case tokAtom:
		if n, err := strconv.ParseInt(t.text, 10, 64); err == nil {
			return form{kind: formInt, num: n, line: t.line}, pos + 1, nil
		}
		return form{kind: formSym, text: t.text, line: t.line}, pos + 1, nil
	case tokOpen:
		kids := []form{}
		next := pos + 1
		for {
			if next >= len(tokens) {
				return form{}, 0, errAt(zerr.New("unclosed paren"), name, t.line)
			}
			if tokens[next].kind == tokClose {
				return form{kind: formList, kids: kids, line: t.line}, next + 1, nil
			}
			kid, n, err := parseForm(name, tokens, next)
			if err != nil {
				return form{}, 0, err
			}
			kids = append(kids, kid)
			next = n
		}
	}
	return form{}, 0, errAt(zerr.New("unexpected token"), name, t.line)
}

func errAt(err error, name string, line int) error {
	return zerr.With(zerr.With(err, "module", name), "line", line)
}

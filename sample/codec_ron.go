package sample

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// The .ron codec is a small hand-rolled tokenizer plus recursive-descent
// parser, in the same two-stage shape as the teacher's token/parse
// split, reduced to the handful of productions a sample document needs:
// an unbracketed sequence of "key: value" entries, where a value is a
// bare identifier, a quoted string, true/false, or a bracketed,
// comma-separated list of values.

type ronTokenKind int

const (
	ronEOF ronTokenKind = iota
	ronIdent
	ronString
	ronTrue
	ronFalse
	ronColon
	ronComma
	ronLBracket
	ronRBracket
)

type ronToken struct {
	kind ronTokenKind
	text string
}

func tokenizeRON(src []byte) ([]ronToken, error) {
	var toks []ronToken
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '#':
			for i < n && src[i] != '\n' {
				i++
			}
		case c == ':':
			toks = append(toks, ronToken{kind: ronColon})
			i++
		case c == ',':
			toks = append(toks, ronToken{kind: ronComma})
			i++
		case c == '[':
			toks = append(toks, ronToken{kind: ronLBracket})
			i++
		case c == ']':
			toks = append(toks, ronToken{kind: ronRBracket})
			i++
		case c == '"':
			j := i + 1
			for j < n && src[j] != '"' {
				if src[j] == '\\' {
					j++
				}
				j++
			}
			if j >= n {
				return nil, fmt.Errorf("unterminated string at offset %d", i)
			}
			s, err := strconv.Unquote(string(src[i : j+1]))
			if err != nil {
				return nil, fmt.Errorf("bad string at offset %d: %w", i, err)
			}
			toks = append(toks, ronToken{kind: ronString, text: s})
			i = j + 1
		default:
			r, sz := utf8.DecodeRune(src[i:])
			if !unicode.IsLetter(r) && r != '_' {
				return nil, fmt.Errorf("unexpected byte %q at offset %d", c, i)
			}
			start := i
			for i < n {
				r, sz := utf8.DecodeRune(src[i:])
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
					break
				}
				i += sz
			}
			word := string(src[start:i])
			switch word {
			case "true":
				toks = append(toks, ronToken{kind: ronTrue})
			case "false":
				toks = append(toks, ronToken{kind: ronFalse})
			default:
				toks = append(toks, ronToken{kind: ronIdent, text: word})
			}
			_ = sz
		}
	}
	toks = append(toks, ronToken{kind: ronEOF})
	return toks, nil
}

type ronParser struct {
	toks []ronToken
	pos  int
}

func (p *ronParser) peek() ronToken { return p.toks[p.pos] }

func (p *ronParser) next() ronToken {
	t := p.toks[p.pos]
	if t.kind != ronEOF {
		p.pos++
	}
	return t
}

func (p *ronParser) expect(k ronTokenKind) (ronToken, error) {
	t := p.next()
	if t.kind != k {
		return t, fmt.Errorf("unexpected token at position %d", p.pos)
	}
	return t, nil
}

func decodeRON(src []byte) (doc, error) {
	toks, err := tokenizeRON(src)
	if err != nil {
		return doc{}, err
	}
	p := &ronParser{toks: toks}
	var d doc
	for p.peek().kind != ronEOF {
		key, err := p.expect(ronIdent)
		if err != nil {
			return doc{}, err
		}
		if _, err := p.expect(ronColon); err != nil {
			return doc{}, err
		}
		switch key.text {
		case "var_names":
			names, err := p.parseStringList()
			if err != nil {
				return doc{}, err
			}
			d.VarNames = names
		case "positive_traces":
			traces, err := p.parseTraceList()
			if err != nil {
				return doc{}, err
			}
			d.PositiveTraces = traces
		case "negative_traces":
			traces, err := p.parseTraceList()
			if err != nil {
				return doc{}, err
			}
			d.NegativeTraces = traces
		default:
			return doc{}, fmt.Errorf("unknown key %q", key.text)
		}
		if p.peek().kind == ronComma {
			p.next()
		}
	}
	return d, nil
}

// parseStringList parses [ident_or_string, ...].
func (p *ronParser) parseStringList() ([]string, error) {
	if _, err := p.expect(ronLBracket); err != nil {
		return nil, err
	}
	var out []string
	for p.peek().kind != ronRBracket {
		t := p.next()
		switch t.kind {
		case ronIdent, ronString:
			out = append(out, t.text)
		default:
			return nil, fmt.Errorf("expected a variable name, got token kind %d", t.kind)
		}
		if p.peek().kind == ronComma {
			p.next()
		}
	}
	p.next() // ]
	return out, nil
}

// parseTraceList parses [ [[bool,...],...], ... ], one entry per trace.
func (p *ronParser) parseTraceList() ([][][]bool, error) {
	if _, err := p.expect(ronLBracket); err != nil {
		return nil, err
	}
	var traces [][][]bool
	for p.peek().kind != ronRBracket {
		tr, err := p.parseTrace()
		if err != nil {
			return nil, err
		}
		traces = append(traces, tr)
		if p.peek().kind == ronComma {
			p.next()
		}
	}
	p.next() // ]
	return traces, nil
}

func (p *ronParser) parseTrace() ([][]bool, error) {
	if _, err := p.expect(ronLBracket); err != nil {
		return nil, err
	}
	var steps [][]bool
	for p.peek().kind != ronRBracket {
		step, err := p.parseStep()
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
		if p.peek().kind == ronComma {
			p.next()
		}
	}
	p.next() // ]
	return steps, nil
}

func (p *ronParser) parseStep() ([]bool, error) {
	if _, err := p.expect(ronLBracket); err != nil {
		return nil, err
	}
	var vals []bool
	for p.peek().kind != ronRBracket {
		t := p.next()
		switch t.kind {
		case ronTrue:
			vals = append(vals, true)
		case ronFalse:
			vals = append(vals, false)
		default:
			return nil, fmt.Errorf("expected true/false, got token kind %d", t.kind)
		}
		if p.peek().kind == ronComma {
			p.next()
		}
	}
	p.next() // ]
	return vals, nil
}

func encodeRON(d doc) ([]byte, error) {
	var buf bytes.Buffer
	if len(d.VarNames) > 0 {
		buf.WriteString("var_names: [")
		for i, name := range d.VarNames {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%q", name)
		}
		buf.WriteString("]\n")
	}
	writeTraces := func(key string, traces [][][]bool) {
		fmt.Fprintf(&buf, "%s: [\n", key)
		for _, tr := range traces {
			buf.WriteString("  [")
			for i, step := range tr {
				if i > 0 {
					buf.WriteString(", ")
				}
				buf.WriteString("[")
				for j, b := range step {
					if j > 0 {
						buf.WriteString(", ")
					}
					buf.WriteString(strconv.FormatBool(b))
				}
				buf.WriteString("]")
			}
			buf.WriteString("],\n")
		}
		buf.WriteString("]\n")
	}
	writeTraces("positive_traces", d.PositiveTraces)
	writeTraces("negative_traces", d.NegativeTraces)
	return buf.Bytes(), nil
}

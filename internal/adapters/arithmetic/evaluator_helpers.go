package arithmetic

import (
	"strconv"
	"strings"
	"unicode"
)

func hasOnlyArithmeticChars(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case strings.ContainsRune(".+-*/()", r):
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return true
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// parser holds the cursor into whitespace-free input. Every production
// reports failure through its bool result instead of panicking.
type parser struct {
	input string
	pos   int
	depth int
}

func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *parser) parseExpr() (float64, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return 0, false
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, true
		}
		p.pos++
		right, ok := p.parseTerm()
		if !ok {
			return 0, false
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) parseTerm() (float64, bool) {
	left, ok := p.parseFactor()
	if !ok {
		return 0, false
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, true
		}
		p.pos++
		right, ok := p.parseFactor()
		if !ok {
			return 0, false
		}
		if op == '*' {
			left *= right
		} else {
			left /= right
		}
	}
}

func (p *parser) parseFactor() (float64, bool) {
	if p.depth >= maxDepth {
		return 0, false
	}
	p.depth++
	defer func() { p.depth-- }()

	switch p.peek() {
	case '-':
		p.pos++
		value, ok := p.parseFactor()
		if !ok {
			return 0, false
		}
		return -value, true
	case '(':
		p.pos++
		value, ok := p.parseExpr()
		if !ok || p.peek() != ')' {
			return 0, false
		}
		p.pos++
		return value, true
	default:
		return p.parseNumber()
	}
}

func (p *parser) parseNumber() (float64, bool) {
	start := p.pos
	if p.skipDigits() == 0 {
		return 0, false
	}
	if p.peek() == '.' {
		p.pos++
		if p.skipDigits() == 0 {
			return 0, false
		}
	}
	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func (p *parser) skipDigits() int {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	return p.pos - start
}

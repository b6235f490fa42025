package arithmetic

import (
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
)

// maxDepth bounds nested parentheses and unary minus.
const maxDepth = 256

/*
Evaluator evaluates the four basic operators, parentheses, unary minus and
decimal literals. It walks the grammar with an explicit cursor and folds
values while parsing; input is never handed to a general-purpose interpreter.

	expr   := term (('+' | '-') term)*
	term   := factor (('*' | '/') factor)*
	factor := '-' factor | '(' expr ')' | number
	number := digit+ ('.' digit+)?
*/
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() ports.ExpressionEvaluator {
	return &Evaluator{}
}

// Evaluate returns the value of expr and true, or false if expr contains a
// character outside the arithmetic whitelist or does not parse completely.
// Division by zero yields a non-finite value rather than an error.
func (e *Evaluator) Evaluate(expr string) (float64, bool) {
	if !hasOnlyArithmeticChars(expr) {
		return 0, false
	}

	p := &parser{input: stripWhitespace(expr)}
	value, ok := p.parseExpr()
	if !ok || p.pos != len(p.input) {
		return 0, false
	}
	return value, true
}

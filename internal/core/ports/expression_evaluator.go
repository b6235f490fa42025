package ports

/*
ExpressionEvaluator defines the contract for evaluating restricted arithmetic
from untrusted text. A false second return value means the text could not be
parsed. A true result may still be non-finite (e.g. division by zero).
*/
type ExpressionEvaluator interface {
	Evaluate(expr string) (float64, bool)
}

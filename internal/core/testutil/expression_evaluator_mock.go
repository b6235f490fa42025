package testutil

// MockExpressionEvaluator is a mock implementation of ports.ExpressionEvaluator.
type MockExpressionEvaluator struct {
	EvaluateFunc func(expr string) (float64, bool)
	Calls        []string
}

func (m *MockExpressionEvaluator) Evaluate(expr string) (float64, bool) {
	m.Calls = append(m.Calls, expr)
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(expr)
	}
	return 0, false
}

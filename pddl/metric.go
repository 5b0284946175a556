package pddl

type OptimizationMetricEnum int

const (
	Minimize OptimizationMetricEnum = iota
	Maximize
)

func (m OptimizationMetricEnum) String() string {
	if m == Minimize {
		return "minimize"
	}
	return "maximize"
}

type OptimizationMetric struct {
	base
	optimization OptimizationMetricEnum
	expression   FunctionExpression
}

func (m *OptimizationMetric) Optimization() OptimizationMetricEnum { return m.optimization }
func (m *OptimizationMetric) Expression() FunctionExpression       { return m.expression }

func (m *OptimizationMetric) computeHash() uint64 {
	return hashFields("metric", uint64(m.optimization), m.expression.Hash())
}

func (m *OptimizationMetric) StructurallyEqual(other *OptimizationMetric) bool {
	return m.optimization == other.optimization && m.expression == other.expression
}

func (m *OptimizationMetric) String() string { return Format(m) }

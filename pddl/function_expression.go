package pddl

import "strconv"

type BinaryOperatorEnum int

const (
	BinaryMul BinaryOperatorEnum = iota
	BinaryPlus
	BinaryMinus
	BinaryDiv
)

var binaryOperatorSymbols = [...]string{BinaryMul: "*", BinaryPlus: "+", BinaryMinus: "-", BinaryDiv: "/"}

func (op BinaryOperatorEnum) String() string { return binaryOperatorSymbols[op] }

// BinaryOperatorFromSymbol maps one of * + - / to its operator.
func BinaryOperatorFromSymbol(symbol string) (BinaryOperatorEnum, bool) {
	for op, s := range binaryOperatorSymbols {
		if s == symbol {
			return BinaryOperatorEnum(op), true
		}
	}
	return 0, false
}

// MultiOperatorEnum is the subset of operators that are associative and commutative
type MultiOperatorEnum int

const (
	MultiMul MultiOperatorEnum = iota
	MultiPlus
)

func (op MultiOperatorEnum) String() string {
	if op == MultiMul {
		return "*"
	}
	return "+"
}

// FunctionExpression is a numeric expression: FunctionExpressionNumber,
// FunctionExpressionBinaryOperator, FunctionExpressionMultiOperator,
// FunctionExpressionMinus or FunctionExpressionFunction.
type FunctionExpression interface {
	Node
	computeHash() uint64
	StructurallyEqual(other FunctionExpression) bool
	assign(id int, hash uint64)
	isFunctionExpression()
}

type FunctionExpressionNumber struct {
	base
	number float64
}

func (e *FunctionExpressionNumber) Number() float64     { return e.number }
func (*FunctionExpressionNumber) isFunctionExpression() {}

func (e *FunctionExpressionNumber) computeHash() uint64 {
	return hashFields("fexp-number", hashFloat(e.number))
}

func (e *FunctionExpressionNumber) StructurallyEqual(other FunctionExpression) bool {
	o, ok := other.(*FunctionExpressionNumber)
	return ok && e.number == o.number
}

func (e *FunctionExpressionNumber) String() string { return formatNumber(e.number) }

type FunctionExpressionBinaryOperator struct {
	base
	op          BinaryOperatorEnum
	left, right FunctionExpression
}

func (e *FunctionExpressionBinaryOperator) Operator() BinaryOperatorEnum { return e.op }
func (e *FunctionExpressionBinaryOperator) Left() FunctionExpression     { return e.left }
func (e *FunctionExpressionBinaryOperator) Right() FunctionExpression    { return e.right }
func (*FunctionExpressionBinaryOperator) isFunctionExpression()          {}

func (e *FunctionExpressionBinaryOperator) computeHash() uint64 {
	return hashFields("fexp-binary", uint64(e.op), e.left.Hash(), e.right.Hash())
}

func (e *FunctionExpressionBinaryOperator) StructurallyEqual(other FunctionExpression) bool {
	o, ok := other.(*FunctionExpressionBinaryOperator)
	return ok && e.op == o.op && e.left == o.left && e.right == o.right
}

func (e *FunctionExpressionBinaryOperator) String() string { return Format(e) }

// FunctionExpressionMultiOperator folds an associative operator over operands in any order.
type FunctionExpressionMultiOperator struct {
	base
	op       MultiOperatorEnum
	operands []FunctionExpression
}

func (e *FunctionExpressionMultiOperator) Operator() MultiOperatorEnum    { return e.op }
func (e *FunctionExpressionMultiOperator) Operands() []FunctionExpression { return e.operands }
func (*FunctionExpressionMultiOperator) isFunctionExpression()            {}

func (e *FunctionExpressionMultiOperator) computeHash() uint64 {
	return hashFields("fexp-multi", uint64(e.op), hashUnordered(e.operands))
}

func (e *FunctionExpressionMultiOperator) StructurallyEqual(other FunctionExpression) bool {
	o, ok := other.(*FunctionExpressionMultiOperator)
	return ok && e.op == o.op && equalUnordered(e.operands, o.operands)
}

func (e *FunctionExpressionMultiOperator) String() string { return Format(e) }

type FunctionExpressionMinus struct {
	base
	expr FunctionExpression
}

func (e *FunctionExpressionMinus) Expression() FunctionExpression { return e.expr }
func (*FunctionExpressionMinus) isFunctionExpression()            {}

func (e *FunctionExpressionMinus) computeHash() uint64 {
	return hashFields("fexp-minus", e.expr.Hash())
}

func (e *FunctionExpressionMinus) StructurallyEqual(other FunctionExpression) bool {
	o, ok := other.(*FunctionExpressionMinus)
	return ok && e.expr == o.expr
}

func (e *FunctionExpressionMinus) String() string { return Format(e) }

type FunctionExpressionFunction struct {
	base
	function *Function
}

func (e *FunctionExpressionFunction) Function() *Function { return e.function }
func (*FunctionExpressionFunction) isFunctionExpression() {}

func (e *FunctionExpressionFunction) computeHash() uint64 {
	return hashFields("fexp-function", e.function.Hash())
}

func (e *FunctionExpressionFunction) StructurallyEqual(other FunctionExpression) bool {
	o, ok := other.(*FunctionExpressionFunction)
	return ok && e.function == o.function
}

func (e *FunctionExpressionFunction) String() string { return Format(e.function) }

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

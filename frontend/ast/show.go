package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Show renders node back as PDDL-like text, mostly for logging and test failures
func Show(node Node) string {
	ctx := &showContext{Builder: &strings.Builder{}}
	ctx.show(node)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
}

func (ctx *showContext) list(head string, items ...func()) {
	ctx.WriteString("(")
	ctx.WriteString(head)
	for _, item := range items {
		ctx.WriteString(" ")
		item()
	}
	ctx.WriteString(")")
}

func (ctx *showContext) each(nodes []Node) []func() {
	items := make([]func(), len(nodes))
	for i, n := range nodes {
		items[i] = func() { ctx.show(n) }
	}
	return items
}

func (ctx *showContext) typedVariables(vars []TypedVariable) func() {
	return func() {
		ctx.WriteString("(")
		for i := range vars {
			if i > 0 {
				ctx.WriteString(" ")
			}
			ctx.show(&vars[i])
		}
		ctx.WriteString(")")
	}
}

func (ctx *showContext) typeSuffix(spec *TypeSpec) {
	if spec == nil {
		return
	}
	ctx.WriteString(" - ")
	ctx.show(spec)
}

func (ctx *showContext) show(node Node) {
	if node == nil {
		ctx.WriteString("nil")
		return
	}
	switch n := node.(type) {
	case *Name:
		ctx.WriteString(n.Value)
	case *Variable:
		ctx.WriteString(n.Value)
	case *Number:
		ctx.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *TypeSpec:
		if !n.Either {
			ctx.WriteString(n.Names[0].Value)
			return
		}
		ctx.WriteString("(either")
		for _, name := range n.Names {
			ctx.WriteString(" " + name.Value)
		}
		ctx.WriteString(")")
	case *TypedName:
		ctx.WriteString(n.Value)
		ctx.typeSuffix(n.Type)
	case *TypedVariable:
		ctx.WriteString(n.Value)
		ctx.typeSuffix(n.Type)
	case *Requirement:
		ctx.WriteString(n.Keyword)
	case *AtomicFormulaSkeleton:
		ctx.WriteString("(" + n.Name.Value)
		for i := range n.Parameters {
			ctx.WriteString(" ")
			ctx.show(&n.Parameters[i])
		}
		ctx.WriteString(")")
	case *FunctionSkeleton:
		ctx.WriteString("(" + n.Name.Value)
		for i := range n.Parameters {
			ctx.WriteString(" ")
			ctx.show(&n.Parameters[i])
		}
		ctx.WriteString(")")
		ctx.typeSuffix(n.Type)
	case *AtomicFormula:
		ctx.list(n.Predicate.Value, ctx.each(toNodes(n.Terms))...)
	case *Literal:
		if n.Negated {
			ctx.list("not", func() { ctx.show(&n.Atom) })
			return
		}
		ctx.show(&n.Atom)
	case *FunctionTerm:
		ctx.list(n.Name.Value, ctx.each(toNodes(n.Terms))...)
	case *AtomGD:
		ctx.show(&n.AtomicFormula)
	case *AndGD:
		ctx.list("and", ctx.each(toNodes(n.Conditions))...)
	case *OrGD:
		ctx.list("or", ctx.each(toNodes(n.Conditions))...)
	case *NotGD:
		ctx.list("not", func() { ctx.show(n.Condition) })
	case *ImplyGD:
		ctx.list("imply", func() { ctx.show(n.Left) }, func() { ctx.show(n.Right) })
	case *ExistsGD:
		ctx.list("exists", ctx.typedVariables(n.Parameters), func() { ctx.show(n.Condition) })
	case *ForallGD:
		ctx.list("forall", ctx.typedVariables(n.Parameters), func() { ctx.show(n.Condition) })
	case *ComparisonGD:
		ctx.list(n.Comparator, func() { ctx.show(n.Left) }, func() { ctx.show(n.Right) })
	case *LiteralEffect:
		ctx.show(&n.Literal)
	case *AndEffect:
		ctx.list("and", ctx.each(toNodes(n.Effects))...)
	case *ForallEffect:
		ctx.list("forall", ctx.typedVariables(n.Parameters), func() { ctx.show(n.Effect) })
	case *WhenEffect:
		ctx.list("when", func() { ctx.show(n.Condition) }, func() { ctx.show(n.Effect) })
	case *NumericEffect:
		ctx.list(n.Operator, func() { ctx.show(&n.Function) }, func() { ctx.show(n.Value) })
	case *ObjectAssignEffect:
		ctx.list("assign", func() { ctx.show(&n.Function) }, func() { ctx.show(n.Value) })
	case *NumberFExp:
		ctx.show(&n.Number)
	case *OperatorFExp:
		ctx.list(n.Operator, ctx.each(toNodes(n.Operands))...)
	case *FunctionFExp:
		ctx.show(&n.FunctionTerm)
	case *NumericInit:
		ctx.list("=", func() { ctx.show(&n.Function) }, func() { ctx.show(&n.Value) })
	case *Action:
		ctx.WriteString("(:action " + n.Name.Value + " :parameters ")
		ctx.typedVariables(n.Parameters)()
		if n.Precondition != nil {
			ctx.WriteString(" :precondition ")
			ctx.show(n.Precondition)
		}
		if n.Effect != nil {
			ctx.WriteString(" :effect ")
			ctx.show(n.Effect)
		}
		ctx.WriteString(")")
	case *DerivedPredicate:
		ctx.list(":derived", func() { ctx.show(&n.Head) }, func() { ctx.show(n.Condition) })
	case *Metric:
		ctx.list(":metric "+n.Optimization, func() { ctx.show(n.Expression) })
	case *Domain:
		ctx.WriteString("(define (domain " + n.Name.Value + ") ...)")
	case *Problem:
		ctx.WriteString("(define (problem " + n.Name.Value + ") ...)")
	default:
		ctx.WriteString(fmt.Sprintf("<%T at %v>", node, RangeOf(node)))
	}
}

func toNodes[T Node](list []T) []Node {
	nodes := make([]Node, len(list))
	for i, n := range list {
		nodes[i] = n
	}
	return nodes
}

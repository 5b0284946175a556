package pddl

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type FormattingOptions struct {
	// Indent is the number of spaces in front of the current line
	Indent int
	// AddIndent is added to Indent for every nested block
	AddIndent int
}

var DefaultFormattingOptions = FormattingOptions{Indent: 0, AddIndent: 4}

func (o FormattingOptions) nested() FormattingOptions {
	return FormattingOptions{Indent: o.Indent + o.AddIndent, AddIndent: o.AddIndent}
}

// Write prints node as PDDL text that parses back to the same node.
func Write(w io.Writer, node Node, opts FormattingOptions) error {
	p := &printer{w: w}
	p.node(node, opts)
	return p.err
}

// Format is Write into a string with DefaultFormattingOptions.
func Format(node Node) string {
	sb := &strings.Builder{}
	_ = Write(sb, node, DefaultFormattingOptions)
	return sb.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(parts ...string) {
	for _, s := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) indent(opts FormattingOptions) {
	p.print(strings.Repeat(" ", opts.Indent))
}

func (p *printer) node(node Node, opts FormattingOptions) {
	switch n := node.(type) {
	case *Requirements:
		p.print("(:requirements")
		for _, r := range n.requirements {
			p.print(" ", r.String())
		}
		p.print(")")
	case *Type:
		p.print(n.name)
	case *Object:
		p.print(n.name)
	case *Variable:
		p.print(n.name)
	case *TermObject:
		p.print(n.object.name)
	case *TermVariable:
		p.print(n.variable.name)
	case *Parameter:
		p.print(n.variable.name)
		p.typeSuffix(n.types)
	case *Predicate:
		p.print("(", n.name)
		for _, param := range n.parameters {
			p.print(" ")
			p.node(param, opts)
		}
		p.print(")")
	case *Atom:
		application(p, n.predicate.name, n.terms)
	case *Literal:
		p.negated(n.negated, n.atom, opts)
	case *GroundAtom:
		application(p, n.predicate.name, n.objects)
	case *GroundLiteral:
		p.negated(n.negated, n.atom, opts)
	case *FunctionSkeleton:
		p.print("(", n.name)
		for _, param := range n.parameters {
			p.print(" ")
			p.node(param, opts)
		}
		p.print(") - ", n.typ.name)
	case *Function:
		application(p, n.skeleton.name, n.terms)
	case *NumericFluent:
		p.print("(= ")
		p.node(n.function, opts)
		p.print(" ", formatNumber(n.number), ")")
	case FunctionExpression:
		p.functionExpression(n, opts)
	case Condition:
		p.condition(n, opts)
	case Effect:
		p.effect(n, opts)
	case *OptimizationMetric:
		p.print("(:metric ", n.optimization.String(), " ")
		p.node(n.expression, opts)
		p.print(")")
	case *Action:
		p.action(n, opts)
	case *Axiom:
		p.axiom(n, opts)
	case *Domain:
		p.domain(n, opts)
	case *Problem:
		p.problem(n, opts)
	default:
		panic(errors.Errorf("cannot write node of type %T", node))
	}
}

func application[T Node](p *printer, name string, args []T) {
	p.print("(", name)
	for _, arg := range args {
		p.print(" ", arg.String())
	}
	p.print(")")
}

func (p *printer) negated(negated bool, atom Node, opts FormattingOptions) {
	if negated {
		p.print("(not ")
		p.node(atom, opts)
		p.print(")")
		return
	}
	p.node(atom, opts)
}

// typeSuffix prints the type of a typed-list entry, nothing for plain objects
func (p *printer) typeSuffix(types []*Type) {
	if isDefaultTyping(types) {
		return
	}
	p.print(" - ")
	if len(types) == 1 {
		p.print(types[0].name)
		return
	}
	p.print("(either")
	for _, t := range types {
		p.print(" ", t.name)
	}
	p.print(")")
}

func (p *printer) parameterList(params []*Parameter, opts FormattingOptions) {
	p.print("(")
	for i, param := range params {
		if i > 0 {
			p.print(" ")
		}
		p.node(param, opts)
	}
	p.print(")")
}

func (p *printer) functionExpression(expr FunctionExpression, opts FormattingOptions) {
	switch e := expr.(type) {
	case *FunctionExpressionNumber:
		p.print(formatNumber(e.number))
	case *FunctionExpressionBinaryOperator:
		p.print("(", e.op.String(), " ")
		p.node(e.left, opts)
		p.print(" ")
		p.node(e.right, opts)
		p.print(")")
	case *FunctionExpressionMultiOperator:
		p.print("(", e.op.String())
		for _, operand := range e.operands {
			p.print(" ")
			p.node(operand, opts)
		}
		p.print(")")
	case *FunctionExpressionMinus:
		p.print("(- ")
		p.node(e.expr, opts)
		p.print(")")
	case *FunctionExpressionFunction:
		p.node(e.function, opts)
	default:
		panic(errors.Errorf("unexpected function expression %T", expr))
	}
}

func (p *printer) condition(cond Condition, opts FormattingOptions) {
	switch c := cond.(type) {
	case *ConditionLiteral:
		p.node(c.literal, opts)
	case *ConditionAnd:
		junction(p, "and", c.conditions, opts)
	case *ConditionOr:
		junction(p, "or", c.conditions, opts)
	case *ConditionNot:
		p.print("(not ")
		p.node(c.condition, opts)
		p.print(")")
	case *ConditionImply:
		p.print("(imply ")
		p.node(c.left, opts)
		p.print(" ")
		p.node(c.right, opts)
		p.print(")")
	case *ConditionExists:
		p.quantified("exists", c.parameters, c.condition, opts)
	case *ConditionForall:
		p.quantified("forall", c.parameters, c.condition, opts)
	default:
		panic(errors.Errorf("unexpected condition %T", cond))
	}
}

func (p *printer) effect(eff Effect, opts FormattingOptions) {
	switch e := eff.(type) {
	case *EffectLiteral:
		p.node(e.literal, opts)
	case *EffectAnd:
		junction(p, "and", e.effects, opts)
	case *EffectNumeric:
		p.print("(", e.op.String(), " ")
		p.node(e.function, opts)
		p.print(" ")
		p.node(e.expression, opts)
		p.print(")")
	case *EffectConditionalForall:
		p.quantified("forall", e.parameters, e.effect, opts)
	case *EffectConditionalWhen:
		p.print("(when ")
		p.node(e.condition, opts)
		p.print(" ")
		p.node(e.effect, opts)
		p.print(")")
	default:
		panic(errors.Errorf("unexpected effect %T", eff))
	}
}

func junction[T Node](p *printer, keyword string, members []T, opts FormattingOptions) {
	p.print("(", keyword)
	for _, m := range members {
		p.print(" ")
		p.node(m, opts)
	}
	p.print(")")
}

func (p *printer) quantified(keyword string, params []*Parameter, body Node, opts FormattingOptions) {
	p.print("(", keyword, " ")
	p.parameterList(params, opts)
	p.print(" ")
	p.node(body, opts)
	p.print(")")
}

func (p *printer) action(a *Action, opts FormattingOptions) {
	nested := opts.nested()
	p.print("(:action ", a.name, "\n")
	p.indent(nested)
	p.print(":parameters ")
	p.parameterList(a.parameters, nested)
	if a.condition != nil {
		p.print("\n")
		p.indent(nested)
		p.print(":precondition ")
		p.node(a.condition, nested)
	}
	if a.effect != nil {
		p.print("\n")
		p.indent(nested)
		p.print(":effect ")
		p.node(a.effect, nested)
	}
	p.print(")")
}

func (p *printer) axiom(a *Axiom, opts FormattingOptions) {
	p.print("(:derived (", a.literal.atom.predicate.name)
	for _, param := range a.parameters {
		p.print(" ")
		p.node(param, opts)
	}
	p.print(") ")
	p.node(a.condition, opts)
	p.print(")")
}

// typedList prints names grouped by their types, in order of first appearance.
// Untyped names go last, a later '- type' suffix would apply to them otherwise.
func typedList[T Node](p *printer, members []T, typesOf func(T) []*Type) {
	const untyped = "untyped"
	var order []string
	groups := map[string][]T{}
	for _, m := range members {
		key := untyped
		if !isDefaultTyping(typesOf(m)) {
			key = typesKey(typesOf(m))
		}
		if _, ok := groups[key]; !ok && key != untyped {
			order = append(order, key)
		}
		groups[key] = append(groups[key], m)
	}
	if _, ok := groups[untyped]; ok {
		order = append(order, untyped)
	}
	for i, key := range order {
		if i > 0 {
			p.print(" ")
		}
		group := groups[key]
		for j, m := range group {
			if j > 0 {
				p.print(" ")
			}
			p.print(m.String())
		}
		p.typeSuffix(typesOf(group[0]))
	}
}

func typesKey(types []*Type) string {
	sb := strings.Builder{}
	for _, t := range SortedByIdentifier(types) {
		sb.WriteString(strconv.Itoa(t.Identifier()))
		sb.WriteByte(',')
	}
	return sb.String()
}

func (p *printer) section(opts FormattingOptions, body func()) {
	p.print("\n")
	p.indent(opts)
	body()
}

func (p *printer) domain(d *Domain, opts FormattingOptions) {
	nested := opts.nested()
	p.print("(define (domain ", d.name, ")")
	p.section(nested, func() { p.node(d.requirements, nested) })
	if len(d.types) > 0 {
		p.section(nested, func() {
			p.print("(:types ")
			typedList(p, d.types, (*Type).Bases)
			p.print(")")
		})
	}
	if len(d.constants) > 0 {
		p.section(nested, func() {
			p.print("(:constants ")
			typedList(p, d.constants, (*Object).Types)
			p.print(")")
		})
	}
	if len(d.predicates) > 0 {
		p.section(nested, func() {
			p.print("(:predicates")
			for _, pred := range d.predicates {
				p.print(" ")
				p.node(pred, nested)
			}
			p.print(")")
		})
	}
	if len(d.functions) > 0 {
		p.section(nested, func() {
			p.print("(:functions")
			for _, f := range d.functions {
				p.print(" ")
				p.node(f, nested)
			}
			p.print(")")
		})
	}
	for _, a := range d.actions {
		p.section(nested, func() { p.node(a, nested) })
	}
	for _, a := range d.axioms {
		p.section(nested, func() { p.node(a, nested) })
	}
	p.print("\n")
	p.indent(opts)
	p.print(")")
}

func (p *printer) problem(pr *Problem, opts FormattingOptions) {
	nested := opts.nested()
	p.print("(define (problem ", pr.name, ")")
	p.section(nested, func() { p.print("(:domain ", pr.domain.name, ")") })
	if len(pr.requirements.requirements) > 0 {
		p.section(nested, func() { p.node(pr.requirements, nested) })
	}
	if len(pr.objects) > 0 {
		p.section(nested, func() {
			p.print("(:objects ")
			typedList(p, pr.objects, (*Object).Types)
			p.print(")")
		})
	}
	if len(pr.initialLiterals)+len(pr.numericFluents) > 0 {
		p.section(nested, func() {
			p.print("(:init")
			for _, l := range pr.initialLiterals {
				p.print(" ")
				p.node(l, nested)
			}
			for _, f := range pr.numericFluents {
				p.print(" ")
				p.node(f, nested)
			}
			p.print(")")
		})
	}
	if pr.goal != nil {
		p.section(nested, func() {
			p.print("(:goal ")
			p.node(pr.goal, nested)
			p.print(")")
		})
	}
	if pr.metric != nil {
		p.section(nested, func() { p.node(pr.metric, nested) })
	}
	for _, a := range pr.axioms {
		p.section(nested, func() { p.node(a, nested) })
	}
	p.print("\n")
	p.indent(opts)
	p.print(")")
}

package parser

import (
	"strconv"

	"github.com/Timisorean/Loki/frontend/ast"
)

func (p *parser) name(e *sexpr, what string) ast.Name {
	if e.isList || e.tok.kind != tokenName {
		p.fail(p.exprRange(e), "", "expected %s, found '%s'", what, e)
	}
	return ast.Name{Range: p.exprRange(e), Value: e.tok.text}
}

func (p *parser) variable(e *sexpr) ast.Variable {
	if e.isList || e.tok.kind != tokenVariable {
		p.fail(p.exprRange(e), "variables start with '?'", "expected a variable, found '%s'", e)
	}
	return ast.Variable{Range: p.exprRange(e), Value: e.tok.text}
}

func (p *parser) number(e *sexpr) ast.Number {
	if e.isList || e.tok.kind != tokenNumber {
		p.fail(p.exprRange(e), "", "expected a number, found '%s'", e)
	}
	value, err := strconv.ParseFloat(e.tok.text, 64)
	if err != nil {
		p.fail(p.exprRange(e), "", "invalid number '%s'", e.tok.text)
	}
	return ast.Number{Range: p.exprRange(e), Value: value}
}

func (p *parser) term(e *sexpr) ast.Term {
	if !e.isList {
		switch e.tok.kind {
		case tokenName:
			name := p.name(e, "a term")
			return &name
		case tokenVariable:
			variable := p.variable(e)
			return &variable
		}
	}
	p.fail(p.exprRange(e), "", "expected an object or a variable, found '%s'", e)
	return nil
}

func (p *parser) terms(items []*sexpr) []ast.Term {
	terms := make([]ast.Term, len(items))
	for i, item := range items {
		terms[i] = p.term(item)
	}
	return terms
}

// list checks that e is a list starting with keyword and returns the remaining items
func (p *parser) list(e *sexpr, keyword string) []*sexpr {
	if head, ok := e.headName(); !ok || head != keyword {
		p.fail(p.exprRange(e), "", "expected '(%s ...)'", keyword)
	}
	return e.items[1:]
}

func (p *parser) arity(e *sexpr, args []*sexpr, expected int) {
	if len(args) != expected {
		head, _ := e.headName()
		p.fail(p.exprRange(e), "", "'%s' takes %d arguments, found %d", head, expected, len(args))
	}
}

func (p *parser) typeSpec(e *sexpr) *ast.TypeSpec {
	if !e.isList {
		return &ast.TypeSpec{Range: p.exprRange(e), Names: []ast.Name{p.name(e, "a type")}}
	}
	alternatives := p.list(e, "either")
	if len(alternatives) == 0 {
		p.fail(p.exprRange(e), "", "'either' needs at least one type")
	}
	spec := &ast.TypeSpec{Range: p.exprRange(e), Either: true}
	for _, alt := range alternatives {
		spec.Names = append(spec.Names, p.name(alt, "a type"))
	}
	return spec
}

// typedList splits items of the form "a b - t c" into entries, the type of each
// entry being the one following the next '-', or nil if there is none
func typedList[T any](p *parser, items []*sexpr, entry func(*sexpr, *ast.TypeSpec) T) []T {
	var result []T
	var pending []*sexpr
	for i := 0; i < len(items); i++ {
		item := items[i]
		if item.isList || item.tok.kind != tokenName || item.tok.text != "-" {
			pending = append(pending, item)
			continue
		}
		if len(pending) == 0 {
			p.fail(p.exprRange(item), "", "'-' must follow at least one name")
		}
		if i+1 >= len(items) {
			p.fail(p.exprRange(item), "", "expected a type after '-'")
		}
		i++
		spec := p.typeSpec(items[i])
		for _, e := range pending {
			result = append(result, entry(e, spec))
		}
		pending = nil
	}
	for _, e := range pending {
		result = append(result, entry(e, nil))
	}
	return result
}

func (p *parser) typedNames(items []*sexpr) []ast.TypedName {
	return typedList(p, items, func(e *sexpr, spec *ast.TypeSpec) ast.TypedName {
		return ast.TypedName{Name: p.name(e, "a name"), Type: spec}
	})
}

func (p *parser) typedVariables(items []*sexpr) []ast.TypedVariable {
	return typedList(p, items, func(e *sexpr, spec *ast.TypeSpec) ast.TypedVariable {
		return ast.TypedVariable{Variable: p.variable(e), Type: spec}
	})
}

func (p *parser) parameterList(e *sexpr) []ast.TypedVariable {
	if !e.isList {
		p.fail(p.exprRange(e), "", "expected a parameter list, found '%s'", e)
	}
	return p.typedVariables(e.items)
}

func (p *parser) atomicFormulaSkeleton(e *sexpr) ast.AtomicFormulaSkeleton {
	if !e.isList || len(e.items) == 0 {
		p.fail(p.exprRange(e), "", "expected '(name ?x ...)'")
	}
	return ast.AtomicFormulaSkeleton{
		Range:      p.exprRange(e),
		Name:       p.name(e.items[0], "a predicate name"),
		Parameters: p.typedVariables(e.items[1:]),
	}
}

func (p *parser) functionSkeletons(items []*sexpr) []ast.FunctionSkeleton {
	return typedList(p, items, func(e *sexpr, spec *ast.TypeSpec) ast.FunctionSkeleton {
		skeleton := p.atomicFormulaSkeleton(e)
		return ast.FunctionSkeleton{
			Range:      skeleton.Range,
			Name:       skeleton.Name,
			Parameters: skeleton.Parameters,
			Type:       spec,
		}
	})
}

func (p *parser) atomicFormula(e *sexpr) ast.AtomicFormula {
	if !e.isList || len(e.items) == 0 {
		p.fail(p.exprRange(e), "", "expected an atomic formula '(name t ...)', found '%s'", e)
	}
	return ast.AtomicFormula{
		Range:     p.exprRange(e),
		Predicate: p.name(e.items[0], "a predicate name"),
		Terms:     p.terms(e.items[1:]),
	}
}

func (p *parser) literal(e *sexpr) ast.Literal {
	if head, ok := e.headName(); ok && head == "not" {
		args := e.items[1:]
		p.arity(e, args, 1)
		return ast.Literal{Range: p.exprRange(e), Negated: true, Atom: p.atomicFormula(args[0])}
	}
	return ast.Literal{Range: p.exprRange(e), Atom: p.atomicFormula(e)}
}

func (p *parser) functionTerm(e *sexpr) ast.FunctionTerm {
	if !e.isList {
		// a bare name stands for a function without arguments
		return ast.FunctionTerm{Range: p.exprRange(e), Name: p.name(e, "a function")}
	}
	if len(e.items) == 0 {
		p.fail(p.exprRange(e), "", "expected a function '(name t ...)'")
	}
	return ast.FunctionTerm{
		Range: p.exprRange(e),
		Name:  p.name(e.items[0], "a function name"),
		Terms: p.terms(e.items[1:]),
	}
}

var arithmeticOperators = map[string]bool{"+": true, "-": true, "*": true, "/": true}

func (p *parser) fexp(e *sexpr) ast.FExp {
	if !e.isList {
		if e.tok.kind == tokenNumber {
			return &ast.NumberFExp{Number: p.number(e)}
		}
		return &ast.FunctionFExp{FunctionTerm: p.functionTerm(e)}
	}
	if head, ok := e.headName(); ok && arithmeticOperators[head] {
		args := e.items[1:]
		if len(args) == 0 || head != "-" && len(args) < 2 {
			p.fail(p.exprRange(e), "", "too few operands for '%s'", head)
		}
		operands := make([]ast.FExp, len(args))
		for i, arg := range args {
			operands[i] = p.fexp(arg)
		}
		return &ast.OperatorFExp{Range: p.exprRange(e), Operator: head, Operands: operands}
	}
	return &ast.FunctionFExp{FunctionTerm: p.functionTerm(e)}
}

var comparators = map[string]bool{"<": true, ">": true, "<=": true, ">=": true, "=": true}

// isNumericComparison tells (= ?x ?y) apart from (= (f ?x) 3)
func isNumericComparison(head string, args []*sexpr) bool {
	if !comparators[head] {
		return false
	}
	if head != "=" {
		return true
	}
	for _, arg := range args {
		if arg.isList || arg.tok.kind == tokenNumber {
			return true
		}
	}
	return false
}

func (p *parser) gd(e *sexpr) ast.GD {
	head, ok := e.headName()
	if !ok {
		p.fail(p.exprRange(e), "", "expected a condition, found '%s'", e)
	}
	args := e.items[1:]
	r := p.exprRange(e)
	switch {
	case head == "and":
		return &ast.AndGD{Range: r, Conditions: p.gds(args)}
	case head == "or":
		return &ast.OrGD{Range: r, Conditions: p.gds(args)}
	case head == "not":
		p.arity(e, args, 1)
		return &ast.NotGD{Range: r, Condition: p.gd(args[0])}
	case head == "imply":
		p.arity(e, args, 2)
		return &ast.ImplyGD{Range: r, Left: p.gd(args[0]), Right: p.gd(args[1])}
	case head == "exists":
		p.arity(e, args, 2)
		return &ast.ExistsGD{Range: r, Parameters: p.parameterList(args[0]), Condition: p.gd(args[1])}
	case head == "forall":
		p.arity(e, args, 2)
		return &ast.ForallGD{Range: r, Parameters: p.parameterList(args[0]), Condition: p.gd(args[1])}
	case isNumericComparison(head, args):
		p.arity(e, args, 2)
		return &ast.ComparisonGD{Range: r, Comparator: head, Left: p.fexp(args[0]), Right: p.fexp(args[1])}
	}
	return &ast.AtomGD{AtomicFormula: p.atomicFormula(e)}
}

func (p *parser) gds(items []*sexpr) []ast.GD {
	gds := make([]ast.GD, len(items))
	for i, item := range items {
		gds[i] = p.gd(item)
	}
	return gds
}

// optionalGD returns nil for the empty condition ()
func (p *parser) optionalGD(e *sexpr) ast.GD {
	if e.isList && len(e.items) == 0 {
		return nil
	}
	return p.gd(e)
}

var assignOperators = map[string]bool{
	"assign": true, "scale-up": true, "scale-down": true, "increase": true, "decrease": true,
}

func (p *parser) effect(e *sexpr) ast.Effect {
	head, ok := e.headName()
	if !ok {
		p.fail(p.exprRange(e), "", "expected an effect, found '%s'", e)
	}
	args := e.items[1:]
	r := p.exprRange(e)
	switch {
	case head == "and":
		effects := make([]ast.Effect, len(args))
		for i, arg := range args {
			effects[i] = p.effect(arg)
		}
		return &ast.AndEffect{Range: r, Effects: effects}
	case head == "forall":
		p.arity(e, args, 2)
		return &ast.ForallEffect{Range: r, Parameters: p.parameterList(args[0]), Effect: p.effect(args[1])}
	case head == "when":
		p.arity(e, args, 2)
		return &ast.WhenEffect{Range: r, Condition: p.gd(args[0]), Effect: p.effect(args[1])}
	case assignOperators[head]:
		p.arity(e, args, 2)
		function := p.functionTerm(args[0])
		value := args[1]
		if head == "assign" && !value.isList && value.tok.kind != tokenNumber {
			return &ast.ObjectAssignEffect{Range: r, Function: function, Value: p.term(value)}
		}
		return &ast.NumericEffect{Range: r, Operator: head, Function: function, Value: p.fexp(value)}
	}
	return &ast.LiteralEffect{Literal: p.literal(e)}
}

func (p *parser) optionalEffect(e *sexpr) ast.Effect {
	if e.isList && len(e.items) == 0 {
		return nil
	}
	return p.effect(e)
}

func (p *parser) action(e *sexpr) ast.Action {
	args := p.list(e, ":action")
	if len(args) == 0 {
		p.fail(p.exprRange(e), "", "expected an action name")
	}
	action := ast.Action{Range: p.exprRange(e), Name: p.name(args[0], "an action name")}
	seen := map[string]bool{}
	for i := 1; i < len(args); i += 2 {
		keyword := p.name(args[i], "an action keyword")
		if i+1 >= len(args) {
			p.fail(keyword.Range, "", "'%s' is missing its value", keyword.Value)
		}
		if seen[keyword.Value] {
			p.fail(keyword.Range, "", "'%s' is given twice", keyword.Value)
		}
		seen[keyword.Value] = true
		value := args[i+1]
		switch keyword.Value {
		case ":parameters":
			action.Parameters = p.parameterList(value)
		case ":precondition":
			action.Precondition = p.optionalGD(value)
		case ":effect":
			action.Effect = p.optionalEffect(value)
		default:
			p.fail(keyword.Range, "expected :parameters, :precondition or :effect", "unknown action keyword '%s'", keyword.Value)
		}
	}
	return action
}

func (p *parser) derived(e *sexpr) ast.DerivedPredicate {
	args := p.list(e, ":derived")
	p.arity(e, args, 2)
	return ast.DerivedPredicate{
		Range:     p.exprRange(e),
		Head:      p.atomicFormulaSkeleton(args[0]),
		Condition: p.gd(args[1]),
	}
}

func section[T any](p *parser, e *sexpr, items []T) *ast.Section[T] {
	return &ast.Section[T]{Range: p.exprRange(e), Items: items}
}

// checkOnce fails if a section was already given
func checkOnce[T any](p *parser, e *sexpr, existing *ast.Section[T]) {
	if existing != nil {
		head, _ := e.headName()
		p.fail(p.exprRange(e), "", "section '%s' is given twice", head)
	}
}

func (p *parser) requirements(e *sexpr, args []*sexpr) *ast.Section[ast.Requirement] {
	reqs := make([]ast.Requirement, len(args))
	for i, arg := range args {
		name := p.name(arg, "a requirement")
		if len(name.Value) < 2 || name.Value[0] != ':' {
			p.fail(name.Range, "", "requirements start with ':', found '%s'", name.Value)
		}
		reqs[i] = ast.Requirement{Range: name.Range, Keyword: name.Value}
	}
	return section(p, e, reqs)
}

// definitionHeader checks (define (kind name) ...) and returns the name and the remaining sections
func (p *parser) definitionHeader(form *sexpr, kind string) (ast.Name, []*sexpr) {
	args := form.items[1:]
	if len(args) == 0 {
		p.fail(p.exprRange(form), "", "expected '(%s name)'", kind)
	}
	header := p.list(args[0], kind)
	if len(header) != 1 {
		p.fail(p.exprRange(args[0]), "", "expected '(%s name)'", kind)
	}
	return p.name(header[0], "a "+kind+" name"), args[1:]
}

func (p *parser) domain(form *sexpr) *ast.Domain {
	name, sections := p.definitionHeader(form, "domain")
	d := &ast.Domain{Range: p.exprRange(form), Name: name}
	for _, s := range sections {
		head, ok := s.headName()
		if !ok {
			p.fail(p.exprRange(s), "", "expected a domain section, found '%s'", s)
		}
		args := s.items[1:]
		switch head {
		case ":requirements":
			checkOnce(p, s, d.Requirements)
			d.Requirements = p.requirements(s, args)
		case ":types":
			checkOnce(p, s, d.Types)
			d.Types = section(p, s, p.typedNames(args))
		case ":constants":
			checkOnce(p, s, d.Constants)
			d.Constants = section(p, s, p.typedNames(args))
		case ":predicates":
			checkOnce(p, s, d.Predicates)
			skeletons := make([]ast.AtomicFormulaSkeleton, len(args))
			for i, arg := range args {
				skeletons[i] = p.atomicFormulaSkeleton(arg)
			}
			d.Predicates = section(p, s, skeletons)
		case ":functions":
			checkOnce(p, s, d.Functions)
			d.Functions = section(p, s, p.functionSkeletons(args))
		case ":action":
			d.Actions = append(d.Actions, p.action(s))
		case ":derived":
			d.Axioms = append(d.Axioms, p.derived(s))
		case ":durative-action", ":constraints":
			d.Unsupported = append(d.Unsupported, ast.Unsupported{Range: p.exprRange(s), Keyword: head})
		default:
			p.fail(p.exprRange(s.items[0]), "", "unknown domain section '%s'", head)
		}
	}
	return d
}

func (p *parser) initElement(e *sexpr) ast.Init {
	if head, ok := e.headName(); ok && head == "=" && len(e.items) == 3 && e.items[1].isList {
		return &ast.NumericInit{
			Range:    p.exprRange(e),
			Function: p.functionTerm(e.items[1]),
			Value:    p.number(e.items[2]),
		}
	}
	lit := p.literal(e)
	return &lit
}

func (p *parser) problem(form *sexpr) *ast.Problem {
	name, sections := p.definitionHeader(form, "problem")
	pr := &ast.Problem{Range: p.exprRange(form), Name: name}
	seenDomain, seenGoal := false, false
	for _, s := range sections {
		head, ok := s.headName()
		if !ok {
			p.fail(p.exprRange(s), "", "expected a problem section, found '%s'", s)
		}
		args := s.items[1:]
		switch head {
		case ":domain":
			if seenDomain {
				p.fail(p.exprRange(s), "", "section ':domain' is given twice")
			}
			p.arity(s, args, 1)
			pr.DomainName = p.name(args[0], "a domain name")
			seenDomain = true
		case ":requirements":
			checkOnce(p, s, pr.Requirements)
			pr.Requirements = p.requirements(s, args)
		case ":objects":
			checkOnce(p, s, pr.Objects)
			pr.Objects = section(p, s, p.typedNames(args))
		case ":init":
			checkOnce(p, s, pr.Init)
			elements := make([]ast.Init, 0, len(args))
			for _, arg := range args {
				if h, ok := arg.headName(); ok && h == "at" && len(arg.items) == 3 && arg.items[1].tok.kind == tokenNumber {
					pr.Unsupported = append(pr.Unsupported, ast.Unsupported{Range: p.exprRange(arg), Keyword: ":timed-initial-literals"})
					continue
				}
				elements = append(elements, p.initElement(arg))
			}
			pr.Init = section(p, s, elements)
		case ":goal":
			if seenGoal {
				p.fail(p.exprRange(s), "", "section ':goal' is given twice")
			}
			p.arity(s, args, 1)
			pr.Goal = p.optionalGD(args[0])
			seenGoal = true
		case ":metric":
			if pr.Metric != nil {
				p.fail(p.exprRange(s), "", "section ':metric' is given twice")
			}
			p.arity(s, args, 2)
			optimization := p.name(args[0], "'minimize' or 'maximize'")
			if optimization.Value != "minimize" && optimization.Value != "maximize" {
				p.fail(optimization.Range, "", "expected 'minimize' or 'maximize', found '%s'", optimization.Value)
			}
			pr.Metric = &ast.Metric{Range: p.exprRange(s), Optimization: optimization.Value, Expression: p.fexp(args[1])}
		case ":derived":
			pr.Axioms = append(pr.Axioms, p.derived(s))
		case ":constraints":
			pr.Unsupported = append(pr.Unsupported, ast.Unsupported{Range: p.exprRange(s), Keyword: head})
		default:
			p.fail(p.exprRange(s.items[0]), "", "unknown problem section '%s'", head)
		}
	}
	if !seenDomain {
		p.fail(pr.Range, "", "problem '%s' is missing its ':domain' section", name.Value)
	}
	return pr
}

package pddlerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/Timisorean/Loki/frontend/ast"
)

// DebugErrorPrinting makes errors include the frame that created them when printed
var DebugErrorPrinting = false

type ErrCode int

const (
	None ErrCode = iota
	Syntax
	UndefinedReference
	MultiDefinition
	ArityMismatch
	UndefinedRequirement
	NotSupported
	NotImplemented
	InvalidTypeHierarchy
	MismatchedDomain
)

// PDDLError is the error type of every user-facing failure while reading PDDL
type PDDLError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) PDDLError
	getStack() []byte
}

func FormatWithCode(e PDDLError) string {
	if DebugErrorPrinting && e.getStack() != nil {
		lines := strings.Split(string(e.getStack()), "\n")
		// lines[6] is the caller of New
		if len(lines) > 6 {
			return fmt.Sprintf("%s:(E%03d) %s", strings.TrimSpace(lines[6]), e.Code(), e.Error())
		}
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E PDDLError](err E) PDDLError {
	return err.withStack(debug.Stack())
}

type NewSyntax struct {
	ast.Positioner
	ParserMessage string
	Hint          string
	stack         []byte
}

func (e NewSyntax) Error() string {
	if e.Hint != "" {
		return e.ParserMessage + " (" + e.Hint + ")"
	}
	return e.ParserMessage
}
func (e NewSyntax) Code() ErrCode    { return Syntax }
func (e NewSyntax) getStack() []byte { return e.stack }
func (e NewSyntax) withStack(stack []byte) PDDLError {
	e.stack = stack
	return e
}

// Category names what kind of binding a name refers to
type Category string

const (
	CategoryType             Category = "type"
	CategoryObject           Category = "object"
	CategoryConstant         Category = "constant"
	CategoryVariable         Category = "variable"
	CategoryPredicate        Category = "predicate"
	CategoryDerivedPredicate Category = "derived predicate"
	CategoryFunction         Category = "function"
	CategoryAction           Category = "action"
	CategoryRequirement      Category = "requirement"
)

type NewUndefinedReference struct {
	ast.Positioner
	Category Category
	Name     string
	stack    []byte
}

func (e NewUndefinedReference) Error() string {
	return fmt.Sprintf("undefined %s '%s'", e.Category, e.Name)
}
func (e NewUndefinedReference) Code() ErrCode    { return UndefinedReference }
func (e NewUndefinedReference) getStack() []byte { return e.stack }
func (e NewUndefinedReference) withStack(stack []byte) PDDLError {
	e.stack = stack
	return e
}

// NewMultiDefinition reports a name that may only be bound once.
// Previous points at the first definition, it may be nil for predefined names.
type NewMultiDefinition struct {
	ast.Positioner
	Category Category
	Name     string
	Previous ast.Positioner
	stack    []byte
}

func (e NewMultiDefinition) Error() string {
	return fmt.Sprintf("%s '%s' is defined more than once", e.Category, e.Name)
}
func (e NewMultiDefinition) Code() ErrCode    { return MultiDefinition }
func (e NewMultiDefinition) getStack() []byte { return e.stack }
func (e NewMultiDefinition) withStack(stack []byte) PDDLError {
	e.stack = stack
	return e
}

type NewArityMismatch struct {
	ast.Positioner
	Category Category
	Name     string
	Expected int
	Actual   int
	stack    []byte
}

func (e NewArityMismatch) Error() string {
	return fmt.Sprintf("%s '%s' expects %d arguments, but %d were given", e.Category, e.Name, e.Expected, e.Actual)
}
func (e NewArityMismatch) Code() ErrCode    { return ArityMismatch }
func (e NewArityMismatch) getStack() []byte { return e.stack }
func (e NewArityMismatch) withStack(stack []byte) PDDLError {
	e.stack = stack
	return e
}

// NewUndefinedRequirement reports a construct used without declaring the requirement that enables it.
// Requirement lists every requirement that would enable Construct.
type NewUndefinedRequirement struct {
	ast.Positioner
	Construct   string
	Requirement []string
	stack       []byte
}

func (e NewUndefinedRequirement) Error() string {
	return fmt.Sprintf("'%s' requires %s to be declared", e.Construct, strings.Join(e.Requirement, " or "))
}
func (e NewUndefinedRequirement) Code() ErrCode    { return UndefinedRequirement }
func (e NewUndefinedRequirement) getStack() []byte { return e.stack }
func (e NewUndefinedRequirement) withStack(stack []byte) PDDLError {
	e.stack = stack
	return e
}

type NewNotSupported struct {
	ast.Positioner
	Construct string
	stack     []byte
}

func (e NewNotSupported) Error() string {
	return fmt.Sprintf("'%s' is not supported", e.Construct)
}
func (e NewNotSupported) Code() ErrCode    { return NotSupported }
func (e NewNotSupported) getStack() []byte { return e.stack }
func (e NewNotSupported) withStack(stack []byte) PDDLError {
	e.stack = stack
	return e
}

type NewNotImplemented struct {
	ast.Positioner
	Construct string
	stack     []byte
}

func (e NewNotImplemented) Error() string {
	return fmt.Sprintf("'%s' is not implemented yet", e.Construct)
}
func (e NewNotImplemented) Code() ErrCode    { return NotImplemented }
func (e NewNotImplemented) getStack() []byte { return e.stack }
func (e NewNotImplemented) withStack(stack []byte) PDDLError {
	e.stack = stack
	return e
}

// NewInvalidTypeHierarchy reports a type that is its own ancestor. Cycle lists the type names along the cycle.
type NewInvalidTypeHierarchy struct {
	ast.Positioner
	Cycle []string
	stack []byte
}

func (e NewInvalidTypeHierarchy) Error() string {
	return fmt.Sprintf("type hierarchy contains a cycle: %s", strings.Join(e.Cycle, " -> "))
}
func (e NewInvalidTypeHierarchy) Code() ErrCode    { return InvalidTypeHierarchy }
func (e NewInvalidTypeHierarchy) getStack() []byte { return e.stack }
func (e NewInvalidTypeHierarchy) withStack(stack []byte) PDDLError {
	e.stack = stack
	return e
}

type NewMismatchedDomain struct {
	ast.Positioner
	Expected string
	Actual   string
	stack    []byte
}

func (e NewMismatchedDomain) Error() string {
	return fmt.Sprintf("problem refers to domain '%s', but domain '%s' was given", e.Actual, e.Expected)
}
func (e NewMismatchedDomain) Code() ErrCode    { return MismatchedDomain }
func (e NewMismatchedDomain) getStack() []byte { return e.stack }
func (e NewMismatchedDomain) withStack(stack []byte) PDDLError {
	e.stack = stack
	return e
}

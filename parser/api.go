package parser

import (
	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/internal/log"
)

var logger = log.DefaultLogger.With("section", "parser")

// ParseDomain reads a (define (domain ...)) form from src.
// The returned error is a pddlerr.PDDLError with code pddlerr.Syntax.
func ParseDomain(src *pddlerr.Source) (domain *ast.Domain, err error) {
	p := newParser(src)
	defer p.recoverSyntaxError(&err)
	domain = p.domain(p.readDefinition())
	logger.Debug("parsed domain", "name", domain.Name.Value, "actions", len(domain.Actions))
	return domain, nil
}

// ParseProblem reads a (define (problem ...)) form from src.
func ParseProblem(src *pddlerr.Source) (problem *ast.Problem, err error) {
	p := newParser(src)
	defer p.recoverSyntaxError(&err)
	problem = p.problem(p.readDefinition())
	logger.Debug("parsed problem", "name", problem.Name.Value, "domain", problem.DomainName.Value)
	return problem, nil
}

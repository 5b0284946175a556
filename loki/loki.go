package loki

import (
	"go/token"
	"io"
	"io/fs"
	"testing/fstest"

	"github.com/Timisorean/Loki/frontend"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/internal/log"
	"github.com/Timisorean/Loki/parser"
	"github.com/Timisorean/Loki/pddl"
	"github.com/pkg/errors"
)

var logger = log.DefaultLogger.With("section", "loki")

// SourceError is a pddlerr.PDDLError together with the files its positions may point into.
// Error() prints it annotated with the offending source lines.
type SourceError struct {
	Err     pddlerr.PDDLError
	Sources []*pddlerr.Source
}

func (e *SourceError) Error() string { return pddlerr.FormatWithSource(e.Err, e.Sources...) }
func (e *SourceError) Unwrap() error { return e.Err }

// annotate turns PDDL errors into a *SourceError, other errors pass through
func annotate(err error, sources ...*pddlerr.Source) error {
	var pddlErr pddlerr.PDDLError
	if errors.As(err, &pddlErr) {
		return &SourceError{Err: pddlErr, Sources: sources}
	}
	return err
}

// Settings configure how a domain is loaded
type Settings struct {
	// Factories interns the nodes of the domain and its problems. Nil means fresh factories.
	Factories *pddl.Factories
}

// Domain is a parsed domain file. Problems are loaded against it with LoadProblem.
type Domain struct {
	domain *pddl.Domain
	parser *frontend.DomainParser
	fSet   *token.FileSet
}

func (d *Domain) Domain() *pddl.Domain               { return d.domain }
func (d *Domain) Factories() *pddl.Factories         { return d.parser.Factories() }
func (d *Domain) Positions() *frontend.PositionCache { return d.parser.Positions() }
func (d *Domain) Source() *pddlerr.Source            { return d.parser.Source() }
func (d *Domain) Write(w io.Writer, opts pddl.FormattingOptions) error {
	return pddl.Write(w, d.domain, opts)
}

// Problem is a parsed problem file together with the domain it was read against
type Problem struct {
	problem *pddl.Problem
	domain  *Domain
	parser  *frontend.ProblemParser
}

func (p *Problem) Problem() *pddl.Problem  { return p.problem }
func (p *Problem) Domain() *Domain         { return p.domain }
func (p *Problem) Source() *pddlerr.Source { return p.parser.Source() }
func (p *Problem) Write(w io.Writer, opts pddl.FormattingOptions) error {
	return pddl.Write(w, p.problem, opts)
}

func readFile(dir fs.FS, name string) ([]byte, error) {
	content, err := fs.ReadFile(dir, name)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return content, nil
}

// LoadDomain reads the domain file name from dir.
// Semantic and syntax errors are returned as a *SourceError.
func LoadDomain(dir fs.FS, name string, settings Settings) (*Domain, error) {
	content, err := readFile(dir, name)
	if err != nil {
		return nil, err
	}
	factories := settings.Factories
	if factories == nil {
		factories = pddl.NewFactories()
	}
	fSet := token.NewFileSet()
	src := pddlerr.NewSource(fSet, name, content)

	syntax, err := parser.ParseDomain(src)
	if err != nil {
		return nil, annotate(err, src)
	}
	p := frontend.NewDomainParser(factories, src)
	domain, err := p.Parse(syntax)
	if err != nil {
		return nil, annotate(err, src)
	}
	logger.Info("loaded domain", "file", name, "domain", domain.Name(), "actions", len(domain.Actions()))
	return &Domain{domain: domain, parser: p, fSet: fSet}, nil
}

// LoadProblem reads the problem file name from dir against d.
// Errors may point into both the problem and the domain file.
func (d *Domain) LoadProblem(dir fs.FS, name string) (*Problem, error) {
	content, err := readFile(dir, name)
	if err != nil {
		return nil, err
	}
	// the domain's file set keeps positions of both files apart
	src := pddlerr.NewSource(d.fSet, name, content)

	syntax, err := parser.ParseProblem(src)
	if err != nil {
		return nil, annotate(err, src)
	}
	p := frontend.NewProblemParser(d.parser, src)
	problem, err := p.Parse(syntax)
	if err != nil {
		return nil, annotate(err, src, d.Source())
	}
	logger.Info("loaded problem", "file", name, "problem", problem.Name(), "objects", len(problem.Objects()))
	return &Problem{problem: problem, domain: d, parser: p}, nil
}

const (
	inMemoryDomain  = "domain.pddl"
	inMemoryProblem = "problem.pddl"
)

// NewDomainFromBytes loads a domain held in memory, with fresh factories
func NewDomainFromBytes(data []byte) (*Domain, error) {
	return LoadDomain(fstest.MapFS{inMemoryDomain: {Data: data}}, inMemoryDomain, Settings{})
}

// NewProblemFromBytes loads a problem held in memory against d
func (d *Domain) NewProblemFromBytes(data []byte) (*Problem, error) {
	return d.LoadProblem(fstest.MapFS{inMemoryProblem: {Data: data}}, inMemoryProblem)
}

// Package fixture decodes a small YAML vocabulary for terms, named
// types, and constraint trees, so the demo CLI and data-driven tests can
// build internal/term.Term and internal/constraint.Tree values from a
// file instead of hand-written struct literals. This is not the
// surface-syntax parser — it has no grammar, no
// operator precedence, and no lexer; it is a structured data format for
// describing task fixtures directly, the same role gopkg.in/yaml.v3
// plays elsewhere for declarative test and task data.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sunholo/lambdacore/internal/constraint"
	"github.com/sunholo/lambdacore/internal/term"
	"github.com/sunholo/lambdacore/internal/typ"
)

// termDoc is the YAML shape of a term.Term: exactly one of var/app/abs.
type termDoc struct {
	Var *string `yaml:"var,omitempty"`
	App *appDoc `yaml:"app,omitempty"`
	Abs *absDoc `yaml:"abs,omitempty"`
}

type appDoc struct {
	Func termDoc `yaml:"func"`
	Arg  termDoc `yaml:"arg"`
}

type absDoc struct {
	Param string  `yaml:"param"`
	Body  termDoc `yaml:"body"`
}

func (d *termDoc) toTerm() (term.Term, error) {
	switch {
	case d.Var != nil:
		return &term.Var{Name: *d.Var}, nil
	case d.App != nil:
		f, err := d.App.Func.toTerm()
		if err != nil {
			return nil, err
		}
		x, err := d.App.Arg.toTerm()
		if err != nil {
			return nil, err
		}
		return &term.App{Func: f, Arg: x}, nil
	case d.Abs != nil:
		b, err := d.Abs.Body.toTerm()
		if err != nil {
			return nil, err
		}
		return &term.Abs{Param: d.Abs.Param, Body: b}, nil
	default:
		return nil, fmt.Errorf("fixture: empty term node")
	}
}

// LoadTerm reads a YAML-encoded term from path.
func LoadTerm(path string) (term.Term, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTerm(data)
}

// ParseTerm decodes a YAML-encoded term from data.
func ParseTerm(data []byte) (term.Term, error) {
	var d termDoc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return d.toTerm()
}

// namedTypeDoc is the YAML shape of a typ.NamedType: exactly one of
// var/arrow.
type namedTypeDoc struct {
	Var   *string   `yaml:"var,omitempty"`
	Arrow *arrowDoc `yaml:"arrow,omitempty"`
}

type arrowDoc struct {
	Dom namedTypeDoc `yaml:"dom"`
	Cod namedTypeDoc `yaml:"cod"`
}

func (d *namedTypeDoc) toNamedType() (typ.NamedType, error) {
	switch {
	case d.Var != nil:
		return &typ.NVar{Name: *d.Var}, nil
	case d.Arrow != nil:
		dom, err := d.Arrow.Dom.toNamedType()
		if err != nil {
			return nil, err
		}
		cod, err := d.Arrow.Cod.toNamedType()
		if err != nil {
			return nil, err
		}
		return &typ.NArrow{Dom: dom, Cod: cod}, nil
	default:
		return nil, fmt.Errorf("fixture: empty named-type node")
	}
}

// constraintDoc is the YAML shape of a constraint.Tree.
type constraintDoc struct {
	Var *constraintVarDoc `yaml:"var,omitempty"`
	App *constraintAppDoc `yaml:"app,omitempty"`
	Abs *constraintAbsDoc `yaml:"abs,omitempty"`
}

type constraintVarDoc struct {
	Type *namedTypeDoc `yaml:"type,omitempty"`
}

type constraintAppDoc struct {
	Func constraintDoc `yaml:"func"`
	Arg  constraintDoc `yaml:"arg"`
}

type constraintAbsDoc struct {
	Type *namedTypeDoc `yaml:"type,omitempty"`
	Body constraintDoc `yaml:"body"`
}

func (d *constraintDoc) toTree() (constraint.Tree, error) {
	switch {
	case d.Var != nil:
		ann, err := optionalAnn(d.Var.Type)
		if err != nil {
			return nil, err
		}
		return &constraint.Var{Ann: ann}, nil
	case d.App != nil:
		f, err := d.App.Func.toTree()
		if err != nil {
			return nil, err
		}
		x, err := d.App.Arg.toTree()
		if err != nil {
			return nil, err
		}
		return &constraint.App{Func: f, Arg: x}, nil
	case d.Abs != nil:
		ann, err := optionalAnn(d.Abs.Type)
		if err != nil {
			return nil, err
		}
		b, err := d.Abs.Body.toTree()
		if err != nil {
			return nil, err
		}
		return &constraint.Abs{Ann: ann, Body: b}, nil
	default:
		return nil, fmt.Errorf("fixture: empty constraint node")
	}
}

func optionalAnn(d *namedTypeDoc) (typ.NamedType, error) {
	if d == nil {
		return nil, nil
	}
	return d.toNamedType()
}

// LoadConstraint reads a YAML-encoded constraint tree from path.
func LoadConstraint(path string) (constraint.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConstraint(data)
}

// ParseConstraint decodes a YAML-encoded constraint tree from data.
func ParseConstraint(data []byte) (constraint.Tree, error) {
	var d constraintDoc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return d.toTree()
}

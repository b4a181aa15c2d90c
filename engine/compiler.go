// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"regexp"
	"strings"
	"text/template"

	"github.com/katalvlaran/numerus/capability"
)

// Unit is one compilation unit: the synthesized implementation of a single
// operation for a single element type. Source is the human-readable
// rendering that accompanies compile diagnostics; Build produces the
// executable implementation.
type Unit struct {
	Operation *Descriptor
	Type      capability.Type
	Source    string

	build func() (any, error)
}

// Build instantiates the implementation. Compilers call it at most once.
func (u *Unit) Build() (any, error) {
	if u.build == nil {
		return nil, errNoBuilder
	}

	return u.build()
}

var errNoBuilder = errors.New("unit has no builder")

// Compiler is the Runtime Compiler Adapter: it turns a Unit into an
// executable implementation or a diagnostic.
type Compiler interface {
	Compile(u *Unit) (any, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(u *Unit) (any, error)

// Compile implements Compiler.
func (f CompilerFunc) Compile(u *Unit) (any, error) { return f(u) }

// DirectCompiler builds units in-process by generic instantiation.
type DirectCompiler struct{}

// Compile implements Compiler.
func (DirectCompiler) Compile(u *Unit) (any, error) { return u.Build() }

// unitSource renders the synthesized unit. Required operators are listed in
// the order the descriptor checks them.
var unitSource = template.Must(template.New("unit").Parse(
	`// {{.Qualified}} specialized for {{.Type}}
// requires:{{range .Requires}} {{.Signature}}{{else}} none{{end}}
func {{.Name}}{{.Signature}}
`))

var typeParam = regexp.MustCompile(`\bT\b`)

// synthesize produces the source text of d specialized for t.
func synthesize(d *Descriptor, t capability.Type) string {
	var sb strings.Builder
	err := unitSource.Execute(&sb, struct {
		Qualified string
		Name      string
		Type      string
		Signature string
		Requires  []capability.Operator
	}{
		Qualified: d.QualifiedName(),
		Name:      d.Name,
		Type:      t.Name,
		Signature: typeParam.ReplaceAllLiteralString(d.Signature, t.Name),
		Requires:  d.Requires,
	})
	if err != nil {
		// The template is fixed and its data is plain strings.
		return d.QualifiedName() + "[" + t.Name + "]"
	}

	return sb.String()
}

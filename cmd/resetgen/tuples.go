package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

const maxTupleArity = 26

var tupleTemplate = template.Must(template.New("tuples").Parse(`// Code generated by resetgen. DO NOT EDIT.

package {{.Package}}
{{range .Tuples}}
// Tuple{{.N}} is a fixed-size aggregate of arity {{.N}} whose elements are all resettable.
type Tuple{{.N}}[{{.Params}} Resetter] struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}

// Reset resets each element in declared order.
func (t *Tuple{{.N}}[{{.Params}}]) Reset() {
	if t == nil {
		return
	}
{{- range .Fields}}
	t.{{.Name}}.Reset()
{{- end}}
}
{{end}}`))

type tupleField struct {
	Name string
	Type string
}

type tupleDef struct {
	N      int
	Params string
	Fields []tupleField
}

// generateTuples renders Tuple1 through TupleN for package pkg.
func generateTuples(pkg string, n int) ([]byte, error) {
	if n < 1 || n > maxTupleArity {
		return nil, fmt.Errorf("tuple arity %d out of range [1, %d]", n, maxTupleArity)
	}

	defs := make([]tupleDef, 0, n)
	for arity := 1; arity <= n; arity++ {
		d := tupleDef{N: arity}
		params := make([]string, 0, arity)
		for i := 0; i < arity; i++ {
			p := string(rune('A' + i))
			params = append(params, p)
			d.Fields = append(d.Fields, tupleField{Name: fmt.Sprintf("V%d", i), Type: p})
		}
		d.Params = strings.Join(params, ", ")
		defs = append(defs, d)
	}

	var buf bytes.Buffer
	err := tupleTemplate.Execute(&buf, struct {
		Package string
		Tuples  []tupleDef
	}{pkg, defs})
	if err != nil {
		return nil, fmt.Errorf("render tuples: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format tuples: %w", err)
	}

	return src, nil
}

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	genTag      = "//generate:reset"
	outFilename = "reset.gen.go"
)

// generateDir walks root and writes a reset.gen.go file into every package
// that declares at least one struct annotated with // generate:reset.
func generateDir(root string, log *zap.Logger) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata") {
			return filepath.SkipDir
		}

		return generatePackage(path, log)
	})
}

func generatePackage(dir string, log *zap.Logger) error {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go") && fi.Name() != outFilename
	}, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parse %s: %w", dir, err)
	}

	for name, pkg := range pkgs {
		files := make([]string, 0, len(pkg.Files))
		for fn := range pkg.Files {
			files = append(files, fn)
		}
		sort.Strings(files)

		parsed := make([]*ast.File, 0, len(files))
		for _, fn := range files {
			parsed = append(parsed, pkg.Files[fn])
		}

		src, n, err := generateResetMethods(name, parsed)
		if err != nil {
			return fmt.Errorf("generate %s: %w", dir, err)
		}
		if n == 0 {
			continue
		}

		out := filepath.Join(dir, outFilename)
		if err := os.WriteFile(out, src, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		log.Info("generated reset methods", zap.String("file", out), zap.Int("types", n))
	}

	return nil
}

// generateResetMethods returns the formatted source of Reset methods for every
// annotated struct in files, and how many were generated.
func generateResetMethods(pkg string, files []*ast.File) ([]byte, int, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by resetgen. DO NOT EDIT.\n\npackage %s\n", pkg)

	n := 0
	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !shouldGenerate(gd, ts) {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					continue
				}

				writeResetMethod(&buf, ts, st)
				n++
			}
		}
	}

	if n == 0 {
		return nil, 0, nil
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, 0, fmt.Errorf("format: %w", err)
	}

	return src, n, nil
}

func shouldGenerate(gd *ast.GenDecl, ts *ast.TypeSpec) bool {
	for _, doc := range []*ast.CommentGroup{gd.Doc, ts.Doc} {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			if strings.Contains(strings.ReplaceAll(c.Text, " ", ""), genTag) {
				return true
			}
		}
	}
	return false
}

func writeResetMethod(buf *bytes.Buffer, ts *ast.TypeSpec, st *ast.StructType) {
	recv := ts.Name.Name
	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		var names []string
		for _, f := range ts.TypeParams.List {
			for _, n := range f.Names {
				names = append(names, n.Name)
			}
		}
		recv += "[" + strings.Join(names, ", ") + "]"
	}

	fmt.Fprintf(buf, "\n// Reset empties %s in place and keeps its allocations.\n", ts.Name.Name)
	fmt.Fprintf(buf, "func (r *%s) Reset() {\n", recv)
	fmt.Fprintln(buf, "if r == nil {\nreturn\n}")
	writeFieldsReset(buf, "r", st.Fields)
	fmt.Fprintln(buf, "}")
}

// writeFieldsReset resets every field of the struct reached through accessor.
// Inline struct types are walked field by field.
func writeFieldsReset(buf *bytes.Buffer, accessor string, fields *ast.FieldList) {
	if fields == nil {
		return
	}
	for _, field := range fields.List {
		if len(field.Names) == 0 {
			// embedded
			writeResetLogic(buf, accessor+"."+embeddedName(field.Type), field.Type)
			continue
		}
		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			writeResetLogic(buf, accessor+"."+name.Name, field.Type)
		}
	}
}

func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	case *ast.Ident:
		return t.Name
	}
	return ""
}

func writeResetLogic(buf *bytes.Buffer, accessor string, expr ast.Expr) {
	switch t := expr.(type) {
	case *ast.Ident:
		switch t.Name {
		case "string":
			fmt.Fprintf(buf, "%s = \"\"\n", accessor)
		case "bool":
			fmt.Fprintf(buf, "%s = false\n", accessor)
		case "int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
			"float32", "float64", "complex64", "complex128", "byte", "rune":
			fmt.Fprintf(buf, "%s = 0\n", accessor)
		case "error", "any":
			fmt.Fprintf(buf, "%s = nil\n", accessor)
		default:
			fmt.Fprintf(buf, "%s.Reset()\n", accessor)
		}
	case *ast.ArrayType:
		if t.Len == nil {
			fmt.Fprintf(buf, "clear(%s)\n%s = %s[:0]\n", accessor, accessor, accessor)
		} else {
			fmt.Fprintf(buf, "clear(%s[:])\n", accessor)
		}
	case *ast.MapType:
		fmt.Fprintf(buf, "clear(%s)\n", accessor)
	case *ast.StructType:
		writeFieldsReset(buf, accessor, t.Fields)
	case *ast.StarExpr:
		fmt.Fprintf(buf, "if %s != nil {\n", accessor)
		writePointeeReset(buf, accessor, t.X)
		fmt.Fprintln(buf, "}")
	case *ast.InterfaceType, *ast.FuncType, *ast.ChanType:
		fmt.Fprintf(buf, "%s = nil\n", accessor)
	case *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
		fmt.Fprintf(buf, "%s.Reset()\n", accessor)
	}
}

// writePointeeReset resets the value behind a non-nil pointer field. Named
// types go through their Reset method, everything else is reset through a
// dereference.
func writePointeeReset(buf *bytes.Buffer, accessor string, expr ast.Expr) {
	if id, ok := expr.(*ast.Ident); ok && !isBuiltin(id.Name) {
		fmt.Fprintf(buf, "%s.Reset()\n", accessor)
		return
	}
	switch expr.(type) {
	case *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
		fmt.Fprintf(buf, "%s.Reset()\n", accessor)
		return
	}
	writeResetLogic(buf, "(*"+accessor+")", expr)
}

func isBuiltin(name string) bool {
	switch name {
	case "string", "bool", "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128", "byte", "rune",
		"error", "any":
		return true
	}
	return false
}

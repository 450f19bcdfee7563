// Package checks содержит анализаторы проекта для staticlint.
package checks

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// NoExit запрещает прямой вызов os.Exit в функции main пакета main.
var NoExit = &analysis.Analyzer{
	Name: "noexit",
	Doc:  "запрещает использовать os.Exit в функции main пакета main",
	Run:  runNoExit,
}

func runNoExit(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "main" || fn.Recv != nil || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				if isPkgFunc(pass, call.Fun, "os", "Exit") {
					pass.Reportf(call.Pos(), "вызов os.Exit в функции main запрещён")
				}
				return true
			})
		}
	}
	return nil, nil
}

// isPkgFunc сообщает, ссылается ли выражение на функцию name пакета pkgPath.
func isPkgFunc(pass *analysis.Pass, expr ast.Expr, pkgPath, name string) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != name {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == pkgPath
}

package checks

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// TransportPackage пакет, которому разрешено работать с net/http напрямую.
const TransportPackage = "transport"

var rawHTTPFuncs = map[string]bool{
	"Get":      true,
	"Post":     true,
	"Head":     true,
	"PostForm": true,
}

// RawHTTP запрещает http.Get/Post/Head/PostForm и http.DefaultClient
// вне пакета transport: все запросы к API идут через transport.Transport.
var RawHTTP = &analysis.Analyzer{
	Name: "rawhttp",
	Doc:  "запрещает http.Get, http.Post, http.Head, http.PostForm и http.DefaultClient вне пакета transport",
	Run:  runRawHTTP,
}

func runRawHTTP(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == TransportPackage {
		return nil, nil
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			obj := pass.TypesInfo.Uses[sel.Sel]
			if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != "net/http" {
				return true
			}

			switch obj := obj.(type) {
			case *types.Func:
				if obj.Type().(*types.Signature).Recv() == nil && rawHTTPFuncs[obj.Name()] {
					pass.Reportf(sel.Pos(), "вызов http.%s запрещён, используйте transport.Transport", obj.Name())
				}
			case *types.Var:
				if obj.Name() == "DefaultClient" {
					pass.Reportf(sel.Pos(), "http.DefaultClient запрещён, используйте transport.Transport")
				}
			}
			return true
		})
	}
	return nil, nil
}

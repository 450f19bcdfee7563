package checks_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/Totarae/googl/cmd/staticlint/checks"
)

func TestNoExit(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), checks.NoExit, "exits")
}

func TestRawHTTP(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), checks.RawHTTP, "rawcalls", "transport")
}

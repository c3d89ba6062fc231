package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/whyleloop/whyleloop-go/cmd/linter/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}

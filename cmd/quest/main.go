// Command quest is the minimal host binary for Quest scripts: it runs a
// given .q file to completion and reports any uncaught exception, the same
// top-level shape as the teacher's cmd/funxy/main.go boiled down to the
// one entry point spec.md places in scope (evaluate_script_file).
package main

import (
	"fmt"
	"os"

	"github.com/quest-lang/quest/internal/config"
	"github.com/quest-lang/quest/pkg/embed"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: quest <script%s>\n", config.SourceFileExt)
		os.Exit(2)
	}

	path := os.Args[1]
	result := embed.EvaluateScriptFile(path, os.Args[2:])
	if result.Exception != nil {
		fmt.Fprintln(os.Stderr, embed.FormatUncaught(result.Exception))
		os.Exit(1)
	}
}

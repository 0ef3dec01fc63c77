// Package deobfuscate is the root entry point: Deobfuscate(source) runs the
// full parse -> discover -> rewrite -> print pipeline implemented across
// jsparse, discover, rewrite, and pipeline.
package deobfuscate

import (
	"github.com/guapier/jsdeobfuscator/jsparse"
	"github.com/guapier/jsdeobfuscator/pipeline"
	"github.com/guapier/jsdeobfuscator/stats"
)

// Stats re-exports the run-statistics record for callers that only import
// this root package.
type Stats = stats.Stats

// Deobfuscate runs the full pipeline over source and returns the rewritten
// source. It is synchronous, total for any input the parser accepts, and
// independent across calls: no shared state, so concurrent callers need no
// synchronization.
func Deobfuscate(source string) (string, Stats, error) {
	program, err := jsparse.Parse(source)
	if err != nil {
		return "", Stats{}, &ParseError{Err: err}
	}

	st := pipeline.Run(program, source)

	output := jsparse.Print(program)

	return output, st, nil
}

// Package pipeline implements the driver: it runs artifact discovery once,
// then the rewrite passes in a fixed order, iterating each phase to a fixed
// point under a convergence cap.
package pipeline

import (
	"github.com/guapier/jsdeobfuscator/discover"
	"github.com/guapier/jsdeobfuscator/rewrite"
	"github.com/guapier/jsdeobfuscator/stats"
	"github.com/t14raptor/go-fast/ast"
)

const (
	phase1Cap = 10
	phase2Cap = 10
	phase3Cap = 10
	phase4Cap = 3
)

// Run executes the full pass sequence over p in place and returns the
// accumulated statistics: array-access inlining interleaved with folding,
// then decoder-call inlining (nested decoder/array indirection is common),
// then folding alone, then resolver-call inlining, then one cosmetic
// cleanup walk with a final fold.
func Run(p *ast.Program, rawSource string) stats.Stats {
	var st stats.Stats

	d := discover.Run(p, rawSource)

	st.Phase1Iterations = runUntilStable(phase1Cap, func() int {
		a := rewrite.ConstantArrayAccess(p, d.Arrays)
		f := rewrite.ConstantFold(p)
		st.ArrayAccessesInlined += a
		st.ConstantFolds += f
		return a + f
	})

	if d.Table != nil && d.Table.Decoder != "" {
		st.Phase2Iterations = runUntilStable(phase2Cap, func() int {
			dec := rewrite.DecoderCall(p, d.Table)
			a := rewrite.ConstantArrayAccess(p, d.Arrays)
			st.DecoderCallsInlined += dec
			st.ArrayAccessesInlined += a
			return dec + a
		})
	}

	st.Phase3Iterations = runUntilStable(phase3Cap, func() int {
		f := rewrite.ConstantFold(p)
		st.ConstantFolds += f
		return f
	})

	if len(d.Resolvers) > 0 {
		st.Phase4Iterations = runUntilStable(phase4Cap, func() int {
			r := rewrite.GlobalResolverCall(p, d.Resolvers)
			st.ResolverCallsInlined += r
			return r
		})
	}

	cosmeticStats := rewrite.Cosmetic(p)
	st.Add(cosmeticStats)

	finalFold := rewrite.ConstantFold(p)
	st.ConstantFolds += finalFold

	return st
}

// runUntilStable repeats step until it reports zero changes or the cap is
// hit, returning the number of iterations actually run. The cap is a safety
// net, not an error condition; exceeding it just means leftover indirection
// stays in the output.
func runUntilStable(limit int, step func() int) int {
	iterations := 0
	for i := 0; i < limit; i++ {
		iterations++
		if step() == 0 {
			break
		}
	}
	return iterations
}

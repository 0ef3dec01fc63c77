// Package stats holds the run counters the pipeline accumulates and the
// two CLIs print. Keeping it as its own leaf package (rather than a type
// declared in package pipeline) lets both rewrite (which increments
// counters mid-pass) and pipeline (which owns the overall run) import it
// without a cycle.
package stats

import "github.com/iancoleman/orderedmap"

// Stats is the statistics record for one run: one counter per rewrite kind
// the pipeline can apply, plus the phase iteration counts useful for
// diagnosing a run that hit its convergence cap.
type Stats struct {
	HexNumeralsNormalized    int
	ArrayAccessesInlined     int
	DecoderCallsInlined      int
	ConstantFolds            int
	ResolverCallsInlined     int
	PropertyAccessSimplified int
	BooleansSimplified       int
	DeadCodeRemovals         int

	Phase1Iterations int
	Phase2Iterations int
	Phase3Iterations int
	Phase4Iterations int
}

// MarshalOrdered renders Stats as JSON with a stable, declaration-ordered
// key sequence, so successive runs diff cleanly.
func (s Stats) MarshalOrdered() ([]byte, error) {
	o := orderedmap.New()
	o.Set("hexNumeralsNormalized", s.HexNumeralsNormalized)
	o.Set("arrayAccessesInlined", s.ArrayAccessesInlined)
	o.Set("decoderCallsInlined", s.DecoderCallsInlined)
	o.Set("constantFolds", s.ConstantFolds)
	o.Set("resolverCallsInlined", s.ResolverCallsInlined)
	o.Set("propertyAccessSimplified", s.PropertyAccessSimplified)
	o.Set("booleansSimplified", s.BooleansSimplified)
	o.Set("deadCodeRemovals", s.DeadCodeRemovals)
	o.Set("phase1Iterations", s.Phase1Iterations)
	o.Set("phase2Iterations", s.Phase2Iterations)
	o.Set("phase3Iterations", s.Phase3Iterations)
	o.Set("phase4Iterations", s.Phase4Iterations)
	return o.MarshalJSON()
}

// Add merges another Stats' rewrite counters (not the phase iteration
// counts) into the receiver; the pipeline uses it to merge the cosmetic
// walk's counters into the run's totals.
func (s *Stats) Add(o Stats) {
	s.HexNumeralsNormalized += o.HexNumeralsNormalized
	s.ArrayAccessesInlined += o.ArrayAccessesInlined
	s.DecoderCallsInlined += o.DecoderCallsInlined
	s.ConstantFolds += o.ConstantFolds
	s.ResolverCallsInlined += o.ResolverCallsInlined
	s.PropertyAccessSimplified += o.PropertyAccessSimplified
	s.BooleansSimplified += o.BooleansSimplified
	s.DeadCodeRemovals += o.DeadCodeRemovals
}

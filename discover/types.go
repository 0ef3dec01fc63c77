// Package discover implements the one-shot artifact scan: locating constant
// arrays, the compressed string table and its decoder, and any
// global-resolver functions in a freshly parsed tree. It never mutates the
// tree; every finder here is read-only.
package discover

import "github.com/guapier/jsdeobfuscator/literal"

// ConstantArray is an ordered, all-literal array keyed by the declared
// identifier name that holds it.
type ConstantArray struct {
	Name     string
	Elements []literal.Value
}

// StringTable is the decompressed, pipe-split string payload paired with
// the name of the one-argument function that indexes into it. Decoder is
// empty when no decoder function could be identified; the driver skips
// decoder-call inlining in that case.
type StringTable struct {
	Entries []string
	Decoder string
}

// GlobalResolver is a function name together with its key->global mapping.
// The mapping is not filtered against the allow-list here; the rewrite pass
// re-checks it per call site, so a resolver can carry mappings that are
// individually rejected without disqualifying the whole function.
type GlobalResolver struct {
	Name string
	Map  map[string]string
}

// Discovery is the read-only state produced once before any rewriting and
// consulted by every pass thereafter.
type Discovery struct {
	Arrays    map[string]*ConstantArray
	Table     *StringTable
	Resolvers []*GlobalResolver
}

func newDiscovery() *Discovery {
	return &Discovery{Arrays: make(map[string]*ConstantArray)}
}

package discover

import (
	"strconv"
	"testing"

	"github.com/guapier/jsdeobfuscator/codec"
	"github.com/guapier/jsdeobfuscator/jsparse"
)

func TestFindStringTableWithASTDecoder(t *testing.T) {
	blob := codec.CompressToUTF16("alpha|beta|gamma")
	src := "x.decompressFromUTF16(" + strconv.QuoteToASCII(blob) + ");\n" +
		"D = function(i){ return T[i]; };\n"

	p, err := jsparse.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	table := findStringTable(p, src)
	if table == nil {
		t.Fatal("expected a string table")
	}
	if len(table.Entries) != 3 || table.Entries[2] != "gamma" {
		t.Fatalf("unexpected entries %v", table.Entries)
	}
	if table.Decoder != "D" {
		t.Fatalf("expected decoder D, got %q", table.Decoder)
	}
}

func TestFindStringTableResolvesIdentifierArgument(t *testing.T) {
	blob := codec.CompressToUTF16("one|two")
	src := "var S = " + strconv.QuoteToASCII(blob) + ";\n" +
		"x.decompressFromUTF16(S);\n"

	p, err := jsparse.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	table := findStringTable(p, src)
	if table == nil {
		t.Fatal("expected a string table")
	}
	if len(table.Entries) != 2 || table.Entries[0] != "one" {
		t.Fatalf("unexpected entries %v", table.Entries)
	}
	if table.Decoder != "" {
		t.Fatalf("expected no decoder, got %q", table.Decoder)
	}
}

func TestFindStringTableAbsent(t *testing.T) {
	p, err := jsparse.Parse(`console.log("nothing to see");`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if table := findStringTable(p, ""); table != nil {
		t.Fatalf("expected no table, got %+v", table)
	}
}

func TestFindDecoderNameTextualUsesLastOccurrence(t *testing.T) {
	src := `
function decompressFromUTF16(s) { /* codec body, also mentions decompressFromUTF16 internally */ Q = function(k){ return Z[k]; }; }
var blob = "...";
x.decompressFromUTF16(blob);
D = function(i){ return T[i]; };
`
	name := findDecoderNameTextual(src)
	if name != "D" {
		t.Fatalf("expected decoder name D, got %q", name)
	}
}

func TestFindDecoderNameTextualNoMatch(t *testing.T) {
	src := `x.decompressFromUTF16(blob); console.log("nothing here");`
	if name := findDecoderNameTextual(src); name != "" {
		t.Fatalf("expected no match, got %q", name)
	}
}

func TestFindDecoderNameTextualParamMismatchRejected(t *testing.T) {
	src := `x.decompressFromUTF16(blob); D = function(i){ return T[j]; };`
	if name := findDecoderNameTextual(src); name != "" {
		t.Fatalf("expected no match when indexed variable differs from param, got %q", name)
	}
}

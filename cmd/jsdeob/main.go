// jsdeob reads an obfuscated script from a file (or stdin), runs the
// deobfuscation pipeline, and writes the result to a file (or stdout).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	deobfuscate "github.com/guapier/jsdeobfuscator"
)

func main() {
	output := flag.String("o", "", "output file (default stdout)")
	printStats := flag.Bool("stats", false, "print run statistics as JSON on stderr")
	flag.Parse()

	var src []byte
	var err error
	switch flag.NArg() {
	case 0:
		src, err = io.ReadAll(os.Stdin)
	case 1:
		src, err = os.ReadFile(flag.Arg(0))
	default:
		log.Fatal("usage: jsdeob [-o out.js] [-stats] [input.js]")
	}
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}

	result, st, err := deobfuscate.Deobfuscate(string(src))
	if err != nil {
		log.Fatalf("deobfuscation failed: %v", err)
	}

	if *output == "" {
		fmt.Print(result)
	} else if err := os.WriteFile(*output, []byte(result), 0644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	if *printStats {
		data, err := st.MarshalOrdered()
		if err != nil {
			log.Fatalf("failed to marshal stats: %v", err)
		}
		fmt.Fprintln(os.Stderr, string(data))
	}
}

// fetchdeob downloads a script with a browser TLS fingerprint, runs the
// deobfuscation pipeline, and writes the result to a file (or stdout).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	deobfuscate "github.com/guapier/jsdeobfuscator"
	"github.com/guapier/jsdeobfuscator/fetch"
)

func main() {
	scriptURL := flag.String("url", "", "script URL to download")
	output := flag.String("o", "", "output file (default stdout)")
	printStats := flag.Bool("stats", false, "print run statistics as JSON on stderr")
	flag.Parse()

	if *scriptURL == "" {
		log.Fatal("usage: fetchdeob -url https://example.com/main.js [-o out.js] [-stats]")
	}

	client, err := fetch.NewClient()
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	src, err := client.FetchScript(*scriptURL)
	if err != nil {
		log.Fatalf("failed to fetch script: %v", err)
	}

	result, st, err := deobfuscate.Deobfuscate(src)
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

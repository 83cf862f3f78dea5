// Package main provides a generator that turns the published SQLite keyword
// list into the lookup table of the keywords package.
//
// Usage:
//
//	go run ./scripts/genkeywords -src=scripts/genkeywords/keywords.txt -out=pkg/keywords/table_gen.go
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strings"
)

var (
	srcFlag = flag.String("src", "scripts/genkeywords/keywords.txt", "keyword list, one keyword per line")
	outFlag = flag.String("out", "", "output file path (required)")
)

func main() {
	flag.Parse()

	if *outFlag == "" {
		log.Fatal("--out flag is required")
	}

	keywords, err := readKeywords(*srcFlag)
	if err != nil {
		log.Fatalf("failed to read keyword list: %v", err)
	}
	log.Printf("Read %d keywords from %s", len(keywords), *srcFlag)

	src, err := generate(keywords)
	if err != nil {
		log.Fatalf("failed to generate: %v", err)
	}

	if err := os.WriteFile(*outFlag, src, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *outFlag, err)
	}
	log.Printf("Wrote %s", *outFlag)
}

// readKeywords parses the source list: one keyword per line, blank lines
// and # comments ignored. Keywords are lowercased and deduplicated.
func readKeywords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seen[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("no keywords in %s", path)
	}

	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords, nil
}

// generate renders the table file and gofmts it.
func generate(keywords []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by scripts/genkeywords. DO NOT EDIT.\n\n")
	buf.WriteString("package keywords\n\n")
	buf.WriteString("// keywords holds the SQLite keyword set, lowercase.\n")
	buf.WriteString("var keywords = map[string]struct{}{\n")
	for _, kw := range keywords {
		fmt.Fprintf(&buf, "%q: {},\n", kw)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}
	return src, nil
}

// Command prosecheck runs the full prose-checking pipeline over a file or
// stdin and prints the report as JSON.
//
//	go run ./cmd/prosecheck -input draft.txt
//	echo "There is many issues here." | go run ./cmd/prosecheck
//
// The report carries the suggestion list with byte offsets into the input,
// the pipeline statistics, and the tone label.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kanishk-jain-01/wordwise-ai/engine"
	"github.com/kanishk-jain-01/wordwise-ai/tone"
)

// report is the JSON shape printed to stdout.
type report struct {
	Suggestions []engine.Suggestion `json:"suggestions"`
	Stats       engine.Stats        `json:"stats"`
	Tone        tone.Result         `json:"tone"`
}

func main() {
	inputPath := flag.String("input", "", "input file (default: stdin)")
	compact := flag.Bool("compact", false, "print compact JSON instead of indented")
	flag.Parse()

	text, err := readInput(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosecheck: %v\n", err)
		os.Exit(1)
	}

	result := engine.New().CheckText(text)
	r := report{
		Suggestions: result.Suggestions,
		Stats:       result.Stats,
		Tone:        tone.Analyze(text),
	}

	enc := json.NewEncoder(os.Stdout)
	if !*compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r); err != nil {
		fmt.Fprintf(os.Stderr, "prosecheck: encode report: %v\n", err)
		os.Exit(1)
	}
}

// readInput returns the text to check: the named file, or stdin when path
// is empty.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

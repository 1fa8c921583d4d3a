package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/riutiz/cardtable/internal/card"
	"github.com/riutiz/cardtable/internal/sheet"
)

// DefaultOutput is the output path when none is given
const DefaultOutput = "cards.json"

const indent = "  "

// Request names the input workbook and the output file of a run
type Request struct {
	Input  string
	Output string
	Options
}

// Result holds the outcome of a conversion run
type Result struct {
	Cards   []card.Card
	Summary card.Summary
	Output  string
	// Size is the byte length of the minified JSON
	Size int
}

// Run loads the card library from req.Input, normalizes it and writes the
// JSON array to req.Output, printing progress lines to w. Nothing is written
// unless every row converted.
func Run(req Request, w io.Writer) (*Result, error) {
	output := req.Output
	if output == "" {
		output = DefaultOutput
	}

	fmt.Fprintf(w, "Reading %s...\n", req.Input)
	t, err := sheet.Load(req.Input)
	if err != nil {
		return nil, err
	}

	cards, err := Normalize(t, req.Options)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "Found %d cards\n", len(cards))

	summary := Summarize(cards)
	fmt.Fprintf(w, "Card types: %s\n", summary)

	size, err := WriteFile(output, cards)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "Saved to %s\n", output)
	fmt.Fprintf(w, "File size: %d bytes\n", size)

	log.Debug().
		Str("input", req.Input).
		Str("output", output).
		Int("cards", len(cards)).
		Msg("Conversion finished")

	return &Result{Cards: cards, Summary: summary, Output: output, Size: size}, nil
}

// Encode returns the indented JSON document and its minified form
func Encode(cards []card.Card) (indented, minified []byte, err error) {
	if cards == nil {
		cards = []card.Card{}
	}
	if indented, err = encode(cards, indent); err != nil {
		return nil, nil, err
	}
	if minified, err = encode(cards, ""); err != nil {
		return nil, nil, err
	}
	return indented, bytes.TrimSuffix(minified, []byte("\n")), nil
}

func encode(cards []card.Card, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if prefix != "" {
		enc.SetIndent("", prefix)
	}
	if err := enc.Encode(cards); err != nil {
		return nil, fmt.Errorf("encoding cards: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes cards to path as an indented JSON array, replacing any
// existing file. It returns the size of the minified document.
func WriteFile(path string, cards []card.Card) (int, error) {
	indented, minified, err := Encode(cards)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, indented, 0o644); err != nil {
		return 0, &card.FileAccessError{Op: "write", Path: path, Err: err}
	}
	return len(minified), nil
}

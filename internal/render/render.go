// Package render encodes cards for command output.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/siddsp02/creation-vs-initialization/internal/card"
	"gopkg.in/yaml.v3"
)

// record is the encoded shape of a card. Value holds an int for pips and a
// string for face names.
type record struct {
	Value any    `json:"value" yaml:"value" toml:"value"`
	Suit  string `json:"suit" yaml:"suit" toml:"suit"`
}

func toRecords(cards []card.Card) []record {
	out := make([]record, 0, len(cards))
	for _, c := range cards {
		value, suit := c.Unpack()
		out = append(out, record{Value: value.Interface(), Suit: suit})
	}
	return out
}

// Write encodes cards to w in the named format
func Write(w io.Writer, format string, cards []card.Card) error {
	switch format {
	case "text", "":
		for _, c := range cards {
			if _, err := fmt.Fprintln(w, c); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(cards))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toRecords(cards)); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		doc := struct {
			Cards []record `toml:"card"`
		}{Cards: toRecords(cards)}
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

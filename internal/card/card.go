package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultRarity is used when the rarity cell is empty
const DefaultRarity = "C"

// Card represents one normalized card record. Field order is the JSON key order.
type Card struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Type            *string `json:"type"`
	SubTypes        *string `json:"subTypes"`
	Cost            *string `json:"cost"`
	Dice            *string `json:"dice"`
	AD              Stat    `json:"ad"`
	Endurance       Stat    `json:"endurance"`
	Ability         *string `json:"ability"`
	Rarity          string  `json:"rarity"`
	ResourceAbility *string `json:"resourceAbility"`
}

// StatKind tells which member of a Stat is set
type StatKind int

const (
	StatNull StatKind = iota
	StatInt
	StatText
)

// Stat is a best-effort numeric value: an integer, the raw text when the
// cell was not a number, or null.
type Stat struct {
	Kind StatKind
	Int  int
	Text string
}

// IntStat returns a Stat holding n
func IntStat(n int) Stat {
	return Stat{Kind: StatInt, Int: n}
}

// TextStat returns a Stat holding s
func TextStat(s string) Stat {
	return Stat{Kind: StatText, Text: s}
}

// IsNull reports whether the stat is absent
func (s Stat) IsNull() bool {
	return s.Kind == StatNull
}

// String renders the stat for display
func (s Stat) String() string {
	switch s.Kind {
	case StatInt:
		return strconv.Itoa(s.Int)
	case StatText:
		return s.Text
	default:
		return "-"
	}
}

func (s Stat) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case StatInt:
		return []byte(strconv.Itoa(s.Int)), nil
	case StatText:
		return json.Marshal(s.Text)
	case StatNull:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unknown stat kind %d", s.Kind)
	}
}

func (s *Stat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = Stat{}
	case len(data) > 0 && data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = TextStat(text)
	default:
		n, err := strconv.Atoi(string(data))
		if err != nil {
			return fmt.Errorf("stat must be an integer, string or null: %s", data)
		}
		*s = IntStat(n)
	}
	return nil
}

// Text returns a pointer to s, for building cards in code
func Text(s string) *string {
	return &s
}

// TypeCount is the number of cards sharing one type. A nil Type counts cards
// without a type.
type TypeCount struct {
	Type  *string
	Count int
}

// Summary lists type counts in order of first appearance
type Summary []TypeCount

// Count returns the count for a type, nil meaning untyped cards
func (s Summary) Count(typ *string) int {
	for _, tc := range s {
		if sameType(tc.Type, typ) {
			return tc.Count
		}
	}
	return 0
}

// String renders the summary as a dict-like line, e.g. {"Spell": 2, null: 1}
func (s Summary) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, tc := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		if tc.Type == nil {
			b.WriteString("null")
		} else {
			b.WriteString(strconv.Quote(*tc.Type))
		}
		fmt.Fprintf(&b, ": %d", tc.Count)
	}
	b.WriteByte('}')
	return b.String()
}

func sameType(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

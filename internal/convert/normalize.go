// Package convert turns card library rows into normalized card records and
// writes them as JSON.
package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/riutiz/cardtable/internal/card"
	"github.com/riutiz/cardtable/internal/sheet"
)

// Options control normalization
type Options struct {
	// AllowMissingName yields an empty card list instead of a SchemaError
	// when the Card Name column is absent.
	AllowMissingName bool
}

// SafeStr returns nil for an empty cell, otherwise the trimmed text
func SafeStr(c sheet.Cell) *string {
	switch c.Kind {
	case sheet.Empty:
		return nil
	case sheet.Number:
		s := formatNumber(c.Value)
		return &s
	default:
		s := strings.TrimSpace(c.Value)
		return &s
	}
}

// SafeInt returns a null stat for an empty cell, an integer when the value
// converts to one, and the raw text otherwise. It never fails.
func SafeInt(c sheet.Cell) card.Stat {
	switch c.Kind {
	case sheet.Empty:
		return card.Stat{}
	case sheet.Number:
		f, err := strconv.ParseFloat(c.Value, 64)
		if err == nil && math.Abs(f) < 1<<53 {
			return card.IntStat(int(f))
		}
	default:
		if n, err := strconv.Atoi(strings.TrimSpace(c.Value)); err == nil {
			return card.IntStat(n)
		}
	}
	return card.TextStat(c.Value)
}

// Rarity returns the trimmed rarity, or the default when it is blank
func Rarity(c sheet.Cell) string {
	if s := SafeStr(c); s != nil && *s != "" {
		return *s
	}
	return card.DefaultRarity
}

// Normalize converts the table rows into cards. Rows with a blank name are
// dropped and do not consume an id; ids run from 1 in row order.
func Normalize(t *sheet.Table, opts Options) ([]card.Card, error) {
	if !t.HasColumn(sheet.ColName) {
		if !opts.AllowMissingName {
			return nil, &card.SchemaError{Path: t.Path, Sheet: sheet.SheetName, Column: sheet.ColName}
		}
		log.Warn().Str("path", t.Path).Msg("Card Name column missing; no cards will be produced")
		return []card.Card{}, nil
	}
	if !t.HasColumn(sheet.ColType) {
		return nil, &card.SchemaError{Path: t.Path, Sheet: sheet.SheetName, Column: sheet.ColType}
	}

	cards := make([]card.Card, 0, len(t.Rows))
	for _, row := range t.Rows {
		name := SafeStr(row.Get(sheet.ColName))
		if name == nil || *name == "" {
			log.Debug().Int("row", row.Number).Msg("Skipping row without a card name")
			continue
		}

		cards = append(cards, card.Card{
			ID:              len(cards) + 1,
			Name:            *name,
			Type:            SafeStr(row.Get(sheet.ColType)),
			SubTypes:        SafeStr(row.Get(sheet.ColSubTypes)),
			Cost:            SafeStr(row.Get(sheet.ColCost)),
			Dice:            SafeStr(row.Get(sheet.ColDice)),
			AD:              SafeInt(row.Get(sheet.ColAD)),
			Endurance:       SafeInt(row.Get(sheet.ColEndurance)),
			Ability:         SafeStr(row.Get(sheet.ColAbility)),
			Rarity:          Rarity(row.Get(sheet.ColRarity)),
			ResourceAbility: SafeStr(row.Get(sheet.ColResourceAbility)),
		})
	}

	return cards, nil
}

// Summarize counts cards per type in order of first appearance
func Summarize(cards []card.Card) card.Summary {
	var summary card.Summary
	index := make(map[string]int)
	untyped := -1

	for _, c := range cards {
		if c.Type == nil {
			if untyped < 0 {
				untyped = len(summary)
				summary = append(summary, card.TypeCount{})
			}
			summary[untyped].Count++
			continue
		}
		i, ok := index[*c.Type]
		if !ok {
			i = len(summary)
			index[*c.Type] = i
			summary = append(summary, card.TypeCount{Type: c.Type})
		}
		summary[i].Count++
	}
	return summary
}

// formatNumber renders a raw numeric cell, dropping the fraction of integral
// values so that 3 and 3.0 both read "3".
func formatNumber(raw string) string {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

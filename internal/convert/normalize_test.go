package convert

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riutiz/cardtable/internal/card"
	"github.com/riutiz/cardtable/internal/sheet"
)

var fullHeader = []string{
	sheet.ColName, sheet.ColType, sheet.ColSubTypes, sheet.ColCost, sheet.ColDice,
	sheet.ColAD, sheet.ColEndurance, sheet.ColAbility, sheet.ColRarity, sheet.ColResourceAbility,
}

func TestSafeStr(t *testing.T) {
	tests := []struct {
		name string
		cell sheet.Cell
		want *string
	}{
		{"empty", sheet.Cell{}, nil},
		{"text trimmed", sheet.TextCell("  Spell \t"), card.Text("Spell")},
		{"whitespace only", sheet.TextCell("   "), card.Text("")},
		{"integral number", sheet.NumberCell("3"), card.Text("3")},
		{"integral float", sheet.NumberCell("3.0"), card.Text("3")},
		{"fraction", sheet.NumberCell("2.5"), card.Text("2.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeStr(tt.cell))
		})
	}
}

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name string
		cell sheet.Cell
		want card.Stat
	}{
		{"empty", sheet.Cell{}, card.Stat{}},
		{"number", sheet.NumberCell("5"), card.IntStat(5)},
		{"float truncates", sheet.NumberCell("2.9"), card.IntStat(2)},
		{"negative float truncates", sheet.NumberCell("-2.9"), card.IntStat(-2)},
		{"numeric text", sheet.TextCell(" 7 "), card.IntStat(7)},
		{"non numeric text", sheet.TextCell("N/A"), card.TextStat("N/A")},
		{"decimal text kept", sheet.TextCell("3.5"), card.TextStat("3.5")},
		{"text keeps raw spacing", sheet.TextCell(" X "), card.TextStat(" X ")},
		{"huge number", sheet.NumberCell("1e300"), card.TextStat("1e300")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeInt(tt.cell))
		})
	}
}

func TestRarity(t *testing.T) {
	assert.Equal(t, "C", Rarity(sheet.Cell{}))
	assert.Equal(t, "C", Rarity(sheet.TextCell("  ")))
	assert.Equal(t, "R", Rarity(sheet.TextCell(" R ")))
	assert.Equal(t, "1", Rarity(sheet.NumberCell("1")))
}

func TestNormalize_Scenario(t *testing.T) {
	tbl := sheet.NewTable("lib.xlsx", fullHeader, [][]sheet.Cell{
		{
			sheet.TextCell("Fireball"), sheet.TextCell("Spell"), sheet.TextCell("Elemental"),
			sheet.TextCell("3"), {}, sheet.NumberCell("5"), {}, sheet.TextCell("Deal 5 dmg"),
		},
		{sheet.TextCell("")},
	})

	cards, err := Normalize(tbl, Options{})
	require.NoError(t, err)
	require.Len(t, cards, 1)

	assert.Equal(t, card.Card{
		ID:       1,
		Name:     "Fireball",
		Type:     card.Text("Spell"),
		SubTypes: card.Text("Elemental"),
		Cost:     card.Text("3"),
		AD:       card.IntStat(5),
		Ability:  card.Text("Deal 5 dmg"),
		Rarity:   "C",
	}, cards[0])

	assert.Equal(t, `{"Spell": 1}`, Summarize(cards).String())
}

func TestNormalize_SkippedRowsDoNotConsumeIDs(t *testing.T) {
	tbl := sheet.NewTable("lib.xlsx", fullHeader, [][]sheet.Cell{
		{sheet.TextCell("A"), sheet.TextCell("Unit")},
		{},
		{sheet.TextCell("   "), sheet.TextCell("Unit")},
		{sheet.TextCell("B")},
		{sheet.NumberCell("42"), sheet.TextCell("Relic")},
	})

	cards, err := Normalize(tbl, Options{})
	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{cards[0].ID, cards[1].ID, cards[2].ID})
	assert.Equal(t, []string{"A", "B", "42"}, []string{cards[0].Name, cards[1].Name, cards[2].Name})
	assert.Nil(t, cards[1].Type)
}

func TestNormalize_LenientStats(t *testing.T) {
	tbl := sheet.NewTable("lib.xlsx", fullHeader, [][]sheet.Cell{
		{sheet.TextCell("Golem"), sheet.TextCell("Unit"), {}, {}, {}, sheet.TextCell("N/A"), sheet.NumberCell("4")},
	})

	cards, err := Normalize(tbl, Options{})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, card.TextStat("N/A"), cards[0].AD)
	assert.Equal(t, card.IntStat(4), cards[0].Endurance)
}

func TestNormalize_MissingColumns(t *testing.T) {
	noName := sheet.NewTable("lib.xlsx", []string{"Name", "Type"}, [][]sheet.Cell{
		{sheet.TextCell("Fireball"), sheet.TextCell("Spell")},
	})

	_, err := Normalize(noName, Options{})
	var schemaErr *card.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, sheet.ColName, schemaErr.Column)

	cards, err := Normalize(noName, Options{AllowMissingName: true})
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)

	noType := sheet.NewTable("lib.xlsx", []string{"Card Name"}, nil)
	_, err = Normalize(noType, Options{})
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, sheet.ColType, schemaErr.Column)
}

func TestNormalize_OptionalColumnsAbsent(t *testing.T) {
	tbl := sheet.NewTable("lib.xlsx", []string{"Card Name", "Type"}, [][]sheet.Cell{
		{sheet.TextCell("Fireball"), sheet.TextCell("Spell")},
	})

	cards, err := Normalize(tbl, Options{})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	c := cards[0]
	assert.Nil(t, c.SubTypes)
	assert.Nil(t, c.Cost)
	assert.True(t, c.AD.IsNull())
	assert.True(t, c.Endurance.IsNull())
	assert.Nil(t, c.ResourceAbility)
	assert.Equal(t, card.DefaultRarity, c.Rarity)
}

func TestSummarize(t *testing.T) {
	cards := []card.Card{
		{ID: 1, Type: card.Text("Unit")},
		{ID: 2},
		{ID: 3, Type: card.Text("Spell")},
		{ID: 4, Type: card.Text("Unit")},
		{ID: 5},
	}

	s := Summarize(cards)
	assert.Equal(t, `{"Unit": 2, null: 2, "Spell": 1}`, s.String())
	assert.Empty(t, Summarize(nil))
}

// TestNormalizeProperties checks id assignment over random name columns
func TestNormalizeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	names := gen.SliceOf(
		gen.OneConstOf("", "   ", "Fireball", " Goblin ", "Ward", "Golem"),
		reflect.TypeOf(""),
	)

	build := func(column []string) *sheet.Table {
		records := make([][]sheet.Cell, len(column))
		for i, name := range column {
			if name != "" {
				records[i] = []sheet.Cell{sheet.TextCell(name), sheet.TextCell("Unit")}
			}
		}
		return sheet.NewTable("prop.xlsx", fullHeader, records)
	}

	properties.Property("ids are 1..n in row order", prop.ForAll(
		func(column []string) bool {
			cards, err := Normalize(build(column), Options{})
			if err != nil {
				return false
			}
			for i, c := range cards {
				if c.ID != i+1 {
					return false
				}
			}
			return true
		},
		names,
	))

	properties.Property("one card per named row, names in order", prop.ForAll(
		func(column []string) bool {
			cards, err := Normalize(build(column), Options{})
			if err != nil {
				return false
			}
			var want []string
			for _, name := range column {
				if trimmed := strings.TrimSpace(name); trimmed != "" {
					want = append(want, trimmed)
				}
			}
			if len(cards) != len(want) {
				return false
			}
			for i := range want {
				if cards[i].Name != want[i] {
					return false
				}
			}
			return true
		},
		names,
	))

	properties.Property("summary counts add up to card total", prop.ForAll(
		func(column []string) bool {
			cards, _ := Normalize(build(column), Options{})
			total := 0
			for _, tc := range Summarize(cards) {
				total += tc.Count
			}
			return total == len(cards)
		},
		names,
	))

	properties.TestingRun(t)
}

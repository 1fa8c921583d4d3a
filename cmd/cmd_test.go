package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riutiz/cardtable/internal/card"
	"github.com/riutiz/cardtable/internal/sheet/sheettest"
)

// execute runs the root command with args against an isolated config home
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	colorize.NoColor = true
	// RunE silences usage on the shared command
	RootCmd.SilenceUsage = false
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

func TestRootCmd_Converts(t *testing.T) {
	input := sheettest.WriteCardLibrary(t,
		[]any{"Fireball", "Spell", "Elemental", "3", nil, 5, nil, "Deal 5 dmg", nil, nil},
	)
	output := filepath.Join(t.TempDir(), "cards.json")

	out, err := execute(t, input, output)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 cards")
	assert.Contains(t, out, `Card types: {"Spell": 1}`)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"id\": 1,"))
}

func TestRootCmd_RequiresInput(t *testing.T) {
	out, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRootCmd_PropagatesErrors(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing.xlsx"), filepath.Join(t.TempDir(), "out.json"))
	var accessErr *card.FileAccessError
	assert.ErrorAs(t, err, &accessErr)
}

func TestValidateCmd(t *testing.T) {
	input := sheettest.WriteWorkbook(t, "Card Library", [][]any{
		{"Card Name"},
		{"Fireball"},
	})

	out, err := execute(t, "validate", input)
	require.Error(t, err)
	assert.Contains(t, out, `required column "Type" not found`)
}

func TestShowCmd(t *testing.T) {
	input := sheettest.WriteCardLibrary(t,
		[]any{"Fireball", "Spell", "Elemental", "3", nil, 5, nil, "Deal 5 dmg", nil, nil},
		[]any{"Golem", "Unit", nil, "4", "2d6", "N/A", 6, nil, "R", "Gain 1 stone"},
	)

	out, err := execute(t, "show", input, "golem")
	require.NoError(t, err)
	assert.Contains(t, out, "Golem")
	assert.Contains(t, out, "N/A / 6")
	assert.Contains(t, out, "Resource Ability:")

	_, err = execute(t, "show", input, "99")
	assert.EqualError(t, err, "card not found: 99")
}

func TestFindCard(t *testing.T) {
	cards := []card.Card{
		{ID: 1, Name: "Fireball"},
		{ID: 2, Name: "7"},
	}

	c, err := findCard(cards, "2")
	require.NoError(t, err)
	assert.Equal(t, "7", c.Name)

	c, err = findCard(cards, " fireBALL ")
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)

	_, err = findCard(cards, "Golem")
	assert.Error(t, err)
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("   ", 20))
	assert.Equal(t,
		[]string{"Deal 5 damage to", "every enemy unit."},
		wrapText("Deal 5 damage to every enemy unit.", 17))
}

func TestDisplayCard(t *testing.T) {
	colorize.NoColor = true
	c := &card.Card{
		ID:      3,
		Name:    "Ward",
		Rarity:  "U",
		Ability: card.Text("Prevent the next 2 damage dealt to a friendly unit this turn."),
	}

	var out bytes.Buffer
	displayCard(&out, c, 30)

	text := out.String()
	assert.Contains(t, text, "Ward")
	assert.Contains(t, text, "Type:     -")
	assert.Contains(t, text, "AD/End:   - / -")
	assert.Contains(t, text, "Ability:")
	assert.NotContains(t, text, "Resource Ability:")
	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len(line), 30)
	}
}

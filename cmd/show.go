package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riutiz/cardtable/internal/card"
	"github.com/riutiz/cardtable/internal/convert"
	"github.com/riutiz/cardtable/internal/sheet"
)

var showCmd = &cobra.Command{
	Use:   "show [spreadsheet] [card]",
	Short: "Display one card as it will appear in the JSON output",
	Long: `Show reads the card library, normalizes it exactly like a conversion, and
prints a single card. The card is selected by its id or by its name
(case-insensitive).

Examples:
  cardtable show Card_Library_v15.xlsx 12
  cardtable show Card_Library_v15.xlsx Fireball`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		t, err := sheet.Load(args[0])
		if err != nil {
			return err
		}

		cards, err := convert.Normalize(t, normalizeOptions(cmd))
		if err != nil {
			return err
		}

		c, err := findCard(cards, args[1])
		if err != nil {
			return err
		}

		displayCard(cmd.OutOrStdout(), c, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// findCard looks a card up by id, then by name
func findCard(cards []card.Card, key string) (*card.Card, error) {
	if id, err := strconv.Atoi(key); err == nil {
		for i := range cards {
			if cards[i].ID == id {
				return &cards[i], nil
			}
		}
	}

	for i := range cards {
		if strings.EqualFold(cards[i].Name, strings.TrimSpace(key)) {
			return &cards[i], nil
		}
	}

	return nil, fmt.Errorf("card not found: %s", key)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // Default if we can't get terminal width
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// displayCard prints the card fields with labels, wrapping the ability texts
func displayCard(w io.Writer, c *card.Card, width int) {
	label := func(s string) string { return colorize.CyanString("%-10s", s) }
	value := func(s string) string { return colorize.HiWhiteString("%s", s) }

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s%s\n", label("Card:"), value(c.Name))
	fmt.Fprintf(w, "  %s%s\n", label("ID:"), value(strconv.Itoa(c.ID)))
	fmt.Fprintf(w, "  %s%s\n", label("Type:"), value(orDash(c.Type)))
	if c.SubTypes != nil {
		fmt.Fprintf(w, "  %s%s\n", label("Sub-Types:"), value(*c.SubTypes))
	}
	fmt.Fprintf(w, "  %s%s\n", label("Cost:"), value(orDash(c.Cost)))
	fmt.Fprintf(w, "  %s%s\n", label("Dice:"), value(orDash(c.Dice)))
	fmt.Fprintf(w, "  %s%s / %s\n", label("AD/End:"), value(c.AD.String()), value(c.Endurance.String()))
	fmt.Fprintf(w, "  %s%s\n", label("Rarity:"), value(c.Rarity))

	// Leave a small margin
	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	for _, section := range []struct {
		title string
		text  *string
	}{
		{"Ability:", c.Ability},
		{"Resource Ability:", c.ResourceAbility},
	} {
		if section.text == nil || *section.text == "" {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", colorize.CyanString(section.title))
		for _, line := range wrapText(*section.text, textWidth) {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}

	fmt.Fprintln(w)
}

package sheet

// Column headers of the card library sheet
const (
	ColName            = "Card Name"
	ColType            = "Type"
	ColSubTypes        = "Sub-Types"
	ColCost            = "Cost"
	ColDice            = "Dice"
	ColAD              = "AD (Original)"
	ColEndurance       = "Endurance"
	ColAbility         = "Ability"
	ColRarity          = "Rarity"
	ColResourceAbility = "Resource Ability"
)

// RequiredColumns must be present in the header
var RequiredColumns = []string{ColName, ColType}

// OptionalColumns read as empty cells when absent
var OptionalColumns = []string{
	ColSubTypes, ColCost, ColDice, ColAD, ColEndurance,
	ColAbility, ColRarity, ColResourceAbility,
}

// Columns lists every known column in card field order
func Columns() []string {
	return append(append([]string{}, RequiredColumns...), OptionalColumns...)
}

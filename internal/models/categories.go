package models

// DeltaTable maps an evaluation category to its signed score delta. It is
// configuration data: built once at startup and never mutated.
type DeltaTable map[string]int

// DefaultDeltas returns the fixed category enumeration. Categories absent
// from the table resolve to a delta of 0 but are still recorded.
func DefaultDeltas() DeltaTable {
	return DeltaTable{
		"falta":       -10,
		"atestado":    -1,
		"advertencia": -5,
		"suspensao":   -30,
		"atraso":      -1,
		"elogio":      +5,
		"bonificacao": +10,
		"extra":       +1,
	}
}

func (t DeltaTable) Delta(category string) int {
	return t[category]
}

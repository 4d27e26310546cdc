package inventory

import (
	"fmt"
	"sort"

	"brewstock/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UseAmounts are the quick-use decrements offered on every card.
var UseAmounts = [3]float64{1, 0.5, 0.1}

// SortByName orders items ascending by name using a case-insensitive,
// locale-aware collation. The sort is stable so re-rendering an unchanged
// list always produces the same ordering.
func SortByName(items []model.Item) {
	c := collate.New(language.Und, collate.Loose)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(items[i].Name, items[j].Name) < 0
	})
}

// FormatStock renders a quantity with fixed two decimals ("5.00", "4.70").
func FormatStock(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

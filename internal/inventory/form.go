package inventory

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"brewstock/internal/model"
)

// ItemForm carries the edit-dialog fields exactly as the user typed them.
// Parsing is the single place text becomes a typed record; nothing malformed
// ever reaches the store.
type ItemForm struct {
	Name     string
	Category string
	Stock    string
	Unit     string
	LowAlert string
}

// ValidationError names the offending field so UIs can point at it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseForm validates and coerces a form into an Item.
//
// Policy: name is required; stock must parse as a finite number (rejected
// otherwise, never stored as NaN); lowAlert defaults to 0 when blank or
// non-numeric; negative quantities clamp to 0. The returned item has ID 0;
// callers set it when editing an existing record.
func ParseForm(f ItemForm) (model.Item, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return model.Item{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	stockText := strings.TrimSpace(f.Stock)
	if stockText == "" {
		return model.Item{}, &ValidationError{Field: "stock", Reason: "must not be empty"}
	}
	stock, err := strconv.ParseFloat(stockText, 64)
	if err != nil || math.IsNaN(stock) || math.IsInf(stock, 0) {
		return model.Item{}, &ValidationError{Field: "stock", Reason: fmt.Sprintf("%q is not a number", stockText)}
	}
	if stock < 0 {
		stock = 0
	}

	lowAlert := 0.0
	if v := strings.TrimSpace(f.LowAlert); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			lowAlert = n
		}
	}
	if lowAlert < 0 {
		lowAlert = 0
	}

	return model.Item{
		Name:     name,
		Category: strings.TrimSpace(f.Category),
		Stock:    stock,
		Unit:     strings.TrimSpace(f.Unit),
		LowAlert: lowAlert,
	}, nil
}

// FormFromItem populates dialog fields from an item's current values.
func FormFromItem(it model.Item) ItemForm {
	return ItemForm{
		Name:     it.Name,
		Category: it.Category,
		Stock:    trimFloat(it.Stock),
		Unit:     it.Unit,
		LowAlert: trimFloat(it.LowAlert),
	}
}

// trimFloat renders a quantity without trailing zeros for editing
// (display formatting is FormatStock's job).
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

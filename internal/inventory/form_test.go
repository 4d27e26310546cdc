package inventory

import (
	"errors"
	"testing"

	"brewstock/internal/model"
)

func TestParseForm_Valid(t *testing.T) {
	it, err := ParseForm(ItemForm{
		Name:     "  Hops ",
		Category: "hops",
		Stock:    "5.5",
		Unit:     "kg",
		LowAlert: "2",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := model.Item{Name: "Hops", Category: "hops", Stock: 5.5, Unit: "kg", LowAlert: 2}
	if it != want {
		t.Fatalf("expected %+v, got %+v", want, it)
	}
}

func TestParseForm_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		form  ItemForm
		field string
	}{
		{"empty name", ItemForm{Name: "  ", Stock: "1"}, "name"},
		{"empty stock", ItemForm{Name: "Hops", Stock: ""}, "stock"},
		{"non-numeric stock", ItemForm{Name: "Hops", Stock: "plenty"}, "stock"},
		{"NaN stock", ItemForm{Name: "Hops", Stock: "NaN"}, "stock"},
		{"infinite stock", ItemForm{Name: "Hops", Stock: "Inf"}, "stock"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseForm(tc.form)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestParseForm_Defaults(t *testing.T) {
	it, err := ParseForm(ItemForm{Name: "Hops", Stock: "3"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if it.LowAlert != 0 {
		t.Fatalf("expected lowAlert default 0, got %v", it.LowAlert)
	}

	// Non-numeric threshold falls back to 0 rather than failing the save.
	it, err = ParseForm(ItemForm{Name: "Hops", Stock: "3", LowAlert: "soon"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if it.LowAlert != 0 {
		t.Fatalf("expected lowAlert default 0 on bad input, got %v", it.LowAlert)
	}
}

func TestParseForm_ClampsNegatives(t *testing.T) {
	it, err := ParseForm(ItemForm{Name: "Hops", Stock: "-4", LowAlert: "-1"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if it.Stock != 0 || it.LowAlert != 0 {
		t.Fatalf("expected negatives clamped to 0, got %+v", it)
	}
}

func TestFormFromItem_RoundTrip(t *testing.T) {
	orig := model.Item{ID: 3, Name: "Hops", Category: "hops", Stock: 4.7, Unit: "kg", LowAlert: 2}
	parsed, err := ParseForm(FormFromItem(orig))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	parsed.ID = orig.ID
	if parsed != orig {
		t.Fatalf("expected round trip to preserve fields: %+v vs %+v", orig, parsed)
	}
}

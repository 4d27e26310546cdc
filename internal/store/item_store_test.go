package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"brewstock/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	s := Store{Dir: t.TempDir()}
	db, err := s.Open(context.Background())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertListRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	it := model.Item{Name: "Hops", Category: "grain", Stock: 5, Unit: "kg", LowAlert: 2}
	id, err := db.Insert(ctx, it)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected assigned id")
	}

	items, err := db.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	got := items[0]
	if got.ID != id || got.Name != "Hops" || got.Category != "grain" || got.Stock != 5 || got.Unit != "kg" || got.LowAlert != 2 {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestInsertAssignsUniqueMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	var last int64
	for i := 0; i < 5; i++ {
		id, err := db.Insert(ctx, model.Item{Name: "x", Stock: 1})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if id <= last {
			t.Fatalf("expected monotonically increasing ids; got %d after %d", id, last)
		}
		last = id
	}
}

func TestInsertRejectsPresetID(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if _, err := db.Insert(ctx, model.Item{ID: 7, Name: "x", Stock: 1}); err == nil {
		t.Fatalf("expected error inserting item with preset id")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if _, err := db.GetByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutReplacesFullRecord(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, err := db.Insert(ctx, model.Item{Name: "Hops", Category: "grain", Stock: 5, Unit: "kg", LowAlert: 2})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	updated := model.Item{ID: id, Name: "Cascade Hops", Category: "hops", Stock: 3.5, Unit: "kg", LowAlert: 1}
	if err := db.Put(ctx, updated); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := db.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != updated {
		t.Fatalf("expected %+v, got %+v", updated, got)
	}
}

func TestPutCreatesWhenAbsent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	it := model.Item{ID: 99, Name: "Yeast", Stock: 2, Unit: "pkg"}
	if err := db.Put(ctx, it); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := db.GetByID(ctx, 99)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != it {
		t.Fatalf("expected %+v, got %+v", it, got)
	}
}

func TestDeleteThenGet_NotFound(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, err := db.Insert(ctx, model.Item{Name: "Hops", Stock: 5})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := db.DeleteByID(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.GetByID(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if err := db.DeleteByID(ctx, 12345); err != nil {
		t.Fatalf("expected deleting an absent id to be a no-op, got %v", err)
	}
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, err := db.Insert(ctx, model.Item{Name: "Hops", Stock: 0.5})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := db.AdjustStock(ctx, id, -2); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	got, err := db.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Stock != 0 {
		t.Fatalf("expected stock clamped to 0, got %v", got.Stock)
	}
}

func TestAdjustStock_QuickUseScenario(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, err := db.Insert(ctx, model.Item{Name: "Hops", Stock: 5.0, Unit: "kg", LowAlert: 2.0})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := db.AdjustStock(ctx, id, -0.1); err != nil {
			t.Fatalf("adjust %d: %v", i, err)
		}
	}
	got, err := db.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// Displayed with two fixed decimals; raw float64 arithmetic wobbles.
	if s := fmtTwo(got.Stock); s != "4.70" {
		t.Fatalf("expected 4.70 after three 0.1 uses, got %s (%v)", s, got.Stock)
	}
	if got.Low() {
		t.Fatalf("expected item not low at %v (alert %v)", got.Stock, got.LowAlert)
	}

	if err := db.AdjustStock(ctx, id, -3.0); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	got, err = db.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s := fmtTwo(got.Stock); s != "1.70" {
		t.Fatalf("expected 1.70, got %s (%v)", s, got.Stock)
	}
	if !got.Low() {
		t.Fatalf("expected item low at %v (alert %v)", got.Stock, got.LowAlert)
	}
}

func TestAdjustStockAfterDelete_NoResurrection(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, err := db.Insert(ctx, model.Item{Name: "Hops", Stock: 5})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := db.DeleteByID(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := db.AdjustStock(ctx, id, -1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound adjusting a deleted item, got %v", err)
	}
	items, err := db.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no records after delete, got %+v", items)
	}
}

func TestOpenIsIdempotentAcrossSessions(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	db, err := s.Open(ctx)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	id, err := db.Insert(ctx, model.Item{Name: "Hops", Stock: 5})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	_ = db.Close()

	db2, err := s.Open(ctx)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer db2.Close()
	got, err := db2.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Name != "Hops" {
		t.Fatalf("expected record to survive reopen, got %+v", got)
	}
}

func fmtTwo(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

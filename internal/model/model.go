package model

// Item is a single stocked inventory entry.
//
// ID is assigned by the store on insert (SQLite AUTOINCREMENT) and is
// immutable afterwards; 0 means "not yet stored".
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Stock    float64 `json:"stock"`
	Unit     string  `json:"unit"`
	LowAlert float64 `json:"lowAlert"`
}

// Low reports whether the item is at or below its low-stock threshold
// (the boundary case counts as low). Derived at render time, never stored.
func (it Item) Low() bool {
	return it.Stock <= it.LowAlert
}

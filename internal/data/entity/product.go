package entity

// Specifications is a free-form key-value map stored as JSONB.
type Specifications map[string]string

type Product struct {
	Base
	Name           string         `db:"name"`
	Description    string         `db:"description"`
	Price          float64        `db:"price"`
	Category       string         `db:"category"`
	ImageURL       string         `db:"image_url"`
	Specifications Specifications `db:"specifications"`
	Stock          int            `db:"stock"`
	Featured       bool           `db:"featured"`
}

package request

type ProductRequest struct {
	Name           string            `json:"name" validate:"required,max=200"`
	Description    string            `json:"description" validate:"required"`
	Price          float64           `json:"price" validate:"required,gt=0"`
	Category       string            `json:"category" validate:"required,max=100"`
	ImageURL       string            `json:"imageUrl"`
	Specifications map[string]string `json:"specifications"`
	Stock          int               `json:"stock" validate:"gte=0"`
	Featured       bool              `json:"featured"`
}

// ProductUpdateRequest is a partial update; nil fields keep their value.
type ProductUpdateRequest struct {
	Name           *string            `json:"name,omitempty" validate:"omitempty,max=200"`
	Description    *string            `json:"description,omitempty"`
	Price          *float64           `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category       *string            `json:"category,omitempty" validate:"omitempty,max=100"`
	ImageURL       *string            `json:"imageUrl,omitempty"`
	Specifications *map[string]string `json:"specifications,omitempty"`
	Stock          *int               `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Featured       *bool              `json:"featured,omitempty"`
}

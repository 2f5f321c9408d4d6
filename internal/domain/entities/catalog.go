package entities

// LaundryItem is a priced laundry service (wash, iron, dry-clean...).
//
// Storage model:
//   - PK: id
type LaundryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
	Image    string  `json:"image,omitempty"`
}

// UnstitchedItem is a garment (unstitched or readymade) with up to five
// carousel images.
//
// Storage model:
//   - PK: id
type UnstitchedItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Description string   `json:"description,omitempty"`
	Sizes       []string `json:"sizes"`
}

// MaxItemImages caps the unstitched image carousel.
const MaxItemImages = 5

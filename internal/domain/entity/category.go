package entity

// Category categoría de juguetes.
type Category struct {
	ID   int64
	Name string
}

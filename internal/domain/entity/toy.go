package entity

// ToyCodePrefix prefijo de los identificadores de juguete: JUG-<n>.
const ToyCodePrefix = "JUG"

// Toy representa un juguete del catálogo. CategoryName y MaterialName vienen del JOIN y
// quedan vacíos si la referencia es NULL.
type Toy struct {
	ID           string
	Name         string
	CategoryID   *int64
	CategoryName string
	MaterialID   *int64
	MaterialName string
	Stock        int
}

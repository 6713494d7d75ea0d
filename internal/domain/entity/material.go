package entity

// Material material de fabricación de un juguete.
type Material struct {
	ID   int64
	Name string
}

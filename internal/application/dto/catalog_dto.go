package dto

// NameRequest entrada para crear una categoría o un material.
type NameRequest struct {
	Nombre string `json:"nombre"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID     int64  `json:"id_categoria"`
	Nombre string `json:"nombre_categoria"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID     int64  `json:"id_material"`
	Nombre string `json:"nombre_material"`
}

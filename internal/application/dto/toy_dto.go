package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToyRequest entrada para crear o actualizar un juguete. categoria y material son IDs.
type ToyRequest struct {
	Nombre    string   `json:"nombre_juguete"`
	Categoria *FlexInt `json:"categoria"`
	Material  *FlexInt `json:"material"`
	Stock     *FlexInt `json:"stock_disponible"`
}

// FlexInt entero que en JSON acepta número o string numérico ("5"): los formularios del
// frontend envían los IDs como texto.
type FlexInt int64

// UnmarshalJSON admite 5 y "5". null deja el puntero en nil sin pasar por aquí.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("entero inválido %s: %w", b, err)
	}
	*f = FlexInt(n)
	return nil
}

// Int64 devuelve el valor como *int64; nil si no vino.
func (f *FlexInt) Int64() *int64 {
	if f == nil {
		return nil
	}
	v := int64(*f)
	return &v
}

// Int devuelve el valor como *int; nil si no vino.
func (f *FlexInt) Int() *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

// ToyResponse salida de un juguete con los nombres de categoría y material resueltos.
type ToyResponse struct {
	ID          string  `json:"id_juguete"`
	Nombre      string  `json:"nombre_juguete"`
	IDCategoria *int64  `json:"id_categoria"`
	Categoria   *string `json:"categoria"`
	IDMaterial  *int64  `json:"id_material"`
	Material    *string `json:"material"`
	Stock       int     `json:"stock_actual"`
}

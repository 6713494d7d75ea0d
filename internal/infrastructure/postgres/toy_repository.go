package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/juguetes-api/internal/domain"
	"github.com/jhoicas/juguetes-api/internal/domain/entity"
	"github.com/jhoicas/juguetes-api/internal/domain/repository"
)

var _ repository.ToyRepository = (*ToyRepo)(nil)

// Columnas de la vista juguete + categoria + material. %[1]s es el alias de la fila de juguete.
const toyColumns = `
	%[1]s.id_juguete, %[1]s.nombre_juguete,
	%[1]s.id_categoria, COALESCE(c.nombre_categoria, ''),
	%[1]s.id_material, COALESCE(m.nombre_material, ''),
	%[1]s.stock_actual`

const toyJoins = `
	LEFT JOIN categoria c ON %[1]s.id_categoria = c.id_categoria
	LEFT JOIN material m ON %[1]s.id_material = m.id_material`

// ToyRepo implementación del puerto ToyRepository sobre la tabla juguete.
type ToyRepo struct {
	q Querier
}

// NewToyRepository construye el adaptador de persistencia para juguetes.
func NewToyRepository(q Querier) *ToyRepo {
	return &ToyRepo{q: q}
}

// List devuelve todos los juguetes con sus nombres de categoría y material.
// El orden es por número de código (JUG-2 antes que JUG-10).
func (r *ToyRepo) List(ctx context.Context) ([]*entity.Toy, error) {
	query := `SELECT ` + fmt.Sprintf(toyColumns, "j") + `
		FROM juguete j` + fmt.Sprintf(toyJoins, "j") + `
		ORDER BY length(j.id_juguete), j.id_juguete`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list juguetes: %w", err)
	}
	defer rows.Close()
	list := []*entity.Toy{}
	for rows.Next() {
		t, err := scanToy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan juguete: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Create inserta el juguete con ID <prefijo>-<nextval(juguete_codigo_seq)>. La secuencia no repite
// valores, así que no hace falta comprobar colisiones.
func (r *ToyRepo) Create(ctx context.Context, toy *entity.Toy) (*entity.Toy, error) {
	query := `
		WITH ins AS (
			INSERT INTO juguete (id_juguete, nombre_juguete, id_categoria, id_material, stock_actual)
			VALUES ($1::text || '-' || nextval('juguete_codigo_seq')::text, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT ` + fmt.Sprintf(toyColumns, "ins") + `
		FROM ins` + fmt.Sprintf(toyJoins, "ins")
	row := r.q.QueryRow(ctx, query,
		entity.ToyCodePrefix, toy.Name, toy.CategoryID, toy.MaterialID, toy.Stock,
	)
	created, err := scanToy(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert juguete: %w", err)
	}
	return created, nil
}

// Update reemplaza nombre, categoría y material; stock nil conserva stock_actual.
// Devuelve (nil, nil) si no existe el ID.
func (r *ToyRepo) Update(ctx context.Context, id string, toy *entity.Toy, stock *int) (*entity.Toy, error) {
	query := `
		WITH upd AS (
			UPDATE juguete
			SET nombre_juguete = $2, id_categoria = $3, id_material = $4,
			    stock_actual = COALESCE($5, stock_actual)
			WHERE id_juguete = $1
			RETURNING *
		)
		SELECT ` + fmt.Sprintf(toyColumns, "upd") + `
		FROM upd` + fmt.Sprintf(toyJoins, "upd")
	row := r.q.QueryRow(ctx, query, id, toy.Name, toy.CategoryID, toy.MaterialID, stock)
	updated, err := scanToy(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("update juguete: %w", err)
	}
	return updated, nil
}

// Delete elimina un juguete por ID; false si no existía.
func (r *ToyRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM juguete WHERE id_juguete = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete juguete: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanToy(row pgx.Row) (*entity.Toy, error) {
	var t entity.Toy
	if err := row.Scan(
		&t.ID, &t.Name,
		&t.CategoryID, &t.CategoryName,
		&t.MaterialID, &t.MaterialName,
		&t.Stock,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

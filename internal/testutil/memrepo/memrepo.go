// Package memrepo implementa los puertos de repository en memoria para tests de casos de uso y handlers.
// Reproduce las reglas de la base: username y nombres únicos, FKs de categoría/material, IDs JUG-<n>.
package memrepo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jhoicas/juguetes-api/internal/domain"
	"github.com/jhoicas/juguetes-api/internal/domain/entity"
	"github.com/jhoicas/juguetes-api/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*Users)(nil)
	_ repository.ToyRepository      = (*Toys)(nil)
	_ repository.CategoryRepository = (*Categories)(nil)
	_ repository.MaterialRepository = (*Materials)(nil)
)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu sync.Mutex

	userSeq int64
	users   map[string]*entity.User
	toySeq  int64
	toys    map[string]*entity.Toy
	catSeq  int64
	cats    map[int64]*entity.Category
	matSeq  int64
	mats    map[int64]*entity.Material

	// Err, si no es nil, lo devuelven todas las operaciones (simula una caída de la base).
	Err error
}

// New crea un Store vacío.
func New() *Store {
	return &Store{
		users: map[string]*entity.User{},
		toys:  map[string]*entity.Toy{},
		cats:  map[int64]*entity.Category{},
		mats:  map[int64]*entity.Material{},
	}
}

// UserCount número de usuarios persistidos.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Users repositorio de usuarios.
func (s *Store) Users() *Users { return &Users{s: s} }

// Toys repositorio de juguetes.
func (s *Store) Toys() *Toys { return &Toys{s: s} }

// Categories repositorio de categorías.
func (s *Store) Categories() *Categories { return &Categories{s: s} }

// Materials repositorio de materiales.
func (s *Store) Materials() *Materials { return &Materials{s: s} }

// Users implementa repository.UserRepository.
type Users struct{ s *Store }

func (r *Users) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	r.s.userSeq++
	u.ID = r.s.userSeq
	cp := *u
	r.s.users[u.Username] = &cp
	return nil
}

func (r *Users) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	u, ok := r.s.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// Toys implementa repository.ToyRepository.
type Toys struct{ s *Store }

func (r *Toys) List(_ context.Context) ([]*entity.Toy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	list := make([]*entity.Toy, 0, len(r.s.toys))
	for _, t := range r.s.toys {
		list = append(list, r.s.resolve(t))
	}
	sort.Slice(list, func(i, j int) bool { return toySeq(list[i].ID) < toySeq(list[j].ID) })
	return list, nil
}

func (r *Toys) Create(_ context.Context, t *entity.Toy) (*entity.Toy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if err := r.s.checkRefs(t); err != nil {
		return nil, err
	}
	r.s.toySeq++
	cp := *t
	cp.ID = fmt.Sprintf("%s-%d", entity.ToyCodePrefix, r.s.toySeq)
	r.s.toys[cp.ID] = &cp
	return r.s.resolve(&cp), nil
}

func (r *Toys) Update(_ context.Context, id string, t *entity.Toy, stock *int) (*entity.Toy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	cur, ok := r.s.toys[id]
	if !ok {
		return nil, nil
	}
	if err := r.s.checkRefs(t); err != nil {
		return nil, err
	}
	cur.Name = t.Name
	cur.CategoryID = t.CategoryID
	cur.MaterialID = t.MaterialID
	if stock != nil {
		cur.Stock = *stock
	}
	return r.s.resolve(cur), nil
}

func (r *Toys) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	if _, ok := r.s.toys[id]; !ok {
		return false, nil
	}
	delete(r.s.toys, id)
	return true, nil
}

// Categories implementa repository.CategoryRepository.
type Categories struct{ s *Store }

func (r *Categories) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	list := make([]*entity.Category, 0, len(r.s.cats))
	for _, c := range r.s.cats {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Categories) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.cats {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.catSeq++
	c.ID = r.s.catSeq
	cp := *c
	r.s.cats[c.ID] = &cp
	return nil
}

// Materials implementa repository.MaterialRepository.
type Materials struct{ s *Store }

func (r *Materials) List(_ context.Context) ([]*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	list := make([]*entity.Material, 0, len(r.s.mats))
	for _, m := range r.s.mats {
		cp := *m
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Materials) Create(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.mats {
		if existing.Name == m.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.matSeq++
	m.ID = r.s.matSeq
	cp := *m
	r.s.mats[m.ID] = &cp
	return nil
}

// checkRefs emula las FKs de juguete. Requiere s.mu tomado.
func (s *Store) checkRefs(t *entity.Toy) error {
	if t.CategoryID != nil {
		if _, ok := s.cats[*t.CategoryID]; !ok {
			return domain.ErrInvalidReference
		}
	}
	if t.MaterialID != nil {
		if _, ok := s.mats[*t.MaterialID]; !ok {
			return domain.ErrInvalidReference
		}
	}
	return nil
}

// resolve copia el juguete completando los nombres como lo haría el LEFT JOIN. Requiere s.mu tomado.
func (s *Store) resolve(t *entity.Toy) *entity.Toy {
	cp := *t
	cp.CategoryName, cp.MaterialName = "", ""
	if t.CategoryID != nil {
		if c, ok := s.cats[*t.CategoryID]; ok {
			cp.CategoryName = c.Name
		}
	}
	if t.MaterialID != nil {
		if m, ok := s.mats[*t.MaterialID]; ok {
			cp.MaterialName = m.Name
		}
	}
	return &cp
}

func toySeq(id string) int64 {
	n, _ := strconv.ParseInt(strings.TrimPrefix(id, entity.ToyCodePrefix+"-"), 10, 64)
	return n
}

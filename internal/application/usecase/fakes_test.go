package usecase_test

import (
	"context"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Guardan copias para que
// las mutaciones del caso de uso no alcancen el estado interno por aliasing.

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeUserRepo) matches(u *entity.User, f repository.UserFilter) bool {
	if f.ScopeID != "" {
		if u.ID != f.ScopeID && (f.ScopeRole == "" || u.Role != f.ScopeRole) {
			return false
		}
	}
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			return false
		}
	}
	return true
}

func (r *fakeUserRepo) List(f repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if r.matches(u, f) {
			cp := *u
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) Count(f repository.UserFilter) (int, error) {
	n := 0
	for _, u := range r.users {
		if r.matches(u, f) {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories = append(r.categories, &cp)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	for i, existing := range r.categories {
		if existing.ID == c.ID {
			cp := *c
			r.categories[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) Delete(id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByNameAndCategory(name, categoryID string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name && p.CategoryID == categoryID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			cp := *p
			r.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	for _, p := range r.products {
		if p.ID == id {
			p.Stock = stock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) SetHasVariation(id string, has bool) error {
	for _, p := range r.products {
		if p.ID == id {
			p.HasVariation = has
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeVariationRepo struct {
	variations []*entity.Variation
}

func (r *fakeVariationRepo) Create(v *entity.Variation) error {
	cp := *v
	r.variations = append(r.variations, &cp)
	return nil
}

func (r *fakeVariationRepo) GetByID(id string) (*entity.Variation, error) {
	for _, v := range r.variations {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVariationRepo) ListByProduct(productID string, activeOnly bool) ([]*entity.Variation, error) {
	var out []*entity.Variation
	for _, v := range r.variations {
		if v.ProductID != productID {
			continue
		}
		if activeOnly && !v.Active {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeVariationRepo) CountByProduct(productID string) (int, error) {
	n := 0
	for _, v := range r.variations {
		if v.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *fakeVariationRepo) Update(v *entity.Variation) error {
	for i, existing := range r.variations {
		if existing.ID == v.ID {
			cp := *v
			r.variations[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeVariationRepo) Delete(id string) error {
	for i, v := range r.variations {
		if v.ID == id {
			r.variations = append(r.variations[:i], r.variations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeVariationRepo) DeleteByProduct(productID string) error {
	kept := r.variations[:0]
	for _, v := range r.variations {
		if v.ProductID != productID {
			kept = append(kept, v)
		}
	}
	r.variations = kept
	return nil
}

// Variantes que fallan la consulta de duplicados, para verificar que los
// casos de uso propagan el error de la consulta en lugar de tragarlo.

type erroringProductRepo struct {
	fakeProductRepo
	err error
}

func (r *erroringProductRepo) GetByNameAndCategory(string, string) (*entity.Product, error) {
	return nil, r.err
}

type erroringCategoryRepo struct {
	fakeCategoryRepo
	err error
}

func (r *erroringCategoryRepo) GetByName(string) (*entity.Category, error) {
	return nil, r.err
}

// fakeTxRunner ejecuta fn directamente sobre los mismos fakes: suficiente
// para verificar que los efectos ocurren juntos.
type fakeTxRunner struct {
	products   *fakeProductRepo
	variations *fakeVariationRepo
	runs       int
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.VariationRepository) error) error {
	t.runs++
	return fn(t.products, t.variations)
}

// fakeFiles registra las rutas eliminadas.
type fakeFiles struct {
	removed []string
}

func (f *fakeFiles) Remove(relPath string) {
	f.removed = append(f.removed, relPath)
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)
var _ usecase.FileRemover = (*fakeFiles)(nil)
var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)
var _ repository.ProductRepository = (*fakeProductRepo)(nil)
var _ repository.VariationRepository = (*fakeVariationRepo)(nil)

package localstore

import (
	"context"

	"pawlog/internal/domain/pawlog"
)

// collection es el CRUD genérico sobre un arreglo JSON. Cada escritura reescribe el arreglo completo.
type collection[T any, P interface {
	*T
	Meta() *pawlog.Record
}] struct {
	a    *Adapter
	key  string
	name string
}

func (c *collection[T, P]) loadLocked(ctx context.Context) ([]T, error) {
	var items []T
	if _, err := c.a.readLocked(ctx, c.key, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T, P]) indexOf(items []T, id string) int {
	for i := range items {
		if P(&items[i]).Meta().ID == id {
			return i
		}
	}
	return -1
}

// Create asigna id y createdAt. Si la escritura falla devuelve el item armado junto al error.
func (c *collection[T, P]) Create(ctx context.Context, item T) (T, error) {
	c.a.mu.Lock()
	defer c.a.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	m := P(&item).Meta()
	m.ID = c.a.newID()
	m.CreatedAt = c.a.now()

	items = append(items, item)
	return item, c.a.writeLocked(ctx, c.key, items)
}

func (c *collection[T, P]) Read(ctx context.Context, id string) (T, bool, error) {
	c.a.mu.Lock()
	defer c.a.mu.Unlock()

	var zero T
	items, err := c.loadLocked(ctx)
	if err != nil {
		return zero, false, err
	}
	i := c.indexOf(items, id)
	if i < 0 {
		return zero, false, nil
	}
	return items[i], true, nil
}

// Update aplica apply, fija updatedAt y reescribe. id y createdAt no cambian.
func (c *collection[T, P]) Update(ctx context.Context, id string, apply func(*T)) (T, error) {
	c.a.mu.Lock()
	defer c.a.mu.Unlock()

	var zero T
	items, err := c.loadLocked(ctx)
	if err != nil {
		return zero, err
	}
	i := c.indexOf(items, id)
	if i < 0 {
		return zero, pawlog.NotFound(c.name, id)
	}

	m := P(&items[i]).Meta()
	keep := *m
	apply(&items[i])
	now := c.a.now()
	m.ID = keep.ID
	m.CreatedAt = keep.CreatedAt
	m.UpdatedAt = &now

	return items[i], c.a.writeLocked(ctx, c.key, items)
}

func (c *collection[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	c.a.mu.Lock()
	defer c.a.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil {
		return false, err
	}
	i := c.indexOf(items, id)
	if i < 0 {
		return false, nil
	}
	items = append(items[:i], items[i+1:]...)
	return true, c.a.writeLocked(ctx, c.key, items)
}

// DeleteWhere borra todos los que cumplan match con una sola escritura.
func (c *collection[T, P]) DeleteWhere(ctx context.Context, match pawlog.Filter[T]) (int, error) {
	c.a.mu.Lock()
	defer c.a.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, c.a.writeLocked(ctx, c.key, kept)
}

// List devuelve los items que cumplen todos los filtros, en orden de inserción.
func (c *collection[T, P]) List(ctx context.Context, filters ...pawlog.Filter[T]) ([]T, error) {
	c.a.mu.Lock()
	defer c.a.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return items, nil
	}
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, f := range filters {
			if !f(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out, nil
}

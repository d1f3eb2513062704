package repository

import (
	"slices"
	"sync"

	"tour-sport/pkg/utils"
)

// memTable is an insertion-ordered map guarded by a RWMutex.
type memTable[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newMemTable[T any]() *memTable[T] {
	return &memTable[T]{
		rows: make(map[string]T),
	}
}

func (t *memTable[T]) insert(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = row
	t.order = append(t.order, id)
}

func (t *memTable[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *memTable[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []T{}
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			out = append(out, row)
		}
	}
	return out
}

// update applies fn to the stored row and reports whether it existed.
func (t *memTable[T]) update(id string, fn func(*T)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return false
	}
	fn(&row)
	t.rows[id] = row
	return true
}

func (t *memTable[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(v string) bool { return v == id })
	return true
}

// memKey normalises id to the canonical UUID form used as map key.
func memKey(id string) (string, error) {
	parsed, err := utils.ParseUUID(id)
	if err != nil {
		return "", invalidID(id, err)
	}
	return parsed.String(), nil
}

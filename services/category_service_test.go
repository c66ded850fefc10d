package services

import (
	"context"
	"errors"
	"testing"

	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newCategoryService(names NameIndex) *CategoryService {
	return NewCategoryService(gecho.NewDefaultLogger(), nil, names)
}

func TestCategoryNameUniqueness(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		create   string
		conflict bool
	}{
		{"exact duplicate", "bebidas", "bebidas", true},
		{"differs only in case", "bebidas", "Bebidas", true},
		{"upper case duplicate", "bebidas", "BEBIDAS", true},
		{"distinct name", "bebidas", "postres", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := &fakeNameIndex{rows: map[uuid.UUID]string{uuid.New(): tt.existing}}
			svc := newCategoryService(index)

			err := svc.ensureNameAvailable(context.Background(), tt.create, uuid.Nil)
			if tt.conflict {
				assert.ErrorIs(t, err, lib.ErrConflict)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCategoryConflict(t *testing.T) {
	index := &fakeNameIndex{rows: map[uuid.UUID]string{uuid.New(): "bebidas"}}
	svc := newCategoryService(index)

	created, err := svc.CreateCategory(context.Background(), &structs.CategoryRequest{Name: "Bebidas"})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, lib.ErrConflict)
	assert.Equal(t, uuid.Nil, index.lastExclude)
}

func TestUpdateCategoryConflictWithOtherRow(t *testing.T) {
	selfId := uuid.New()
	index := &fakeNameIndex{rows: map[uuid.UUID]string{
		selfId:     "bebidas",
		uuid.New(): "postres",
	}}
	svc := newCategoryService(index)

	updated, err := svc.UpdateCategory(context.Background(), selfId, &structs.CategoryRequest{Name: "POSTRES"})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, lib.ErrConflict)
	assert.Equal(t, selfId, index.lastExclude)
}

func TestUpdateCategoryKeepsOwnName(t *testing.T) {
	selfId := uuid.New()
	index := &fakeNameIndex{rows: map[uuid.UUID]string{selfId: "bebidas"}}
	svc := newCategoryService(index)

	// Renaming a category to a case variant of its own name is not a
	// conflict; the row being updated is excluded from the lookup.
	err := svc.ensureNameAvailable(context.Background(), "BEBIDAS", selfId)
	assert.NoError(t, err)
}

func TestCreateCategoryIndexFailure(t *testing.T) {
	index := &fakeNameIndex{err: errors.New("connection refused")}
	svc := newCategoryService(index)

	created, err := svc.CreateCategory(context.Background(), &structs.CategoryRequest{Name: "Bebidas"})

	assert.Nil(t, created)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, lib.ErrConflict)
}

package services

import (
	"context"
	"testing"

	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newUserService(names NameIndex) *UserService {
	return NewUserService(gecho.NewDefaultLogger(), nil, names)
}

func TestCreateUserUsernameConflict(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{"exact duplicate", "carlos"},
		{"differs only in case", "Carlos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := &fakeNameIndex{rows: map[uuid.UUID]string{uuid.New(): "carlos"}}
			svc := newUserService(index)

			created, err := svc.CreateUser(context.Background(), &structs.CreateUserRequest{
				Username: tt.username,
				Password: "hunter2hunter2",
			})

			assert.Nil(t, created)
			assert.ErrorIs(t, err, lib.ErrConflict)
		})
	}
}

func TestUpdateUserRenameConflict(t *testing.T) {
	selfId := uuid.New()
	index := &fakeNameIndex{rows: map[uuid.UUID]string{
		selfId:     "carlos",
		uuid.New(): "ana",
	}}
	svc := newUserService(index)

	username := "ANA"
	updated, err := svc.UpdateUser(context.Background(), selfId, &structs.UpdateUserRequest{Username: &username})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, lib.ErrConflict)
	assert.Equal(t, selfId, index.lastExclude)
}

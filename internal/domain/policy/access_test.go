package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/policy"
)

func user(id, role string) *entity.User {
	return &entity.User{ID: id, Role: role, Active: true}
}

// Matriz completa (rol del actor x rol del objetivo, self y no-self).
func TestCanAccessUser_Matriz(t *testing.T) {
	cases := []struct {
		name       string
		actorRole  string
		targetRole string
		self       bool
		want       bool
	}{
		{"admin accede a cualquier admin", entity.RoleAdmin, entity.RoleAdmin, false, true},
		{"admin accede a cualquier dealer", entity.RoleAdmin, entity.RoleDealer, false, true},
		{"admin accede a cualquier client", entity.RoleAdmin, entity.RoleClient, false, true},
		{"client accede a sí mismo", entity.RoleClient, entity.RoleClient, true, true},
		{"client no accede a otro client", entity.RoleClient, entity.RoleClient, false, false},
		{"client no accede a un admin", entity.RoleClient, entity.RoleAdmin, false, false},
		{"dealer accede a sí mismo", entity.RoleDealer, entity.RoleDealer, true, true},
		{"dealer accede a un client", entity.RoleDealer, entity.RoleClient, false, true},
		{"dealer no accede a otro dealer", entity.RoleDealer, entity.RoleDealer, false, false},
		{"dealer no accede a un admin", entity.RoleDealer, entity.RoleAdmin, false, false},
		{"rol desconocido no accede a nada", "SUPERVISOR", entity.RoleClient, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			targetID := "target-1"
			actorID := "actor-1"
			if tc.self {
				actorID = targetID
			}
			actor := policy.Actor{ID: actorID, Role: tc.actorRole}
			got := policy.CanAccessUser(actor, user(targetID, tc.targetRole))
			assert.Equal(t, tc.want, got)
		})
	}
}

// Reflexividad: actor.id == target.id siempre permite el acceso
// para los roles conocidos.
func TestCanAccessUser_ReflexivoParaSelf(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleDealer, entity.RoleClient} {
		actor := policy.Actor{ID: "u1", Role: role}
		assert.True(t, policy.CanAccessUser(actor, user("u1", role)),
			"el rol %s debe poder acceder a su propio registro", role)
	}
}

func TestCanDeleteUser_ReglasEstrictas(t *testing.T) {
	admin := policy.Actor{ID: "a1", Role: entity.RoleAdmin}
	dealer := policy.Actor{ID: "d1", Role: entity.RoleDealer}
	client := policy.Actor{ID: "c1", Role: entity.RoleClient}

	assert.True(t, policy.CanDeleteUser(admin, user("x", entity.RoleDealer)))
	assert.True(t, policy.CanDeleteUser(admin, user("x", entity.RoleClient)))

	assert.True(t, policy.CanDeleteUser(dealer, user("x", entity.RoleClient)))
	assert.False(t, policy.CanDeleteUser(dealer, user("x", entity.RoleDealer)))
	assert.False(t, policy.CanDeleteUser(dealer, user("x", entity.RoleAdmin)))

	assert.False(t, policy.CanDeleteUser(client, user("x", entity.RoleClient)))
	assert.False(t, policy.CanDeleteUser(client, user("x", entity.RoleAdmin)))

	unknown := policy.Actor{ID: "u1", Role: "SUPERVISOR"}
	assert.False(t, policy.CanDeleteUser(unknown, user("x", entity.RoleClient)))
}

// Package policy contiene las reglas de control de acceso sobre usuarios.
// Son funciones puras: no consultan la base de datos ni dependen del transporte.
package policy

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// Actor es la identidad autenticada que ejecuta una operación (id + rol del token).
type Actor struct {
	ID   string
	Role string
}

// Tabla de decisión por rol para lectura/actualización de un User objetivo.
// Un rol desconocido no tiene entrada y por lo tanto no tiene acceso.
var accessRules = map[string]func(actor Actor, target *entity.User) bool{
	entity.RoleAdmin: func(Actor, *entity.User) bool {
		return true
	},
	entity.RoleClient: func(a Actor, t *entity.User) bool {
		return a.ID == t.ID
	},
	entity.RoleDealer: func(a Actor, t *entity.User) bool {
		return a.ID == t.ID || t.Role == entity.RoleClient
	},
}

// CanAccessUser decide si el actor puede leer o modificar el usuario objetivo.
// Aplica a getById, update y updatePassword. Delete tiene una regla más
// estricta (ver CanDeleteUser).
func CanAccessUser(actor Actor, target *entity.User) bool {
	rule, ok := accessRules[actor.Role]
	if !ok {
		return false
	}
	return rule(actor, target)
}

// Tabla de decisión por rol para eliminación. No contempla el caso
// actor == objetivo: ese es SelfDelete y se rechaza antes en el caso de uso.
var deleteRules = map[string]func(actor Actor, target *entity.User) bool{
	entity.RoleAdmin: func(Actor, *entity.User) bool {
		return true
	},
	entity.RoleDealer: func(_ Actor, t *entity.User) bool {
		return t.Role == entity.RoleClient
	},
}

// CanDeleteUser decide si el actor puede eliminar al usuario objetivo.
// CLIENT nunca elimina; DEALER solo elimina CLIENTs; ADMIN elimina a cualquiera.
func CanDeleteUser(actor Actor, target *entity.User) bool {
	rule, ok := deleteRules[actor.Role]
	if !ok {
		return false
	}
	return rule(actor, target)
}

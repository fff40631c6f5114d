package model

import (
	"regexp"
	"time"
	"unicode/utf8"
)

// Usuario represents a registered user.
//
// Senha holds the bcrypt hash of the password and is never serialized;
// read operations leave it empty except GetByEmail, which needs it for
// credential checks.
type Usuario struct {
	ID           int64     `json:"id" db:"id"`
	Nome         string    `json:"nome" db:"nome"`
	Email        string    `json:"email" db:"email"`
	Senha        string    `json:"-" db:"senha"`
	Telefone     *string   `json:"telefone" db:"telefone"`
	CriadoEm     time.Time `json:"criado_em" db:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em" db:"atualizado_em"`
}

// CreateUsuarioParams holds the fields accepted when creating a user.
type CreateUsuarioParams struct {
	Nome     string  `json:"nome"`
	Email    string  `json:"email"`
	Senha    string  `json:"senha"`
	Telefone *string `json:"telefone"`
}

// UpdateUsuarioParams holds the updatable fields of a user. A nil field
// is omitted from the UPDATE statement; only supplied fields change.
type UpdateUsuarioParams struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	Senha    *string `json:"senha"`
	Telefone *string `json:"telefone"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UsuarioValidations maps user fields to their format predicates. Services
// run these before any storage call.
var UsuarioValidations = struct {
	Nome  func(string) bool
	Email func(string) bool
	Senha func(string) bool
}{
	Nome:  func(v string) bool { return utf8.RuneCountInString(v) >= 3 },
	Email: func(v string) bool { return v != "" && emailRegex.MatchString(v) },
	Senha: func(v string) bool { return utf8.RuneCountInString(v) >= 6 },
}

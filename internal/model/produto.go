package model

import (
	"time"
	"unicode/utf8"
)

// Produto represents a catalogue product.
type Produto struct {
	ID           int64     `json:"id" db:"id"`
	Nome         string    `json:"nome" db:"nome"`
	Descricao    *string   `json:"descricao" db:"descricao"`
	Preco        float64   `json:"preco" db:"preco"`
	Estoque      int       `json:"estoque" db:"estoque"`
	Categoria    *string   `json:"categoria" db:"categoria"`
	CriadoEm     time.Time `json:"criado_em" db:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em" db:"atualizado_em"`
}

// CreateProdutoParams holds the fields accepted when creating a product.
// Preco and Estoque are pointers so that a missing field can be told apart
// from an explicit zero: estoque 0 is a valid value, not an absent one.
type CreateProdutoParams struct {
	Nome      string   `json:"nome"`
	Descricao *string  `json:"descricao"`
	Preco     *float64 `json:"preco"`
	Estoque   *int     `json:"estoque"`
	Categoria *string  `json:"categoria"`
}

// UpdateProdutoParams holds the updatable fields of a product. A nil field
// is omitted from the UPDATE statement.
type UpdateProdutoParams struct {
	Nome      *string  `json:"nome"`
	Descricao *string  `json:"descricao"`
	Preco     *float64 `json:"preco"`
	Estoque   *int     `json:"estoque"`
	Categoria *string  `json:"categoria"`
}

// ProdutoValidations maps product field names to their format predicates.
// The create path checks only nome presence; the length predicate is not
// applied there.
var ProdutoValidations = struct {
	Nome    func(string) bool
	Preco   func(float64) bool
	Estoque func(int) bool
}{
	Nome:    func(v string) bool { return utf8.RuneCountInString(v) >= 3 },
	Preco:   func(v float64) bool { return v > 0 },
	Estoque: func(v int) bool { return v >= 0 },
}

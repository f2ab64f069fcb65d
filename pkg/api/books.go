package api

import "github.com/openbiblio/biblio/internal/models"

// BookInput carries the writable fields of a book. Create and update send
// these as multipart form fields alongside the optional cover image part.
type BookInput struct {
	Title     string           `json:"titulo"`
	Author    string           `json:"autor"`
	Genre     models.Genre     `json:"genero"`
	AgeRating models.AgeRating `json:"classificacaoEtaria"`
	Condition models.Condition `json:"estadoConservacao"`
	Synopsis  string           `json:"sinopse"`
}

// GenreStat is one row of GET /api/livros/estatisticas/generos.
type GenreStat struct {
	Genre models.Genre `json:"genero"`
	Count int          `json:"quantidade"`
}

// ConditionStat is one row of GET /api/livros/estatisticas/conservacao.
type ConditionStat struct {
	Name  models.Condition `json:"nome"`
	Count int              `json:"quantidade"`
}

package models

// Genre classifies a book in the catalog.
type Genre string

const (
	GenreFiction    Genre = "FICCAO"
	GenreNonFiction Genre = "NAO_FICCAO"
	GenreHorror     Genre = "TERROR"
	GenreRomance    Genre = "ROMANCE"
	GenreEducation  Genre = "EDUCACAO"
	GenreTechnical  Genre = "TECNICO"
)

// GenreLabels maps API genre values to display labels.
var GenreLabels = map[Genre]string{
	GenreFiction:    "Ficção",
	GenreNonFiction: "Não-Ficção",
	GenreHorror:     "Terror",
	GenreRomance:    "Romance",
	GenreEducation:  "Educação",
	GenreTechnical:  "Técnico",
}

// AgeRating is the minimum reader age classification.
type AgeRating string

const (
	RatingFree     AgeRating = "LIVRE"
	RatingTwelve   AgeRating = "DOZE_ANOS"
	RatingFourteen AgeRating = "QUATORZE_ANOS"
	RatingSixteen  AgeRating = "DEZESSEIS_ANOS"
	RatingEighteen AgeRating = "DEZOITO_ANOS"
)

// AgeRatingLabels maps API age rating values to display labels.
var AgeRatingLabels = map[AgeRating]string{
	RatingFree:     "Livre",
	RatingTwelve:   "12 anos",
	RatingFourteen: "14 anos",
	RatingSixteen:  "16 anos",
	RatingEighteen: "18 anos",
}

// Condition describes the physical state of a copy.
type Condition string

const (
	ConditionGreat   Condition = "OTIMO"
	ConditionGood    Condition = "BOM"
	ConditionRegular Condition = "REGULAR"
	ConditionPoor    Condition = "RUIM"
)

// ConditionLabels maps API condition values to display labels.
var ConditionLabels = map[Condition]string{
	ConditionGreat:   "Ótimo",
	ConditionGood:    "Bom",
	ConditionRegular: "Regular",
	ConditionPoor:    "Ruim",
}

// Book is a catalog entry as returned by the library API.
type Book struct {
	ID               string    `json:"id"`
	Title            string    `json:"titulo"`
	Author           string    `json:"autor"`
	Genre            Genre     `json:"genero"`
	CoverURL         string    `json:"capaFoto"`
	AvailableForLoan bool      `json:"disponivelLocacao"`
	AgeRating        AgeRating `json:"classificacaoEtaria"`
	Condition        Condition `json:"estadoConservacao"`
	Synopsis         string    `json:"sinopse"`
}

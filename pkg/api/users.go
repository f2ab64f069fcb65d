package api

import "github.com/openbiblio/biblio/internal/models"

// UserUpdateRequest is the body of PUT /api/usuarios/{id}. Nil fields are
// omitted so the API only touches what the caller changed.
type UserUpdateRequest struct {
	Name *string      `json:"nome,omitempty"`
	Age  *int         `json:"idade,omitempty"`
	Role *models.Role `json:"role,omitempty"`
}

// Pageable is the paging metadata inside a page envelope.
type Pageable struct {
	PageNumber    int `json:"pageNumber"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

// PageResponse is the page envelope used by the paginated user listing.
type PageResponse[T any] struct {
	Content  []T      `json:"content"`
	Pageable Pageable `json:"pageable"`
}

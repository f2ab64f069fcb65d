package api

// LoanCreateRequest is the body of POST /api/locacoes.
type LoanCreateRequest struct {
	BookID string `json:"livroId"`
	UserID string `json:"usuarioId"`
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openbiblio/biblio/internal/models"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

// ListLoans performs GET /api/locacoes.
func (c *Client) ListLoans(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	if err := c.doRequest(ctx, http.MethodGet, "/api/locacoes", nil, nil, &loans); err != nil {
		return nil, fmt.Errorf("list loans request failed: %w", err)
	}
	return loans, nil
}

// CreateLoan performs POST /api/locacoes, checking a book out to a user.
func (c *Client) CreateLoan(ctx context.Context, bookID, userID string) (*models.Loan, error) {
	var loan models.Loan
	req := pkgapi.LoanCreateRequest{BookID: bookID, UserID: userID}
	if err := c.doRequest(ctx, http.MethodPost, "/api/locacoes", nil, req, &loan); err != nil {
		return nil, fmt.Errorf("create loan request failed: %w", err)
	}
	return &loan, nil
}

// ReturnLoan performs PUT /api/locacoes/{id}/devolver.
func (c *Client) ReturnLoan(ctx context.Context, id string) (*models.Loan, error) {
	var loan models.Loan
	path := fmt.Sprintf("/api/locacoes/%s/devolver", id)
	if err := c.doRequest(ctx, http.MethodPut, path, nil, nil, &loan); err != nil {
		return nil, fmt.Errorf("return loan request failed: %w", err)
	}
	return &loan, nil
}

// CancelLoan performs PUT /api/locacoes/{id}/cancelar.
func (c *Client) CancelLoan(ctx context.Context, id string) (*models.Loan, error) {
	var loan models.Loan
	path := fmt.Sprintf("/api/locacoes/%s/cancelar", id)
	if err := c.doRequest(ctx, http.MethodPut, path, nil, nil, &loan); err != nil {
		return nil, fmt.Errorf("cancel loan request failed: %w", err)
	}
	return &loan, nil
}

// ActiveLoanCount performs GET /api/locacoes/ativas/quantidade.
func (c *Client) ActiveLoanCount(ctx context.Context) (int, error) {
	var count int
	if err := c.doRequest(ctx, http.MethodGet, "/api/locacoes/ativas/quantidade", nil, nil, &count); err != nil {
		return 0, fmt.Errorf("active loan count request failed: %w", err)
	}
	return count, nil
}

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/openbiblio/biblio/internal/models"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

// ListBooks performs GET /api/livros. The catalog is returned whole; paging
// of the book list is a presentation concern.
func (c *Client) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.doRequest(ctx, http.MethodGet, "/api/livros", nil, nil, &books); err != nil {
		return nil, fmt.Errorf("list books request failed: %w", err)
	}
	return books, nil
}

// GetBook performs GET /api/livros/{id}.
func (c *Client) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	path := fmt.Sprintf("/api/livros/%s", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &book); err != nil {
		return nil, fmt.Errorf("get book request failed: %w", err)
	}
	return &book, nil
}

// CreateBook performs POST /api/livros as multipart form data. coverPath may
// be empty, in which case no image part is sent.
func (c *Client) CreateBook(ctx context.Context, input pkgapi.BookInput, coverPath string) (*models.Book, error) {
	var book models.Book
	if err := c.doMultipart(ctx, http.MethodPost, "/api/livros", input, coverPath, &book); err != nil {
		return nil, fmt.Errorf("create book request failed: %w", err)
	}
	return &book, nil
}

// UpdateBook performs PUT /api/livros/{id} as multipart form data.
func (c *Client) UpdateBook(ctx context.Context, id string, input pkgapi.BookInput, coverPath string) (*models.Book, error) {
	var book models.Book
	path := fmt.Sprintf("/api/livros/%s", id)
	if err := c.doMultipart(ctx, http.MethodPut, path, input, coverPath, &book); err != nil {
		return nil, fmt.Errorf("update book request failed: %w", err)
	}
	return &book, nil
}

// DeleteBook performs DELETE /api/livros/{id}.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/livros/%s", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete book request failed: %w", err)
	}
	return nil
}

// GenreStats performs GET /api/livros/estatisticas/generos.
func (c *Client) GenreStats(ctx context.Context) ([]pkgapi.GenreStat, error) {
	var stats []pkgapi.GenreStat
	if err := c.doRequest(ctx, http.MethodGet, "/api/livros/estatisticas/generos", nil, nil, &stats); err != nil {
		return nil, fmt.Errorf("genre stats request failed: %w", err)
	}
	return stats, nil
}

// ConditionStats performs GET /api/livros/estatisticas/conservacao.
func (c *Client) ConditionStats(ctx context.Context) ([]pkgapi.ConditionStat, error) {
	var stats []pkgapi.ConditionStat
	if err := c.doRequest(ctx, http.MethodGet, "/api/livros/estatisticas/conservacao", nil, nil, &stats); err != nil {
		return nil, fmt.Errorf("condition stats request failed: %w", err)
	}
	return stats, nil
}

// doMultipart builds the multipart body for book create/update: one form
// field per BookInput field plus an optional capaFoto file part.
func (c *Client) doMultipart(ctx context.Context, method, path string, input pkgapi.BookInput, coverPath string, result interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"titulo":              input.Title,
		"autor":               input.Author,
		"genero":              string(input.Genre),
		"classificacaoEtaria": string(input.AgeRating),
		"estadoConservacao":   string(input.Condition),
		"sinopse":             input.Synopsis,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	if coverPath != "" {
		file, err := os.Open(coverPath)
		if err != nil {
			return fmt.Errorf("failed to open cover image: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()

		part, err := writer.CreateFormFile("capaFoto", filepath.Base(coverPath))
		if err != nil {
			return fmt.Errorf("failed to create cover form part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("failed to copy cover image: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(ctx, method, path, nil, &buf, writer.FormDataContentType(), result)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbiblio/biblio/internal/models"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080", 5*time.Second)

	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("http://localhost:8080", 0)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test@example.com", req.Email)
		assert.Equal(t, "password123", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pkgapi.AuthResponse{
			Token: "fake-token",
			User: models.User{
				ID:    "1",
				Name:  "Test User",
				Email: "test@example.com",
				Role:  models.RoleCommon,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	resp, err := client.Login(context.Background(), pkgapi.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "fake-token", resp.Token)
	assert.Equal(t, "Test User", resp.User.Name)
}

func TestClient_Login_ServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Message: "credenciais inválidas"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Login(context.Background(), pkgapi.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "credenciais inválidas")
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/registro", r.URL.Path)

		var req pkgapi.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Test User", req.Name)
		assert.Equal(t, 30, req.Age)

		_ = json.NewEncoder(w).Encode(pkgapi.AuthResponse{Token: "fake-token"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	resp, err := client.Register(context.Background(), pkgapi.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Age:      30,
	})

	require.NoError(t, err)
	assert.Equal(t, "fake-token", resp.Token)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fake-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Book{})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	client.SetTokenSource(func() string { return "fake-token" })

	_, err := client.ListBooks(context.Background())
	require.NoError(t, err)
}

func TestClient_NoAuthorizationWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Book{})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	client.SetTokenSource(func() string { return "" })

	_, err := client.ListBooks(context.Background())
	require.NoError(t, err)
}

// A 401 from any endpoint fires the registered callback exactly once per
// response and surfaces ErrUnauthorized.
func TestClient_OnUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	calls := 0
	client.SetOnUnauthorized(func() { calls++ })

	_, err := client.ListBooks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, calls)

	_, err = client.ListLoans(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 2, calls)
}

func TestClient_Unauthorized_NoCallbackRegistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.ListBooks(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ListUsers_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/usuarios", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))

		_ = json.NewEncoder(w).Encode(pkgapi.PageResponse[models.User]{
			Content: []models.User{{ID: "1", Name: "Maria"}},
			Pageable: pkgapi.Pageable{
				PageNumber:    2,
				PageSize:      20,
				TotalElements: 41,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	resp, err := client.ListUsers(context.Background(), 2, 20)

	require.NoError(t, err)
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "Maria", resp.Content[0].Name)
	assert.Equal(t, 41, resp.Pageable.TotalElements)
}

func TestClient_ActiveLoanCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/locacoes/ativas/quantidade", r.URL.Path)
		_, _ = w.Write([]byte("7"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	count, err := client.ActiveLoanCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestClient_LoanTransitions(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *Client) (*models.Loan, error)
		wantPath string
	}{
		{
			name:     "return",
			call:     func(c *Client) (*models.Loan, error) { return c.ReturnLoan(context.Background(), "l1") },
			wantPath: "/api/locacoes/l1/devolver",
		},
		{
			name:     "cancel",
			call:     func(c *Client) (*models.Loan, error) { return c.CancelLoan(context.Background(), "l1") },
			wantPath: "/api/locacoes/l1/cancelar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				_ = json.NewEncoder(w).Encode(models.Loan{ID: "l1"})
			}))
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second)
			loan, err := tt.call(client)

			require.NoError(t, err)
			assert.Equal(t, "l1", loan.ID)
		})
	}
}

func TestClient_DeleteBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/livros/b1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	assert.NoError(t, client.DeleteBook(context.Background(), "b1"))
}

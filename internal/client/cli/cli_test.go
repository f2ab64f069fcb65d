package cli

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbiblio/biblio/internal/client/notify"
	"github.com/openbiblio/biblio/internal/client/session"
	"github.com/openbiblio/biblio/internal/models"
)

// fakeIO scripts terminal input and captures output.
type fakeIO struct {
	out    strings.Builder
	inputs []string
}

func (f *fakeIO) Println(a ...any) {
	fmt.Fprintln(&f.out, a...)
}

func (f *fakeIO) Printf(format string, a ...any) {
	fmt.Fprintf(&f.out, format, a...)
}

func (f *fakeIO) ReadInput(prompt string) (string, error) {
	if len(f.inputs) == 0 {
		return "", io.EOF
	}
	input := f.inputs[0]
	f.inputs = f.inputs[1:]
	return input, nil
}

func (f *fakeIO) ReadPassword(prompt string) (string, error) {
	return f.ReadInput(prompt)
}

func (f *fakeIO) Confirm(prompt string) (bool, error) {
	input, err := f.ReadInput(prompt)
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(input)
	return answer == "s" || answer == "sim", nil
}

func TestFilterBooksByTitle(t *testing.T) {
	books := []models.Book{
		{ID: "1", Title: "Dom Casmurro"},
		{ID: "2", Title: "Memórias Póstumas"},
		{ID: "3", Title: "dom quixote"},
	}

	assert.Len(t, filterBooksByTitle(books, ""), 3)

	matched := filterBooksByTitle(books, "DOM")
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].ID)
	assert.Equal(t, "3", matched[1].ID)

	assert.Empty(t, filterBooksByTitle(books, "inexistente"))
}

func TestFilterUsersByName(t *testing.T) {
	users := []models.User{
		{ID: "1", Name: "Maria Silva"},
		{ID: "2", Name: "João Souza"},
		{ID: "3", Name: "maria clara"},
	}

	matched := filterUsersByName(users, "MARIA")
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].ID)

	assert.Empty(t, filterUsersByName(users, "pedro"))
}

func TestBookFlags_Input(t *testing.T) {
	valid := bookFlags{
		title:     "Dom Casmurro",
		author:    "Machado de Assis",
		genre:     string(models.GenreRomance),
		rating:    string(models.RatingFree),
		condition: string(models.ConditionGood),
		synopsis:  "Bentinho e Capitu.",
	}

	input, err := valid.input()
	require.NoError(t, err)
	assert.Equal(t, "Dom Casmurro", input.Title)
	assert.Equal(t, models.GenreRomance, input.Genre)

	tests := []struct {
		name   string
		mutate func(f *bookFlags)
	}{
		{name: "missing title", mutate: func(f *bookFlags) { f.title = "" }},
		{name: "missing author", mutate: func(f *bookFlags) { f.author = "" }},
		{name: "unknown genre", mutate: func(f *bookFlags) { f.genre = "POESIA" }},
		{name: "unknown rating", mutate: func(f *bookFlags) { f.rating = "ADULTO" }},
		{name: "unknown condition", mutate: func(f *bookFlags) { f.condition = "NOVO" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := valid
			tt.mutate(&flags)
			_, err := flags.input()
			assert.Error(t, err)
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	got, ok := tokenExpiry(token)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiry_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tokenExpiry(tt.token)
			assert.False(t, ok)
		})
	}
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	_, ok := tokenExpiry(token)
	assert.False(t, ok)
}

func TestAttachToastPrinter(t *testing.T) {
	q := notify.NewQueue()
	fake := &fakeIO{}
	unsubscribe := AttachToastPrinter(q, fake)
	defer unsubscribe()

	q.Success("Login realizado com sucesso", "Bem-vindo, Maria!")
	assert.Contains(t, fake.out.String(), "✓ Login realizado com sucesso: Bem-vindo, Maria!")

	q.Error("Erro ao fazer login", "")
	assert.Contains(t, fake.out.String(), "✗ Erro ao fazer login")

	// Dismissal changes state but must not reprint.
	before := fake.out.String()
	q.DismissAll()
	assert.Equal(t, before, fake.out.String())
}

func TestTermRouter_Navigate(t *testing.T) {
	fake := &fakeIO{}
	router := NewRouter(fake)

	router.Navigate(session.ViewLogin)
	assert.Contains(t, fake.out.String(), "biblio login")

	router.Navigate(session.ViewDashboard)
	assert.Contains(t, fake.out.String(), "biblio dashboard")
}

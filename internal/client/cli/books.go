package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openbiblio/biblio/internal/client/table"
	"github.com/openbiblio/biblio/internal/models"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

func newBooksCmd(c *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse and manage the catalog",
	}

	var search, sortKey string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog books",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBooksList(cmd, search, sortKey)
		},
	}
	list.Flags().StringVar(&search, "search", "", "filter by title")
	list.Flags().StringVar(&sortKey, "sort", "", "sort column (titulo, autor, genero)")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBooksGet(cmd, args[0])
		},
	}

	addFlags := bookFlags{}
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBooksAdd(cmd, addFlags)
		},
	}
	addFlags.register(add)

	updateFlags := bookFlags{}
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a catalog book (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBooksUpdate(cmd, args[0], updateFlags)
		},
	}
	updateFlags.register(update)

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a book from the catalog (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBooksRemove(cmd, args[0])
		},
	}

	cmd.AddCommand(list, get, add, update, rm)
	return cmd
}

// bookFlags collects the writable book fields for add/update.
type bookFlags struct {
	title     string
	author    string
	genre     string
	rating    string
	condition string
	synopsis  string
	cover     string
}

func (f *bookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "book title")
	cmd.Flags().StringVar(&f.author, "author", "", "book author")
	cmd.Flags().StringVar(&f.genre, "genre", "", "genre (FICCAO, NAO_FICCAO, TERROR, ROMANCE, EDUCACAO, TECNICO)")
	cmd.Flags().StringVar(&f.rating, "rating", string(models.RatingFree), "age rating (LIVRE, DOZE_ANOS, QUATORZE_ANOS, DEZESSEIS_ANOS, DEZOITO_ANOS)")
	cmd.Flags().StringVar(&f.condition, "condition", string(models.ConditionGood), "condition (OTIMO, BOM, REGULAR, RUIM)")
	cmd.Flags().StringVar(&f.synopsis, "synopsis", "", "synopsis")
	cmd.Flags().StringVar(&f.cover, "cover", "", "path to the cover image file")
}

func (f *bookFlags) input() (pkgapi.BookInput, error) {
	if f.title == "" || f.author == "" {
		return pkgapi.BookInput{}, fmt.Errorf("--title and --author are required")
	}

	genre := models.Genre(f.genre)
	if _, ok := models.GenreLabels[genre]; !ok {
		return pkgapi.BookInput{}, fmt.Errorf("unknown genre: %s", f.genre)
	}
	rating := models.AgeRating(f.rating)
	if _, ok := models.AgeRatingLabels[rating]; !ok {
		return pkgapi.BookInput{}, fmt.Errorf("unknown age rating: %s", f.rating)
	}
	condition := models.Condition(f.condition)
	if _, ok := models.ConditionLabels[condition]; !ok {
		return pkgapi.BookInput{}, fmt.Errorf("unknown condition: %s", f.condition)
	}

	return pkgapi.BookInput{
		Title:     f.title,
		Author:    f.author,
		Genre:     genre,
		AgeRating: rating,
		Condition: condition,
		Synopsis:  f.synopsis,
	}, nil
}

func bookColumns() []table.Column[models.Book] {
	return []table.Column[models.Book]{
		{Key: "id", Header: "ID", Cell: func(b models.Book) string { return b.ID }},
		{Key: "titulo", Header: "Título", Cell: func(b models.Book) string { return b.Title }},
		{Key: "autor", Header: "Autor", Cell: func(b models.Book) string { return b.Author }},
		{Key: "genero", Header: "Gênero", Cell: func(b models.Book) string { return models.GenreLabels[b.Genre] }},
		{Key: "classificacao", Header: "Classificação", Cell: func(b models.Book) string { return models.AgeRatingLabels[b.AgeRating] }},
		{Key: "disponivel", Header: "Disponível", Cell: func(b models.Book) string {
			if b.AvailableForLoan {
				return "Sim"
			}
			return "Não"
		}},
	}
}

func (c *Cli) runBooksList(cmd *cobra.Command, search, sortKey string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	books, err := c.api.ListBooks(cmd.Context())
	if err != nil {
		c.toasts.Error("Erro ao carregar livros", "Não foi possível carregar o catálogo.")
		return err
	}

	model := table.New(bookColumns())
	model.SetData(books)

	// Filtering is the page's business: the search callback narrows the
	// data handed to the viewer, the viewer only forwards the query.
	model.SetSearch("Título", func(query string) {
		model.SetData(filterBooksByTitle(books, query))
	})
	if search != "" {
		model.Search(search)
	}
	if sortKey != "" {
		model.ToggleSort(sortKey)
	}

	model.Render(c.out)
	return nil
}

func filterBooksByTitle(books []models.Book, query string) []models.Book {
	if query == "" {
		return books
	}
	q := strings.ToLower(query)
	var out []models.Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) {
			out = append(out, b)
		}
	}
	return out
}

func (c *Cli) runBooksGet(cmd *cobra.Command, id string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	book, err := c.api.GetBook(cmd.Context(), id)
	if err != nil {
		return err
	}

	c.io.Printf("Título:        %s\n", book.Title)
	c.io.Printf("Autor:         %s\n", book.Author)
	c.io.Printf("Gênero:        %s\n", models.GenreLabels[book.Genre])
	c.io.Printf("Classificação: %s\n", models.AgeRatingLabels[book.AgeRating])
	c.io.Printf("Conservação:   %s\n", models.ConditionLabels[book.Condition])
	if book.AvailableForLoan {
		c.io.Println("Disponível:    Sim")
	} else {
		c.io.Println("Disponível:    Não")
	}
	if book.Synopsis != "" {
		c.io.Printf("Sinopse:       %s\n", book.Synopsis)
	}
	if book.CoverURL != "" {
		c.io.Printf("Capa:          %s\n", book.CoverURL)
	}
	return nil
}

func (c *Cli) runBooksAdd(cmd *cobra.Command, flags bookFlags) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}

	input, err := flags.input()
	if err != nil {
		return err
	}

	book, err := c.api.CreateBook(cmd.Context(), input, flags.cover)
	if err != nil {
		c.toasts.Error("Erro ao cadastrar livro", "Não foi possível cadastrar o livro.")
		return err
	}

	c.toasts.Success("Livro cadastrado", fmt.Sprintf("%q foi adicionado ao catálogo.", book.Title))
	return nil
}

func (c *Cli) runBooksUpdate(cmd *cobra.Command, id string, flags bookFlags) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}

	input, err := flags.input()
	if err != nil {
		return err
	}

	book, err := c.api.UpdateBook(cmd.Context(), id, input, flags.cover)
	if err != nil {
		c.toasts.Error("Erro ao atualizar livro", "Não foi possível atualizar o livro.")
		return err
	}

	c.toasts.Success("Livro atualizado", fmt.Sprintf("%q foi atualizado.", book.Title))
	return nil
}

func (c *Cli) runBooksRemove(cmd *cobra.Command, id string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}

	ok, err := c.io.Confirm("Esta ação não pode ser desfeita. Excluir o livro?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := c.api.DeleteBook(cmd.Context(), id); err != nil {
		c.toasts.Error("Erro ao excluir livro", "Não foi possível excluir o livro.")
		return err
	}

	c.toasts.Success("Livro excluído", "O livro foi removido do catálogo.")
	return nil
}

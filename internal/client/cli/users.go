package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openbiblio/biblio/internal/client/table"
	"github.com/openbiblio/biblio/internal/models"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

func newUsersCmd(c *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform users (admin)",
	}

	var page, size int
	var once bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List users, paginated",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUsersList(cmd, page, size, once)
		},
	}
	list.Flags().IntVar(&page, "page", 0, "page index (0-based)")
	list.Flags().IntVar(&size, "size", 0, "page size")
	list.Flags().BoolVar(&once, "once", false, "print one page and exit instead of paging interactively")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUsersGet(cmd, args[0])
		},
	}

	var name, role string
	var age int
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUsersUpdate(cmd, args[0], name, age, role)
		},
	}
	update.Flags().StringVar(&name, "name", "", "new display name")
	update.Flags().IntVar(&age, "age", 0, "new age")
	update.Flags().StringVar(&role, "role", "", "new role (ADMIN, COMUM)")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUsersRemove(cmd, args[0])
		},
	}

	cmd.AddCommand(list, get, update, rm)
	return cmd
}

func userColumns() []table.Column[models.User] {
	return []table.Column[models.User]{
		{Key: "id", Header: "ID", Cell: func(u models.User) string { return u.ID }},
		{Key: "nome", Header: "Nome", Cell: func(u models.User) string { return u.Name }},
		{Key: "email", Header: "Email", Cell: func(u models.User) string { return u.Email }},
		{Key: "idade", Header: "Idade", Cell: func(u models.User) string { return strconv.Itoa(u.Age) }},
		{Key: "perfil", Header: "Perfil", Cell: func(u models.User) string { return models.RoleLabels[u.Role] }},
	}
}

// runUsersList drives the manually paginated user table: the API owns the
// page data, the viewer only reports navigation requests back to us.
func (c *Cli) runUsersList(cmd *cobra.Command, page, size int, once bool) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}

	if size <= 0 {
		size = c.cfg.PageSize
	}
	if page < 0 {
		page = 0
	}

	ctx := cmd.Context()
	query := ""

	for {
		resp, err := c.api.ListUsers(ctx, page, size)
		if err != nil {
			c.toasts.Error("Erro ao carregar usuários", "Não foi possível carregar a lista de usuários.")
			return err
		}

		pageCount := (resp.Pageable.TotalElements + size - 1) / size
		if page >= pageCount && pageCount > 0 {
			// The requested page fell off the end (e.g. after a size
			// change); clamp and refetch.
			page = pageCount - 1
			continue
		}

		data := resp.Content
		if query != "" {
			data = filterUsersByName(data, query)
		}

		model := table.New(userColumns())
		model.SetData(data)
		model.SetPagination(&table.Pagination{
			PageIndex:     page,
			PageSize:      size,
			PageCount:     pageCount,
			TotalElements: resp.Pageable.TotalElements,
			OnPageChange:  func(p int) { page = p },
			OnPageSizeChange: func(s int) {
				size = s
				page = 0
			},
		})
		model.SetSearch("Nome", func(q string) {
			query = q
			page = 0
		})
		model.Render(c.out)

		if once {
			return nil
		}

		input, err := c.io.ReadInput("[n]ext [p]rev [f]irst [l]ast [s]ize [/]buscar [q]uit: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch {
		case input == "n":
			model.NextPage()
		case input == "p":
			model.PrevPage()
		case input == "f":
			model.FirstPage()
		case input == "l":
			model.LastPage()
		case input == "s":
			sizeInput, err := c.io.ReadInput(fmt.Sprintf("Tamanho %v: ", table.PageSizeChoices))
			if err != nil {
				return nil
			}
			if newSize, err := strconv.Atoi(sizeInput); err == nil {
				model.SetPageSize(newSize)
			}
		case strings.HasPrefix(input, "/"):
			model.Search(strings.TrimPrefix(input, "/"))
		case input == "q" || input == "":
			return nil
		}
	}
}

func filterUsersByName(users []models.User, query string) []models.User {
	q := strings.ToLower(query)
	var out []models.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) {
			out = append(out, u)
		}
	}
	return out
}

func (c *Cli) runUsersGet(cmd *cobra.Command, id string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}

	user, err := c.api.GetUser(cmd.Context(), id)
	if err != nil {
		return err
	}

	c.io.Printf("Nome:   %s\n", user.Name)
	c.io.Printf("Email:  %s\n", user.Email)
	c.io.Printf("Idade:  %d\n", user.Age)
	c.io.Printf("Perfil: %s\n", models.RoleLabels[user.Role])
	return nil
}

func (c *Cli) runUsersUpdate(cmd *cobra.Command, id, name string, age int, role string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}

	req := pkgapi.UserUpdateRequest{}
	if name != "" {
		req.Name = &name
	}
	if age != 0 {
		req.Age = &age
	}
	if role != "" {
		r := models.Role(role)
		if _, ok := models.RoleLabels[r]; !ok {
			return fmt.Errorf("unknown role: %s", role)
		}
		req.Role = &r
	}
	if req.Name == nil && req.Age == nil && req.Role == nil {
		return fmt.Errorf("nothing to update: pass --name, --age and/or --role")
	}

	user, err := c.api.UpdateUser(cmd.Context(), id, req)
	if err != nil {
		c.toasts.Error("Erro ao atualizar usuário", "Não foi possível atualizar o usuário.")
		return err
	}

	c.toasts.Success("Usuário atualizado", fmt.Sprintf("%s foi atualizado.", user.Name))
	return nil
}

func (c *Cli) runUsersRemove(cmd *cobra.Command, id string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}

	ok, err := c.io.Confirm("Esta ação não pode ser desfeita. O usuário será removido permanentemente. Excluir?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := c.api.DeleteUser(cmd.Context(), id); err != nil {
		c.toasts.Error("Erro ao excluir usuário", "Não foi possível excluir o usuário.")
		return err
	}

	c.toasts.Success("Usuário excluído", "O usuário foi removido com sucesso.")
	return nil
}

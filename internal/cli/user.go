package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// repoError marks non-sentinel repository failures as system errors.
func repoError(err error) error {
	if types.IsUserError(err) {
		return err
	}
	return sysError(err)
}

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Create, read, update, and delete users",
	}
	cmd.AddCommand(
		newUserListCmd(a),
		newUserGetCmd(a),
		newUserCreateCmd(a),
		newUserUpdateCmd(a),
		newUserDeleteCmd(a),
	)
	return cmd
}

func newUserListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users ordered by ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}
			users, err := repo.List()
			if err != nil {
				return repoError(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, users)
			}
			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", u.ID, u.Name, u.Email)
			}
			return nil
		},
	}
}

func newUserGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			repo, err := a.repository()
			if err != nil {
				return err
			}
			u, ok, err := repo.Get(id)
			if err != nil {
				return repoError(err)
			}
			if !ok {
				return fmt.Errorf("user %d: %w", id, types.ErrNotFound)
			}
			return printUser(cmd, a.flags.jsonMode, "", u)
		},
	}
}

func newUserCreateCmd(a *app) *cobra.Command {
	var name, email string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}
			u, err := repo.Create(name, email)
			if err != nil {
				return repoError(err)
			}
			return printUser(cmd, a.flags.jsonMode, "Created", u)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&email, "email", "", "contact address (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newUserUpdateCmd(a *app) *cobra.Command {
	var name, email string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user's name and/or email",
		Long: "Update overwrites only the fields given as flags. Passing --name \"\"\n" +
			"clears the name; omitting --name leaves it unchanged.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch types.UserPatch
			if cmd.Flags().Changed("name") {
				patch.Name = types.StringPtr(name)
			}
			if cmd.Flags().Changed("email") {
				patch.Email = types.StringPtr(email)
			}

			repo, err := a.repository()
			if err != nil {
				return err
			}
			u, err := repo.Update(id, patch)
			if err != nil {
				return repoError(err)
			}
			return printUser(cmd, a.flags.jsonMode, "Updated", u)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new contact address")
	return cmd
}

func newUserDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			repo, err := a.repository()
			if err != nil {
				return err
			}
			u, err := repo.Delete(id)
			if err != nil {
				return repoError(err)
			}
			return printUser(cmd, a.flags.jsonMode, "Deleted", u)
		},
	}
}

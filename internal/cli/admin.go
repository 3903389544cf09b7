package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/navdb/internal/password"
	"github.com/mesh-intelligence/navdb/pkg/types"
)

// errPasswordMismatch is returned by admin verify for a wrong password.
var errPasswordMismatch = errors.New("password does not match")

func newAdminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Inspect the administrator account",
	}
	admin.AddCommand(newAdminVerifyCmd())
	return admin
}

func newAdminVerifyCmd() *cobra.Command {
	var username, plain string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a password against the stored administrator hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := resolveEnvironment(cmd)
			if err != nil {
				return err
			}
			if username == "" {
				username = env.cfg.Admin.Username
			}
			store, err := openExisting(env.dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := store.UserByUsername(cmd.Context(), username)
			if errors.Is(err, types.ErrNotFound) {
				return userErr(err)
			}
			if err != nil {
				return sysErr(err)
			}

			ok := password.Verify(plain, user.PasswordHash)
			if flags.jsonMode {
				if err := writeJSON(cmd.OutOrStdout(), map[string]any{"username": username, "match": ok}); err != nil {
					return err
				}
			} else if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "password matches for %s\n", username)
			}
			if !ok {
				return userErr(fmt.Errorf("%s: %w", username, errPasswordMismatch))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "account to check (default: admin.username from config)")
	cmd.Flags().StringVar(&plain, "password", "", "password to verify")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

package cmd

import (
	"fmt"
	"os"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	userEmail    string
	userPassword string
	userEnable   bool
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage staff accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a staff account",
	RunE: func(cmd *cobra.Command, args []string) error {
		password := userPassword
		if password == "" {
			entered, err := readline.Password("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(entered)
		}

		auth, closeStore, err := authService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		user, err := auth.CreateUser(cmd.Context(), userEmail, password)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

var userDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable a staff account, or enable it again with --enable",
	RunE: func(cmd *cobra.Command, args []string) error {
		auth, closeStore, err := authService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := auth.SetDisabled(cmd.Context(), userEmail, !userEnable); err != nil {
			return err
		}
		state := "disabled"
		if userEnable {
			state = "enabled"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "User %s %s\n", userEmail, state)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		auth, closeStore, err := authService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		users, err := auth.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Email", "Disabled", "Created"})
		for _, u := range users {
			t.AppendRow(table.Row{u.ID, u.Email, u.Disabled, u.CreatedAt.Format("2006-01-02 15:04")})
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d users", len(users)), "", ""})
		t.Render()
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{userAddCmd, userDisableCmd} {
		c.Flags().StringVar(&userEmail, "email", "", "account email")
		_ = c.MarkFlagRequired("email")
	}
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "account password (prompted when omitted)")
	userDisableCmd.Flags().BoolVar(&userEnable, "enable", false, "enable the account instead")
	userCmd.AddCommand(userAddCmd, userDisableCmd, userListCmd)
}

func authService(cmd *cobra.Command) (services.IAuthService, func(), error) {
	cfg, store, err := openStore(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		if err := store.Close(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close store: %v\n", err)
		}
	}
	auth := services.NewAuthService(repository.NewUserRepository(store), cfg.Auth.MaxFailedAttempts, cfg.Auth.FailureWindow)
	return auth, closeStore, nil
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unionlaw/lawfirm/internal/app"
	"github.com/unionlaw/lawfirm/internal/config"
	"github.com/unionlaw/lawfirm/internal/service"
)

type adminFlags struct {
	email    string
	password string
	name     string
	phone    string
}

// CreateAdminCmd is the only way to get an admin account; registration always yields clients.
func CreateAdminCmd() *cobra.Command {
	var f adminFlags

	c := &cobra.Command{
		Use:   "create-admin",
		Short: "Provision a staff account with the admin role",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateAdmin(cmd, f)
		},
	}
	c.Flags().StringVar(&f.email, "email", "", "admin email (required)")
	c.Flags().StringVar(&f.password, "password", "", "admin password (required)")
	c.Flags().StringVar(&f.name, "name", "Administrator", "display name")
	c.Flags().StringVar(&f.phone, "phone", "", "optional phone number")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")

	return c
}

func runCreateAdmin(cmd *cobra.Command, f adminFlags) error {
	cfg := config.Load()

	repos, err := app.OpenRepositories(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	var phone *string
	if f.phone != "" {
		phone = &f.phone
	}

	users := service.NewUserService(repos.Users)
	admin, err := users.ProvisionAdmin(cmd.Context(), f.email, f.password, f.name, phone)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			return fmt.Errorf("%s is already registered", f.email)
		}
		return err
	}

	cmd.Printf("created admin %s (%s)\n", admin.Email, admin.ID)
	return nil
}

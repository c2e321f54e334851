package cmd

import (
	"CitizenVoice/internal/api/auth"
	authRepository "CitizenVoice/internal/api/auth/repository"
	authService "CitizenVoice/internal/api/auth/service"
	"CitizenVoice/internal/config"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/bcrypt"
	"CitizenVoice/pkg/utils"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/context"
)

var (
	seedEmail     string
	seedPassword  string
	seedFirstName string
	seedLastName  string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the initial ADMIN account",
	RunE:  runSeedAdmin,
}

func init() {
	f := seedAdminCmd.Flags()
	f.StringVar(&seedEmail, "email", "", "Admin email (required)")
	f.StringVar(&seedPassword, "password", "", "Admin password, 8 to 64 characters (required)")
	f.StringVar(&seedFirstName, "first-name", "System", "Admin first name")
	f.StringVar(&seedLastName, "last-name", "Administrator", "Admin last name")
	_ = seedAdminCmd.MarkFlagRequired("email")
	_ = seedAdminCmd.MarkFlagRequired("password")
}

func adminRequest() auth.CreateUserRequest {
	return auth.CreateUserRequest{
		RegisterRequest: auth.RegisterRequest{
			Email:     seedEmail,
			Password:  seedPassword,
			FirstName: seedFirstName,
			LastName:  seedLastName,
		},
		Role: string(entity.RoleAdmin),
	}
}

func runSeedAdmin(cmd *cobra.Command, args []string) error {
	req := adminRequest()
	if err := config.NewValidator().Struct(req); err != nil {
		return fmt.Errorf("invalid admin account: %w", err)
	}

	db, logger, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	svc := authService.New(logger, authRepository.New(db, logger), nil, nil, nil, bcrypt.New(), utils.New())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := svc.User().CreateUser(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "admin %s created (%s)\n", user.Email, user.ID)
	return nil
}

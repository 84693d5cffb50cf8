package cmd

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	config "bughunt-platform.com/bughunt-platform/internal/configs"
	"bughunt-platform.com/bughunt-platform/internal/constants"
	model "bughunt-platform.com/bughunt-platform/internal/models"
	repository "bughunt-platform.com/bughunt-platform/internal/repositories"
)

var (
	adminUsername string
	adminEmail    string
	adminPassword string
)

// Admin accounts are never self-registered; they are seeded with this
// command and created pre-approved.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Seed an approved admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)
		userRepo := repository.NewUserRepository(database)

		ctx := context.Background()

		taken, err := userRepo.ExistsByUsername(ctx, adminUsername)
		if err != nil {
			return err
		}
		if taken {
			log.Fatalf("username %q is already registered", adminUsername)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := &model.User{
			Username:     adminUsername,
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         constants.RoleAdmin,
			Approved:     true,
			CreatedAt:    time.Now().UTC(),
		}

		if err := userRepo.Create(ctx, admin); err != nil {
			return err
		}

		log.Printf("admin account %q created", adminUsername)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createAdminCmd)
}

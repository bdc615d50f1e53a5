package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workforce360/workforce-backend-go/internal/domain/user"
	"github.com/workforce360/workforce-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

// SeedDefaultAdmin creates the protected default admin account if no account
// with the given email exists. The account is flagged is_default_admin and can
// never be deleted through the API.
func SeedDefaultAdmin(ctx context.Context, db *database.DB, email, password, fullName string) error {
	if password == "" {
		// No seed password configured; skip seeding entirely rather than
		// creating an account with a known default credential.
		return nil
	}

	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check default admin existence: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (id, full_name, email, password_hash, role, date_of_joining, is_active, is_default_admin)
		VALUES ($1, $2, $3, $4, $5, $6, true, true)
	`, uuid.NewString(), fullName, email, string(hash), user.RoleAdmin, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	return nil
}

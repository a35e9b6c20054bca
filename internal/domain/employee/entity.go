package employee

import (
	"time"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

type Employee struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Title        string
	Department   string
	Role         auth.Role
	ManagerID    *string
	JoinedOn     time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / join fields
	ManagerName *string
}

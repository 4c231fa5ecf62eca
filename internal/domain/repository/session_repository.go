package repository

import (
	"context"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
)

// SessionRepository defines the remote authentication operation
type SessionRepository interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
}

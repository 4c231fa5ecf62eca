package api

import (
	"context"
	"net/http"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
)

// SessionAPI implements repository.SessionRepository over the REST API
type SessionAPI struct {
	client *Client
}

// NewSessionAPI creates a new session API repository
func NewSessionAPI(client *Client) *SessionAPI {
	return &SessionAPI{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates the operator and stores the bearer token on the shared
// client for all subsequent requests.
func (r *SessionAPI) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var session entity.Session
	err := r.client.do(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}

	r.client.SetToken(session.Token)
	return &session, nil
}

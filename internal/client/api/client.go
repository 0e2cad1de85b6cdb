// Package api implements the client for the remote asset service. The five
// paths below are the whole external contract; no other endpoint exists.
package api

import (
	"context"

	"github.com/sispat/patrimonio-cli/internal/client/models"
)

// RegisterRequest is the payload for POST /api/cadastro/.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	User      string `json:"user"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Group     string `json:"group"`
	Room      string `json:"sala"`
}

// Client is the transport boundary to the remote asset service.
//
// Contract:
//   - ListAssets: GET /api/inventarios/, the full directory.
//   - Login: POST /api/login/; an ok status is only a success when all three
//     identity fields are present in the body.
//   - Register: POST /api/cadastro/; 400 and 409 map to distinct errors.
//   - UpdateRoom: PUT /api/editar_sala with the full record.
//   - DeleteRoom: DELETE /api/delete_sala keyed by room name.
//
// All methods must honor context cancellation. None of them retries.
type Client interface {
	ListAssets(ctx context.Context) ([]models.Asset, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Register(ctx context.Context, req RegisterRequest) error
	UpdateRoom(ctx context.Context, room models.Room) error
	DeleteRoom(ctx context.Context, name string) error
}

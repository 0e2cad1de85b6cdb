package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sispat/patrimonio-cli/internal/client/api"
	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/logging"
)

type fakeAPI struct {
	loginUser string
	loginPass string
	loginSess *models.Session
	loginErr  error

	registered *api.RegisterRequest
	regErr     error
}

func (f *fakeAPI) ListAssets(context.Context) ([]models.Asset, error) { return nil, nil }
func (f *fakeAPI) Login(_ context.Context, user, pass string) (*models.Session, error) {
	f.loginUser, f.loginPass = user, pass
	return f.loginSess, f.loginErr
}
func (f *fakeAPI) Register(_ context.Context, req api.RegisterRequest) error {
	f.registered = &req
	return f.regErr
}
func (f *fakeAPI) UpdateRoom(context.Context, models.Room) error { return nil }
func (f *fakeAPI) DeleteRoom(context.Context, string) error      { return nil }

type fakeStore struct {
	saved   *models.Session
	saveErr error
	cleared bool
	sess    models.Session
}

func (f *fakeStore) Get(context.Context, string) (string, error) { return "", nil }
func (f *fakeStore) Set(context.Context, string, string) error   { return nil }
func (f *fakeStore) Session(context.Context) (models.Session, error) {
	return f.sess, nil
}
func (f *fakeStore) SaveIdentity(_ context.Context, s models.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &s
	return nil
}
func (f *fakeStore) Clear(context.Context) error { f.cleared = true; return nil }
func (f *fakeStore) Close() error                { return nil }

func newService(apiC *fakeAPI, store *fakeStore) AuthService {
	return NewAuthService(apiC, store, logging.NewTextLogger(io.Discard, slog.LevelError))
}

func TestLoginTrimsAndPersists(t *testing.T) {
	f := &fakeAPI{loginSess: &models.Session{User: "ana", UserType: models.RoleCoordinator, FirstName: "Ana"}}
	st := &fakeStore{}
	s := newService(f, st)

	sess, err := s.Login(context.Background(), "  ana ", " pw\n")
	require.NoError(t, err)
	assert.Equal(t, "ana", f.loginUser)
	assert.Equal(t, "pw", f.loginPass)
	require.NotNil(t, st.saved)
	assert.Equal(t, sess, *st.saved)
}

func TestLoginFailureDoesNotPersist(t *testing.T) {
	f := &fakeAPI{loginErr: api.ErrLoginFailed}
	st := &fakeStore{}
	s := newService(f, st)

	_, err := s.Login(context.Background(), "ana", "pw")
	require.ErrorIs(t, err, api.ErrLoginFailed)
	assert.Nil(t, st.saved)
}

func TestLoginStoreFailureSurfaces(t *testing.T) {
	f := &fakeAPI{loginSess: &models.Session{User: "ana", UserType: models.RoleProfessor, FirstName: "Ana"}}
	st := &fakeStore{saveErr: errors.New("disk full")}
	s := newService(f, st)

	_, err := s.Login(context.Background(), "ana", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRegisterValidation(t *testing.T) {
	valid := api.RegisterRequest{
		FirstName: "Ana", LastName: "Souza", User: "ana",
		Email: "ana@gmail.com", Password: "pw", Group: models.RoleProfessor,
	}

	tests := []struct {
		name    string
		mutate  func(*api.RegisterRequest)
		wantErr error
	}{
		{name: "valid gmail", mutate: func(r *api.RegisterRequest) {}, wantErr: nil},
		{name: "empty password", mutate: func(r *api.RegisterRequest) { r.Password = "" }, wantErr: ErrMissingFields},
		{name: "empty first name", mutate: func(r *api.RegisterRequest) { r.FirstName = "" }, wantErr: ErrMissingFields},
		{name: "yahoo rejected", mutate: func(r *api.RegisterRequest) { r.Email = "user@yahoo.com" }, wantErr: ErrEmailNotGmail},
		{name: "missing local part", mutate: func(r *api.RegisterRequest) { r.Email = "@gmail.com" }, wantErr: ErrEmailNotGmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAPI{}
			s := newService(f, &fakeStore{})

			req := valid
			tt.mutate(&req)
			err := s.Register(context.Background(), req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, f.registered)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			// Validation failures must never reach the network.
			assert.Nil(t, f.registered)
		})
	}
}

func TestRegisterServerConflictPropagates(t *testing.T) {
	f := &fakeAPI{regErr: api.ErrAlreadyRegistered}
	s := newService(f, &fakeStore{})

	err := s.Register(context.Background(), api.RegisterRequest{
		FirstName: "Ana", LastName: "Souza", Email: "ana@gmail.com", Password: "pw",
	})
	require.ErrorIs(t, err, api.ErrAlreadyRegistered)
}

func TestLogoutClearsStore(t *testing.T) {
	st := &fakeStore{}
	s := newService(&fakeAPI{}, st)

	require.NoError(t, s.Logout(context.Background()))
	assert.True(t, st.cleared)
}

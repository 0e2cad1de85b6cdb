package devserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/devserver/migrations"
)

var (
	ErrDuplicate = errors.New("already exists")
	ErrNotFound  = errors.New("not found")
)

// User is an account row; only the dev server knows about passwords.
type User struct {
	User         string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Group        string
	Room         string
}

// Store is the sqlite persistence of the fake asset service.
type Store struct {
	db *sql.DB
}

// OpenStore opens the dev database at dsn and migrates it.
func OpenStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening dev db: %w", err)
	}
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migrating dev db: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) ListAssets(ctx context.Context) ([]models.Asset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, num_inventario, denominacao, localizacao, sala, link_imagem
		FROM inventarios ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0)
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.InventoryNumber, &a.Denomination, &a.Location, &a.Room, &a.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (user, first_name, last_name, email, password_hash, user_group, sala)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, u.User, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Group, u.Room)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT user, first_name, last_name, email, password_hash, user_group, sala
		FROM users WHERE user = ?
	`, username).Scan(&u.User, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Group, &u.Room)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// UpsertRoom implements the full-record PUT of /api/editar_sala.
func (s *Store) UpsertRoom(ctx context.Context, r models.Room) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO salas (sala, descricao, localizacao, link_imagem, responsavel, quantidade_itens, email_responsavel)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(sala) DO UPDATE SET
			descricao = excluded.descricao,
			localizacao = excluded.localizacao,
			link_imagem = excluded.link_imagem,
			responsavel = excluded.responsavel,
			quantidade_itens = excluded.quantidade_itens,
			email_responsavel = excluded.email_responsavel
	`, r.Name, r.Description, r.Location, r.ImageURL, r.Responsible, r.ItemCount, r.ResponsibleEmail)
	if err != nil {
		return fmt.Errorf("failed to upsert room: %w", err)
	}
	return nil
}

func (s *Store) DeleteRoom(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM salas WHERE sala = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Seed loads a small fixture set when the database is empty, so the client
// has something to browse out of the box.
func (s *Store) Seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventarios`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	assets := []models.Asset{
		{InventoryNumber: "100001", Denomination: "Projetor Epson", Location: "bancada 1", Room: "Lab A"},
		{InventoryNumber: "100002", Denomination: "Notebook Dell", Location: "armário 2", Room: "Lab A"},
		{InventoryNumber: "100003", Denomination: "Osciloscópio", Location: "bancada 4", Room: "Lab B"},
		{InventoryNumber: "100004", Denomination: "Quadro branco", Location: "parede norte", Room: "Sala 12"},
	}
	for _, a := range assets {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO inventarios (num_inventario, denominacao, localizacao, sala, link_imagem)
			VALUES (?, ?, ?, ?, ?)
		`, a.InventoryNumber, a.Denomination, a.Location, a.Room, a.ImageURL)
		if err != nil {
			return fmt.Errorf("failed to seed assets: %w", err)
		}
	}

	rooms := []models.Room{
		{Name: "Lab A", Description: "Laboratório de eletrônica", Location: "bloco B", Responsible: "Ana Souza", ResponsibleEmail: "ana@gmail.com"},
		{Name: "Lab B", Description: "Laboratório de medidas", Location: "bloco B", Responsible: "Carlos Lima", ResponsibleEmail: "carlos@gmail.com"},
		{Name: "Sala 12", Description: "Sala de aula", Location: "bloco A", Responsible: "Bia Castro", ResponsibleEmail: "bia@gmail.com"},
	}
	for _, r := range rooms {
		if err := s.UpsertRoom(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

package user

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v4/stdlib"

	"ratemypg/pkg/common"
)

var ErrNotFound = errors.New("user/repo: user not found")

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) Add(u *User) (string, error) {
	if u.Provider == "" {
		u.Provider = ProviderLocal
	}
	row := r.db.QueryRow(
		`INSERT INTO users(username, password, email, display_name, photo_url, provider, google_id)
		 VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		u.Username, u.Password, u.Email, u.DisplayName, u.PhotoURL, u.Provider, u.GoogleId)

	var userID string
	if err := row.Scan(&userID); err != nil {
		return ``, fmt.Errorf("user/repo: user wasn't added: %w", err)
	}
	return userID, nil
}

func (r *UserRepo) GetByUsernameAndPass(uname string, pass string) (*User, error) {
	row := r.db.QueryRow("SELECT id, username, password FROM users WHERE username=$1", uname)
	u := new(User)
	if err := row.Scan(&u.Id, &u.Username, &u.Password); err != nil {
		return nil, fmt.Errorf("user/repo: row scan failed: %w", err)
	}
	// User found by username, now check if passwords are the same
	if len(u.Password) < 8 {
		return nil, errors.New("user/repo: account has no password login")
	}
	salt := string(u.Password[0:8])
	if !bytes.Equal(common.HashPass(pass, salt), u.Password) {
		return nil, errors.New("user/repo: password is invalid")
	}
	return u, nil
}

func (r *UserRepo) UserExists(uname string) bool {
	row := r.db.QueryRow("SELECT id FROM users WHERE username=$1", uname)
	u := new(User)
	if err := row.Scan(&u.Id); err != nil {
		log.Printf("user/repo: could not scan row: %v", err)
		return false
	}
	return true
}

func (r *UserRepo) GetById(ctx context.Context, uid string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, username, display_name, photo_url FROM users WHERE id=$1", uid)
	u := new(User)
	if err := row.Scan(&u.Id, &u.Username, &u.DisplayName, &u.PhotoURL); err != nil {
		return u, fmt.Errorf("user/repo: could not scan row: %w", err)
	}
	return u, nil
}

// GetByEmail returns ErrNotFound when no account uses the email, so
// the Google sign-in flow can tell "new user" from a real failure.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, username, email, display_name, photo_url, provider FROM users WHERE email=$1", email)
	u := new(User)
	err := row.Scan(&u.Id, &u.Username, &u.Email, &u.DisplayName, &u.PhotoURL, &u.Provider)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
	}
	return u, nil
}

// UpdateGoogleProfile refreshes the stored display name and photo from
// the latest Google sign-in.
func (r *UserRepo) UpdateGoogleProfile(ctx context.Context, uid, displayName, photoURL string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET display_name=$1, photo_url=$2 WHERE id=$3",
		displayName, photoURL, uid)
	if err != nil {
		return fmt.Errorf("user/repo: failed updating google profile: %w", err)
	}
	return nil
}

// Returns all users. Used only for seeding the DB.
func (r *UserRepo) GetAll() ([]*User, error) {
	rows, err := r.db.Query("SELECT id, username, display_name, photo_url FROM users")
	if err != nil {
		return nil, fmt.Errorf("user/repo: failed executing query for getting all users: %w", err)
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		u := new(User)
		err := rows.Scan(&u.Id, &u.Username, &u.DisplayName, &u.PhotoURL)
		if err != nil {
			return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
		}
		users = append(users, u)
	}

	return users, nil
}

package user

import (
	"context"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	. "ratemypg/pkg/common"
)

var (
	userID     = "1"
	username   = "pike"
	password   = "sdfsdfsdf"
	salt       = "12345678"
	hashedPass = HashPass(password, salt)
)

func TestGetById(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()

	r := NewUserRepo(db)

	t.Run("should return user", func(t *testing.T) {
		expect := &User{Id: userID, Username: username, DisplayName: "Pike", PhotoURL: "/pike.png"}

		rows := sqlmock.NewRows([]string{"id", "username", "display_name", "photo_url"})
		rows.AddRow(expect.Id, expect.Username, expect.DisplayName, expect.PhotoURL)

		mock.
			ExpectQuery("SELECT id, username, display_name, photo_url FROM users WHERE").
			WithArgs(userID).
			WillReturnRows(rows)

		gotUser, err := r.GetById(context.TODO(), userID)
		if err != nil {
			t.Errorf("unexpected err: %s", err)
			return
		}
		assert.Equal(t, expect, gotUser)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})

	t.Run("should return DB error", func(t *testing.T) {
		expectedErr := fmt.Errorf("mock_db_error")
		mock.
			ExpectQuery("SELECT id, username, display_name, photo_url FROM users WHERE").
			WithArgs(userID).
			WillReturnError(expectedErr)
		_, err = r.GetById(context.TODO(), userID)
		assert.ErrorIs(t, err, expectedErr)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})
}

func TestRepoAdd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewUserRepo(db)
	testUser := &User{Username: username, Password: hashedPass}

	t.Run("should add new user", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id"}).AddRow(userID)
		mock.
			ExpectQuery("INSERT INTO users").
			WithArgs(username, hashedPass, "", "", "", ProviderLocal, "").
			WillReturnRows(rows)

		addedUserId, err := repo.Add(testUser)
		if err != nil {
			t.Errorf("unexpected error %s", err)
			return
		}
		assert.Equal(t, addedUserId, userID)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})

	t.Run("should return query error", func(t *testing.T) {
		expectedErr := fmt.Errorf("bad query")
		mock.
			ExpectQuery("INSERT INTO users").
			WithArgs(username, hashedPass, "", "", "", ProviderLocal, "").
			WillReturnError(expectedErr)
		_, err = repo.Add(testUser)
		assert.ErrorIs(t, err, expectedErr)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})
}

func TestGetByUsernameAndPass(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	r := NewUserRepo(db)
	expect := &User{Id: userID, Username: username, Password: hashedPass}

	t.Run("should return user", func(t *testing.T) {
		row := sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(expect.Id, expect.Username, expect.Password)
		mock.
			ExpectQuery("SELECT id, username, password FROM users WHERE username").
			WithArgs(username).
			WillReturnRows(row)

		gotUser, err := r.GetByUsernameAndPass(username, password)
		if err != nil {
			t.Errorf("unexpected err: %s", err)
			return
		}
		assert.Equal(t, expect, gotUser)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})

	t.Run("should return error: bad password", func(t *testing.T) {
		row := sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(expect.Id, expect.Username, expect.Password)
		mock.
			ExpectQuery("SELECT id, username, password FROM users WHERE username").
			WithArgs(username).
			WillReturnRows(row)
		_, err := r.GetByUsernameAndPass(username, "badpassword")
		assert.ErrorContains(t, err, "password is invalid")
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})

	t.Run("should return error: google-only account", func(t *testing.T) {
		row := sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(expect.Id, expect.Username, []byte{})
		mock.
			ExpectQuery("SELECT id, username, password FROM users WHERE username").
			WithArgs(username).
			WillReturnRows(row)
		_, err := r.GetByUsernameAndPass(username, password)
		assert.ErrorContains(t, err, "no password login")
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})
}

func TestGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	r := NewUserRepo(db)

	t.Run("should return user", func(t *testing.T) {
		expect := &User{
			Id:          userID,
			Username:    username,
			Email:       "pike@example.com",
			DisplayName: "Pike",
			PhotoURL:    "/pike.png",
			Provider:    ProviderGoogle,
		}
		rows := sqlmock.NewRows([]string{"id", "username", "email", "display_name", "photo_url", "provider"}).
			AddRow(expect.Id, expect.Username, expect.Email, expect.DisplayName, expect.PhotoURL, expect.Provider)
		mock.
			ExpectQuery("SELECT id, username, email, display_name, photo_url, provider FROM users WHERE email").
			WithArgs("pike@example.com").
			WillReturnRows(rows)

		gotUser, err := r.GetByEmail(context.TODO(), "pike@example.com")
		if err != nil {
			t.Errorf("unexpected err: %s", err)
			return
		}
		assert.Equal(t, expect, gotUser)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})

	t.Run("should return ErrNotFound for unknown email", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "email", "display_name", "photo_url", "provider"})
		mock.
			ExpectQuery("SELECT id, username, email, display_name, photo_url, provider FROM users WHERE email").
			WithArgs("nobody@example.com").
			WillReturnRows(rows)

		_, err := r.GetByEmail(context.TODO(), "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})
}

func TestUserExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	r := NewUserRepo(db)

	t.Run("should return true", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id"}).AddRow(userID)
		mock.
			ExpectQuery("SELECT id FROM users WHERE").
			WithArgs(username).
			WillReturnRows(rows)
		exists := r.UserExists(username)
		assert.Equal(t, exists, true)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})

	t.Run("should return false", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id"})
		mock.
			ExpectQuery("SELECT id FROM users WHERE").
			WithArgs(username).
			WillReturnRows(rows)
		exists := r.UserExists(username)
		assert.Equal(t, exists, false)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
			return
		}
	})
}

package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jwt "github.com/dgrijalva/jwt-go"
	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"ratemypg/pkg/common"
	"ratemypg/pkg/user"
)

var (
	userId         = "1"
	username       = "pike"
	salt           = "12345678"
	password       = "sdfsdfsdf"
	hashedPassword = common.HashPass("sdfsdfsdf", salt)
	jwtToken       = "test.jwt.token"
)

func loginReq(un, pw string) *http.Request {
	body := strings.NewReader(`{"username": "` + un + `", "password": "` + pw + `"}`)
	return httptest.NewRequest("POST", "/api/login", body)
}

func TestLogIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existingUser := user.User{Id: userId, Username: username, Password: hashedPassword}
	mockRepo := NewMockUserRepo(ctrl)
	mockSm := NewMockSessionManager(ctrl)
	uh := NewUserHandler(mockRepo, mockSm)

	t.Run("login is OK", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsernameAndPass(username, password).Return(&existingUser, nil)
		mockSm.EXPECT().CleanupUserSessions(userId).Return(nil)
		mockSm.EXPECT().CreateToken(&existingUser).Return(jwtToken, nil)

		w := httptest.NewRecorder()
		uh.LogIn(w, loginReq(username, password))

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), jwtToken)
	})

	t.Run("user not found", func(t *testing.T) {
		badUsername, badPassword := "notexists", "nevermind"
		mockRepo.EXPECT().GetByUsernameAndPass(badUsername, badPassword).
			Return(nil, fmt.Errorf("user not found"))

		w := httptest.NewRecorder()
		uh.LogIn(w, loginReq(badUsername, badPassword))

		assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	})
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepo(ctrl)
	mockSm := NewMockSessionManager(ctrl)
	uh := NewUserHandler(mockRepo, mockSm)

	t.Run("register is OK", func(t *testing.T) {
		mockRepo.EXPECT().UserExists(username).Return(false)
		var added *user.User
		mockRepo.EXPECT().
			Add(gomock.AssignableToTypeOf(&user.User{})).
			DoAndReturn(func(u *user.User) (string, error) {
				added = u
				return userId, nil
			})
		mockSm.EXPECT().
			CreateToken(gomock.AssignableToTypeOf(&user.User{})).
			Return(jwtToken, nil)

		w := httptest.NewRecorder()
		uh.Register(w, loginReq(username, password))

		assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
		assert.NotNil(t, added)
		assert.Equal(t, username, added.Username)
		// Password must be stored hashed, with its salt prefix.
		assert.NotEqual(t, []byte(password), added.Password)
		assert.Equal(t, common.HashPass(password, string(added.Password[:8])), added.Password)
	})

	t.Run("taken username answers conflict", func(t *testing.T) {
		mockRepo.EXPECT().UserExists(username).Return(true)

		w := httptest.NewRecorder()
		uh.Register(w, loginReq(username, password))

		assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
	})

	t.Run("blank username is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		uh.Register(w, loginReq("   ", password))

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})
}

// googleCredential builds an ID-token-shaped JWT carrying the given
// profile claims. The signature doesn't matter: sign-in only reads the
// claims.
func googleCredential(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	credential, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("irrelevant"))
	assert.Nil(t, err)
	return credential
}

func googleReq(credential string) *http.Request {
	body := strings.NewReader(`{"credential": "` + credential + `"}`)
	return httptest.NewRequest("POST", "/api/google-auth", body)
}

func TestGoogleSignInNewUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepo(ctrl)
	mockSm := NewMockSessionManager(ctrl)
	uh := NewUserHandler(mockRepo, mockSm)

	credential := googleCredential(t, jwt.MapClaims{
		"sub":     "google-sub-1",
		"email":   "priya@example.com",
		"name":    "Priya",
		"picture": "https://example.com/priya.png",
	})

	mockRepo.EXPECT().
		GetByEmail(gomock.Any(), "priya@example.com").
		Return(nil, user.ErrNotFound)

	var added *user.User
	mockRepo.EXPECT().
		Add(gomock.AssignableToTypeOf(&user.User{})).
		DoAndReturn(func(u *user.User) (string, error) {
			added = u
			return "42", nil
		})
	mockSm.EXPECT().CleanupUserSessions("42").Return(nil)
	mockSm.EXPECT().
		CreateToken(gomock.AssignableToTypeOf(&user.User{})).
		Return(jwtToken, nil)

	w := httptest.NewRecorder()
	uh.GoogleSignIn(w, googleReq(credential))

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), jwtToken)

	assert.NotNil(t, added)
	assert.Equal(t, "priya@example.com", added.Email)
	assert.Equal(t, "Priya", added.DisplayName)
	assert.Equal(t, "https://example.com/priya.png", added.PhotoURL)
	assert.Equal(t, user.ProviderGoogle, added.Provider)
	assert.Equal(t, "google-sub-1", added.GoogleId)
	assert.True(t, strings.HasPrefix(added.Username, "priya-"))
}

func TestGoogleSignInExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepo(ctrl)
	mockSm := NewMockSessionManager(ctrl)
	uh := NewUserHandler(mockRepo, mockSm)

	credential := googleCredential(t, jwt.MapClaims{
		"sub":     "google-sub-1",
		"email":   "priya@example.com",
		"name":    "Priya S",
		"picture": "https://example.com/priya2.png",
	})

	existing := &user.User{
		Id:       "42",
		Username: "priya-abcd",
		Email:    "priya@example.com",
		Provider: user.ProviderGoogle,
	}

	mockRepo.EXPECT().
		GetByEmail(gomock.Any(), "priya@example.com").
		Return(existing, nil)
	mockRepo.EXPECT().
		UpdateGoogleProfile(gomock.Any(), "42", "Priya S", "https://example.com/priya2.png").
		Return(nil)
	mockSm.EXPECT().CleanupUserSessions("42").Return(nil)
	mockSm.EXPECT().CreateToken(gomock.Any()).Return(jwtToken, nil)

	w := httptest.NewRecorder()
	uh.GoogleSignIn(w, googleReq(credential))

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), jwtToken)
}

func TestGoogleSignInBadCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepo(ctrl)
	mockSm := NewMockSessionManager(ctrl)
	uh := NewUserHandler(mockRepo, mockSm)

	w := httptest.NewRecorder()
	uh.GoogleSignIn(w, googleReq("not-a-jwt"))

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

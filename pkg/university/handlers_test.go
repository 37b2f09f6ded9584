package university

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"ratemypg/pkg/sessions"
	"ratemypg/pkg/user"
)

var testUser = &user.User{Id: "u1", Username: "pike", DisplayName: "Pike"}

func authedRequest(method, target, body string, u *user.User) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if u != nil {
		ctx := context.WithValue(r.Context(), sessions.SessionKey, u)
		r = r.WithContext(ctx)
	}
	return r
}

func TestAddUniversityValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockICatalogueRepo(ctrl)
	ch := NewCatalogueHandler(mockRepo)

	t.Run("unauthenticated add is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		ch.Add(w, authedRequest("POST", "/api/universities",
			`{"name": "IIT Delhi", "address": "Hauz Khas"}`, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})

	t.Run("blank address is rejected before the duplicate check", func(t *testing.T) {
		w := httptest.NewRecorder()
		ch.Add(w, authedRequest("POST", "/api/universities",
			`{"name": "IIT Delhi", "address": "   "}`, testUser))

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), "name and address are required")
	})
}

func TestAddUniversityDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockICatalogueRepo(ctrl)
	ch := NewCatalogueHandler(mockRepo)

	mockRepo.EXPECT().
		NameExists(gomock.Any(), "IIT Delhi").
		Return(true, nil)

	w := httptest.NewRecorder()
	ch.Add(w, authedRequest("POST", "/api/universities",
		`{"name": "IIT Delhi", "address": "Hauz Khas"}`, testUser))

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "university already exists")
}

func TestAddUniversitySuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockICatalogueRepo(ctrl)
	ch := NewCatalogueHandler(mockRepo)

	mockRepo.EXPECT().
		NameExists(gomock.Any(), "IIT Delhi").
		Return(false, nil)

	var added *University
	mockRepo.EXPECT().
		Add(gomock.Any(), gomock.AssignableToTypeOf(&University{})).
		DoAndReturn(func(_ context.Context, u *University) (UniversityId, error) {
			added = u
			return u.Id, nil
		})

	w := httptest.NewRecorder()
	ch.Add(w, authedRequest("POST", "/api/universities",
		`{"name": "  IIT Delhi  ", "address": "Hauz Khas", "imageUrl": "/iitd.png"}`, testUser))

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
	assert.NotNil(t, added)
	assert.Equal(t, "IIT Delhi", added.Name)
	assert.Equal(t, "Hauz Khas", added.Address)
	assert.NotEmpty(t, added.Id)
}

func TestGetUniversityJoinsPGs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockICatalogueRepo(ctrl)
	ch := NewCatalogueHandler(mockRepo)

	u := &University{Id: UniversityId("uni-1"), Name: "IIT Delhi", Address: "Hauz Khas"}
	pgs := []*PG{
		{Id: PGId("pg-1"), UniversityId: u.Id, Name: "Sunrise PG", Location: "Katwaria Sarai"},
	}

	mockRepo.EXPECT().
		GetById(gomock.Any(), UniversityId("uni-1")).
		Return(u, nil)
	mockRepo.EXPECT().
		GetPGsByUniversity(gomock.Any(), UniversityId("uni-1")).
		Return(pgs, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/university/uni-1", nil)
	r = mux.SetURLVars(r, map[string]string{"university_id": "uni-1"})
	ch.Get(w, r)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	resp := struct {
		Name string `json:"name"`
		PGs  []*PG  `json:"pgs"`
	}{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err)
	assert.Equal(t, "IIT Delhi", resp.Name)
	assert.Len(t, resp.PGs, 1)
	assert.Equal(t, "Sunrise PG", resp.PGs[0].Name)
}

func TestGetUniversityNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockICatalogueRepo(ctrl)
	ch := NewCatalogueHandler(mockRepo)

	mockRepo.EXPECT().
		GetById(gomock.Any(), UniversityId("nope")).
		Return(nil, ErrUniversityNotFound)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/university/nope", nil)
	r = mux.SetURLVars(r, map[string]string{"university_id": "nope"})
	ch.Get(w, r)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestAddPGDuplicateWithinUniversity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockICatalogueRepo(ctrl)
	ch := NewCatalogueHandler(mockRepo)

	mockRepo.EXPECT().
		GetById(gomock.Any(), UniversityId("uni-1")).
		Return(&University{Id: UniversityId("uni-1")}, nil)
	mockRepo.EXPECT().
		PGNameExists(gomock.Any(), UniversityId("uni-1"), "Sunrise PG").
		Return(true, nil)

	w := httptest.NewRecorder()
	r := authedRequest("POST", "/api/university/uni-1/pgs",
		`{"name": "Sunrise PG", "location": "Katwaria Sarai"}`, testUser)
	r = mux.SetURLVars(r, map[string]string{"university_id": "uni-1"})
	ch.AddPG(w, r)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

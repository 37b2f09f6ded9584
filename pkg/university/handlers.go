package university

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"ratemypg/pkg/common"
	"ratemypg/pkg/logger"
	"ratemypg/pkg/sessions"
)

type ICatalogueRepo interface {
	GetAll(context.Context) ([]*University, error)
	GetById(context.Context, UniversityId) (*University, error)
	Add(context.Context, *University) (UniversityId, error)
	NameExists(context.Context, string) (bool, error)

	GetPGsByUniversity(context.Context, UniversityId) ([]*PG, error)
	GetPG(context.Context, PGId) (*PG, error)
	AddPG(context.Context, *PG) (PGId, error)
	PGNameExists(context.Context, UniversityId, string) (bool, error)
}

type CatalogueHandler struct {
	CatalogueRepo ICatalogueRepo
}

func NewCatalogueHandler(catalogueRepo ICatalogueRepo) *CatalogueHandler {
	return &CatalogueHandler{
		CatalogueRepo: catalogueRepo,
	}
}

func (ch *CatalogueHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	universities, err := ch.CatalogueRepo.GetAll(r.Context())
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load universities from the repo: %v", err)
		common.WriteMsg(w, "failed loading universities", http.StatusInternalServerError)
		return
	}

	common.WriteRespJSON(w, universities)
}

type newUniversityReq struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	ImageURL string `json:"imageUrl"`
}

func (ch *CatalogueHandler) Add(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, err := sessions.GetAuthUser(r.Context()); err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	req := new(newUniversityReq)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		logger.Log(r.Context()).Errorf("can't parse university from request body: %v", err)
		common.WriteMsg(w, "can't parse university", http.StatusBadRequest)
		return
	}

	if common.IsBlank(req.Name) || common.IsBlank(req.Address) {
		common.WriteMsg(w, "name and address are required", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	exists, err := ch.CatalogueRepo.NameExists(r.Context(), name)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't check university name %s: %v", name, err)
		common.WriteMsg(w, "failed adding university", http.StatusInternalServerError)
		return
	}
	if exists {
		common.WriteMsg(w, "university already exists", http.StatusConflict)
		return
	}

	u := &University{
		Id:       UniversityId(common.RandStringRunes(12)),
		Name:     name,
		Address:  strings.TrimSpace(req.Address),
		ImageURL: req.ImageURL,
	}

	if _, err := ch.CatalogueRepo.Add(r.Context(), u); err != nil {
		logger.Log(r.Context()).Errorf("can't add university to the repo: %v", err)
		common.WriteMsg(w, "failed adding university", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, u)
}

func (ch *CatalogueHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	universityId := mux.Vars(r)["university_id"]
	u, err := ch.CatalogueRepo.GetById(r.Context(), UniversityId(universityId))
	if errors.Is(err, ErrUniversityNotFound) {
		common.WriteMsg(w, "university not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get university with id %s: %v", universityId, err)
		common.WriteMsg(w, "failed loading university", http.StatusInternalServerError)
		return
	}

	pgs, err := ch.CatalogueRepo.GetPGsByUniversity(r.Context(), u.Id)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load pgs for university %s: %v", universityId, err)
		common.WriteMsg(w, "failed loading university", http.StatusInternalServerError)
		return
	}

	common.WriteRespJSON(w, struct {
		*University
		PGs []*PG `json:"pgs"`
	}{u, pgs})
}

type newPGReq struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
	Owner    string `json:"owner"`
	ImageURL string `json:"imageUrl"`
}

func (ch *CatalogueHandler) AddPG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	universityId := mux.Vars(r)["university_id"]

	if _, err := sessions.GetAuthUser(r.Context()); err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	if _, err := ch.CatalogueRepo.GetById(r.Context(), UniversityId(universityId)); err != nil {
		common.WriteMsg(w, "university not found", http.StatusNotFound)
		return
	}

	req := new(newPGReq)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		logger.Log(r.Context()).Errorf("can't parse pg from request body: %v", err)
		common.WriteMsg(w, "can't parse pg", http.StatusBadRequest)
		return
	}

	if common.IsBlank(req.Name) || common.IsBlank(req.Location) {
		common.WriteMsg(w, "name and location are required", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	exists, err := ch.CatalogueRepo.PGNameExists(r.Context(), UniversityId(universityId), name)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't check pg name %s: %v", name, err)
		common.WriteMsg(w, "failed adding pg", http.StatusInternalServerError)
		return
	}
	if exists {
		common.WriteMsg(w, "pg already exists for this university", http.StatusConflict)
		return
	}

	pg := &PG{
		Id:           PGId(common.RandStringRunes(12)),
		UniversityId: UniversityId(universityId),
		Name:         name,
		Location:     strings.TrimSpace(req.Location),
		Contact:      req.Contact,
		Owner:        req.Owner,
		ImageURL:     req.ImageURL,
	}

	if _, err := ch.CatalogueRepo.AddPG(r.Context(), pg); err != nil {
		logger.Log(r.Context()).Errorf("can't add pg to the repo: %v", err)
		common.WriteMsg(w, "failed adding pg", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, pg)
}

func (ch *CatalogueHandler) GetPG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	pgId := mux.Vars(r)["pg_id"]
	pg, err := ch.CatalogueRepo.GetPG(r.Context(), PGId(pgId))
	if errors.Is(err, ErrPGNotFound) {
		common.WriteMsg(w, "pg not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get pg with id %s: %v", pgId, err)
		common.WriteMsg(w, "failed loading pg", http.StatusInternalServerError)
		return
	}

	common.WriteRespJSON(w, pg)
}

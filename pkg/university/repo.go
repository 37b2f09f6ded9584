package university

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ratemypg/pkg/mongodb"
)

var (
	ErrUniversityNotFound = errors.New("university/repo: university not found")
	ErrPGNotFound         = errors.New("university/repo: pg not found")
)

type Repo struct {
	universities mongodb.ICollection
	pgs          mongodb.ICollection
}

func NewCatalogueRepo(universitiesCol, pgsCol *mongo.Collection) *Repo {
	return &Repo{
		universities: mongodb.Wrap(universitiesCol),
		pgs:          mongodb.Wrap(pgsCol),
	}
}

func (r *Repo) GetAll(ctx context.Context) ([]*University, error) {
	cursor, err := r.universities.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("university/repo: failed finding universities: %w", err)
	}
	defer cursor.Close(ctx)

	universities := []*University{}
	if err := cursor.All(ctx, &universities); err != nil {
		return nil, fmt.Errorf("university/repo: failed getting universities from cursor: %w", err)
	}
	return universities, nil
}

func (r *Repo) GetById(ctx context.Context, id UniversityId) (*University, error) {
	u := &University{}
	err := r.universities.FindOne(ctx, bson.M{"id": id}).Decode(u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUniversityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("university/repo: failed getting university %s: %w", id, err)
	}
	return u, nil
}

func (r *Repo) Add(ctx context.Context, u *University) (UniversityId, error) {
	_, err := r.universities.InsertOne(ctx, u)
	if err != nil {
		return UniversityId(``), fmt.Errorf("university/repo: failed inserting a university: %w", err)
	}
	return u.Id, nil
}

// NameExists reports whether a university with exactly this name is
// already in the catalogue.
func (r *Repo) NameExists(ctx context.Context, name string) (bool, error) {
	err := r.universities.FindOne(ctx, bson.M{"name": name}).Decode(&University{})
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("university/repo: failed checking university name: %w", err)
	}
	return true, nil
}

func (r *Repo) GetPGsByUniversity(ctx context.Context, universityId UniversityId) ([]*PG, error) {
	cursor, err := r.pgs.Find(ctx, bson.M{"universityId": universityId})
	if err != nil {
		return nil, fmt.Errorf("university/repo: failed finding pgs: %w", err)
	}
	defer cursor.Close(ctx)

	pgs := []*PG{}
	if err := cursor.All(ctx, &pgs); err != nil {
		return nil, fmt.Errorf("university/repo: failed getting pgs from cursor: %w", err)
	}
	return pgs, nil
}

func (r *Repo) GetPG(ctx context.Context, id PGId) (*PG, error) {
	pg := &PG{}
	err := r.pgs.FindOne(ctx, bson.M{"id": id}).Decode(pg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrPGNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("university/repo: failed getting pg %s: %w", id, err)
	}
	return pg, nil
}

func (r *Repo) AddPG(ctx context.Context, pg *PG) (PGId, error) {
	_, err := r.pgs.InsertOne(ctx, pg)
	if err != nil {
		return PGId(``), fmt.Errorf("university/repo: failed inserting a pg: %w", err)
	}
	return pg.Id, nil
}

// PGNameExists reports whether the university already lists a PG with
// exactly this name.
func (r *Repo) PGNameExists(ctx context.Context, universityId UniversityId, name string) (bool, error) {
	filter := bson.M{"universityId": universityId, "name": name}
	err := r.pgs.FindOne(ctx, filter).Decode(&PG{})
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("university/repo: failed checking pg name: %w", err)
	}
	return true, nil
}

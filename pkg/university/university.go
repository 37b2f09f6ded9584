package university

type UniversityId string
type PGId string

// University is a campus entry in the catalogue.
type University struct {
	Id       UniversityId `json:"id"`
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	ImageURL string       `json:"imageUrl" bson:"imageUrl"`
}

// PG is a paying-guest accommodation listed under a university.
type PG struct {
	Id           PGId         `json:"id"`
	UniversityId UniversityId `json:"universityId" bson:"universityId"`
	Name         string       `json:"name"`
	Location     string       `json:"location"`
	Contact      string       `json:"contact"`
	Owner        string       `json:"owner"`
	ImageURL     string       `json:"imageUrl" bson:"imageUrl"`
}

package user

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

type User struct {
	Id          string `json:"id"`
	Username    string `json:"username"`
	Password    []byte `json:"-"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	Provider    string `json:"-"`
	GoogleId    string `json:"-"`
}

// Snapshot is the denormalized author copy embedded into posts,
// replies, comments and chat messages at write time. It is not kept in
// sync with later profile edits.
type Snapshot struct {
	UserId      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

const defaultAvatar = "/default-avatar.png"

// SnapshotOf captures the author fields of u, falling back to the
// same placeholders the web client used for accounts without a
// display name or photo.
func SnapshotOf(u *User) Snapshot {
	s := Snapshot{
		UserId:      u.Id,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
	if s.DisplayName == "" {
		s.DisplayName = u.Username
	}
	if s.DisplayName == "" {
		s.DisplayName = "Anonymous"
	}
	if s.PhotoURL == "" {
		s.PhotoURL = defaultAvatar
	}
	return s
}

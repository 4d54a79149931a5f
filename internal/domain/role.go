package domain

// Role is a named permission category assigned to an avatar.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Well-known role IDs, seeded by the schema bootstrap.
const (
	RoleExplorer int64 = 1
	RoleAdmin    int64 = 2
	RoleGuide    int64 = 3
)

package entities

// Role classifies who is calling a core operation. Authorization checks run
// before any mutation; handlers never decide legality themselves.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleStaff     Role = "staff"
)

// Actor is the explicit caller identity passed into every use case. It is
// resolved by the upstream auth layer and handed down; the core never
// reaches out to an ambient "current user".
type Actor struct {
	ID   string
	Role Role
}

// IsStaff reports whether the actor may perform staff-only transitions
// (verification decisions, quote resolution).
func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

// Is reports whether the actor is the given principal with the given role.
func (a Actor) Is(role Role, id string) bool {
	return a.Role == role && a.ID == id
}

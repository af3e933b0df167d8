package handlers

import (
	"net/http"
	"strings"

	"talentbruecke/internal/domain/entities"
	"talentbruecke/pkg"

	"github.com/gin-gonic/gin"
)

// Actor identity headers set by the upstream auth proxy. The service trusts
// them; authenticating the caller is out of its scope.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

var errMissingActor = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Actor identity headers are required", http.StatusUnauthorized)

var validRoles = map[entities.Role]bool{
	entities.RoleCandidate: true,
	entities.RoleEmployer:  true,
	entities.RoleStaff:     true,
}

// actorFromHeaders resolves the caller identity from the request headers.
func actorFromHeaders(c *gin.Context) (entities.Actor, *pkg.AppError) {
	id := strings.TrimSpace(c.GetHeader(HeaderActorID))
	role := entities.Role(strings.TrimSpace(strings.ToLower(c.GetHeader(HeaderActorRole))))
	if id == "" || !validRoles[role] {
		return entities.Actor{}, errMissingActor
	}
	return entities.Actor{ID: id, Role: role}, nil
}

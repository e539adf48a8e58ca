// Package access holds the role and ownership predicates consulted by every
// guarded operation. Each predicate is pure: it inspects the actor and an
// optional target and returns a bool, leaving error construction to callers.
package access

import "github.com/Menwuyelet/jobboard/internal/domain"

func IsAdmin(actor *domain.User) bool {
	return actor != nil && actor.Role == domain.RoleAdmin
}

func IsSelf(actor, target *domain.User) bool {
	return actor != nil && target != nil && actor.ID == target.ID
}

func IsJobOwner(actor *domain.User, job *domain.Job) bool {
	return actor != nil && job != nil && job.PostedBy == actor.ID
}

func OwnsApplication(actor *domain.User, app *domain.Application) bool {
	return actor != nil && app != nil && app.UserID == actor.ID
}

func CanPost(actor *domain.User) bool {
	return actor != nil && actor.CanPostAJob
}

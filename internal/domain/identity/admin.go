package identity

import "context"

// Identity is a verified external identity: the subject resolved from an
// identity token issued by the auth provider.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// AllowListRepository answers admin allow-list membership questions. The
// allow-list is a collection whose document IDs are the only payload:
// existence of admins/{uid} grants admin capability, with no role levels.
type AllowListRepository interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

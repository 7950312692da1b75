package strategy

import (
	"github.com/arloliu/rota/types"
)

// validateRequest rejects requests no strategy can serve.
func validateRequest(req types.BuildRequest) error {
	if req.Filter == nil {
		return ErrNilFilter
	}
	if len(req.Roles) == 0 {
		return ErrNoRoles
	}

	return nil
}

// seedResult starts a result map from the request's pinned slots.
//
// Only pinned slots on requested dates with a requested role are carried over.
func seedResult(req types.BuildRequest) types.AssignmentMap {
	out := types.NewAssignmentMap()
	if len(req.Pinned) == 0 {
		return out
	}
	for _, d := range req.Dates {
		key := d.Key()
		for _, role := range req.Roles {
			if id, ok := req.Pinned.Get(key, role); ok {
				out.Set(key, role, id)
			}
		}
	}

	return out
}

// isPinned reports whether (dateKey, role) is fixed by the request.
func isPinned(req types.BuildRequest, dateKey string, role types.Role) bool {
	_, ok := req.Pinned.Get(dateKey, role)
	return ok
}

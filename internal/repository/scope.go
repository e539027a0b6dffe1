package repository

// Scope is the single row-visibility policy applied at the pipeline,
// candidate and earnings query boundaries.  It is derived once per
// request from the authenticated user's claims and passed down, rather
// than re-checking roles at every call site.
//
// For an admin all rows are visible.  For a regular user only rows
// whose recruiter matches RecruiterID are visible; a user account
// without a recruiter binding sees nothing.
type Scope struct {
	Admin       bool   // caller has the admin role
	RecruiterID uint64 // bound recruiter for non-admin callers (0 = none)
}

// AdminScope is the scope used for internal maintenance paths that are
// not acting on behalf of a specific user.
var AdminScope = Scope{Admin: true}

// CanAccessRecruiter reports whether rows belonging to the given
// recruiter are visible under this scope.
func (s Scope) CanAccessRecruiter(recruiterID uint64) bool {
	return s.Admin || (s.RecruiterID != 0 && s.RecruiterID == recruiterID)
}

// EffectiveRecruiter resolves the recruiter filter for a query: a
// non-admin caller is always forced to their own recruiter regardless
// of the requested value, so role scoping cannot be overridden by a
// filter parameter.
func (s Scope) EffectiveRecruiter(requested uint64) uint64 {
	if s.Admin {
		return requested
	}
	return s.RecruiterID
}

// Empty reports whether the scope can match no rows at all: a non-admin
// user without a recruiter binding.  Queries short-circuit to an empty
// result instead of building SQL for this case.
func (s Scope) Empty() bool {
	return !s.Admin && s.RecruiterID == 0
}

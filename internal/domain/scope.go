package domain

// ScopeKind enumerates the three owner-filter states a history query
// can be made with
type ScopeKind int

const (
	// ScopeAll applies no owner filter: every translation is listed
	ScopeAll ScopeKind = iota
	// ScopeAnonymous lists only ownerless (public) translations
	ScopeAnonymous
	// ScopeOwner lists only translations owned by a specific user
	ScopeOwner
)

// UserScope selects whose translations a listing covers. The three
// states are deliberately distinct: "no user given" and "explicitly
// anonymous" mean different things to the history query.
type UserScope struct {
	Kind ScopeKind
	ID   string // set only when Kind == ScopeOwner
}

// AllUsers returns a scope covering every translation
func AllUsers() UserScope {
	return UserScope{Kind: ScopeAll}
}

// AnonymousUsers returns a scope covering only ownerless translations
func AnonymousUsers() UserScope {
	return UserScope{Kind: ScopeAnonymous}
}

// Owner returns a scope covering only translations owned by id
func Owner(id string) UserScope {
	return UserScope{Kind: ScopeOwner, ID: id}
}

// Requester returns the user favorites are matched against, or nil
// when the scope carries no identified user
func (s UserScope) Requester() *string {
	if s.Kind == ScopeOwner {
		return &s.ID
	}
	return nil
}

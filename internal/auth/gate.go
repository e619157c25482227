package auth

import "errors"

var ErrForbidden = errors.New("insufficient role")

// RequirementKind classifies what a route demands of its caller.
type RequirementKind int

const (
	// KindPublic passes with or without a principal.
	KindPublic RequirementKind = iota
	// KindAuthenticated requires any resolved principal.
	KindAuthenticated
	// KindRole requires a resolved principal holding a specific role.
	KindRole
)

// Requirement is a route-level access requirement.
type Requirement struct {
	Kind RequirementKind
	Role string
}

func Public() Requirement        { return Requirement{Kind: KindPublic} }
func Authenticated() Requirement { return Requirement{Kind: KindAuthenticated} }
func Role(name string) Requirement {
	return Requirement{Kind: KindRole, Role: name}
}

// Authorize decides whether a resolution outcome satisfies a requirement.
// It is a pure function: p and resolveErr are the result of Resolver.Resolve,
// and the caller translates the returned error into a response. Resolution
// failures pass through unchanged (they map to "unauthenticated"), while a
// missing role yields ErrForbidden — a distinct, externally visible outcome.
func Authorize(p *Principal, resolveErr error, req Requirement) (*Principal, error) {
	switch req.Kind {
	case KindPublic:
		if resolveErr != nil {
			return nil, nil
		}
		return p, nil
	case KindAuthenticated:
		if resolveErr != nil {
			return nil, resolveErr
		}
		if p == nil {
			return nil, ErrAnonymous
		}
		return p, nil
	case KindRole:
		if resolveErr != nil {
			return nil, resolveErr
		}
		if p == nil {
			return nil, ErrAnonymous
		}
		if !p.HasRole(req.Role) {
			return nil, ErrForbidden
		}
		return p, nil
	}
	return nil, ErrAnonymous
}

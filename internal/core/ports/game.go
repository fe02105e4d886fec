package ports

import (
	"context"

	"go.trai.ch/endotarter/internal/core/domain"
)

//go:generate mockgen -source=game.go -destination=mocks/mock_game.go -package=mocks

// MembershipSource answers the two live membership queries.
type MembershipSource interface {
	// WorldAssemblyMembers returns every nation currently in the World Assembly.
	WorldAssemblyMembers(ctx context.Context) (domain.IdentifierSet, error)

	// RegionMembers returns every nation in the operator's region.
	RegionMembers(ctx context.Context) (domain.IdentifierSet, error)
}

// ActionSink performs the endorsement itself.
type ActionSink interface {
	// Endorse endorses the target nation.
	// It returns domain.ErrActionRejected if the site refused the endorsement.
	Endorse(ctx context.Context, target domain.Identifier) error
}

// GameClient is the entry point into the live game.
type GameClient interface {
	// Membership returns a membership source for the given profile.
	// Membership queries are public and need no login.
	Membership(profile domain.Profile) MembershipSource

	// Login performs the authentication handshake and returns a sink bound to the session.
	Login(ctx context.Context, profile domain.Profile, password string) (ActionSink, error)
}

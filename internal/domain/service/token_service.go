package service

import "leadhub/internal/domain/entity"

// TokenService defines the interface for issuing and parsing access tokens.
// A token carries the full caller context so the core never looks it up again.
type TokenService interface {
	// IssueAccessToken signs a token for the caller. The API only parses
	// tokens; tests and operator tooling mint them here.
	IssueAccessToken(caller *entity.Caller) (string, error)

	// ParseAccessToken validates the token and returns the caller it was issued for.
	ParseAccessToken(tokenString string) (*entity.Caller, error)
}

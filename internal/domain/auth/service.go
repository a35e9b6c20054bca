package auth

import "context"

// AuthService authenticates credentials and issues access tokens. Token
// verification on inbound requests lives in the HTTP middleware; the business
// core only ever sees the resolved Caller.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

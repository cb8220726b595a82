package auth

import "context"

// AuthVerifier verifica un bearer token y devuelve los claims del usuario.
// Lo implementa el adapter de Odin; nil en el router => modo dev.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

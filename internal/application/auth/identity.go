package auth

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain"
)

// Identity claims decodificados del token, adjuntos al contexto de la
// petición por el middleware. Una petición sin token (o con token inválido)
// simplemente no lleva identidad: los resolvers que la requieren deben
// pedirla con Require y propagar ErrUnauthenticated.
type Identity struct {
	ID       string
	Email    string
	Name     string
	Lastname string
}

type identityKey struct{}

// WithIdentity adjunta la identidad al contexto.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext devuelve la identidad del contexto, si existe.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Require devuelve la identidad o ErrUnauthenticated si la petición es anónima.
func Require(ctx context.Context) (Identity, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return Identity{}, domain.ErrUnauthenticated
	}
	return id, nil
}

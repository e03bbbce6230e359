package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/pkg/jwt"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// AuthContext extrae el Bearer token del header Authorization, lo valida y
// adjunta la identidad decodificada al contexto de la petición.
//
// La autenticación aquí es opcional: sin header, o con token inválido o
// expirado, la petición continúa anónima (el fallo se registra). Son los
// resolvers que requieren identidad quienes fallan con un error tipado de
// autenticación, nunca este middleware.
func AuthContext(jwtSecret string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		tokenString := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = strings.TrimSpace(parts[1])
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token inválido o expirado; la petición continúa anónima")
			return c.Next()
		}
		ident := auth.Identity{
			ID:       claims.UserID,
			Email:    claims.Email,
			Name:     claims.Name,
			Lastname: claims.Lastname,
		}
		c.SetUserContext(auth.WithIdentity(c.UserContext(), ident))
		return c.Next()
	}
}

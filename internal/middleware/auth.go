package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const ContextAccount = "account"

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Faça login para continuar.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		acc, err := ParseToken(parts[1], secret)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Sessão inválida ou expirada.")
			return
		}

		c.Set(ContextAccount, acc)
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc, ok := CurrentAccount(c)
		if !ok || acc.Role() != role {
			httperr.Forbidden(c, "forbidden", "Acesso não permitido para este perfil.")
			return
		}
		c.Next()
	}
}

func CurrentAccount(c *gin.Context) (account.Account, bool) {
	v, ok := c.Get(ContextAccount)
	if !ok {
		return nil, false
	}
	acc, ok := v.(account.Account)
	return acc, ok
}

// CurrentStaff and CurrentClient assume RequireRole already ran.
func CurrentStaff(c *gin.Context) account.StaffAccount {
	acc, _ := CurrentAccount(c)
	staff, _ := acc.(account.StaffAccount)
	return staff
}

func CurrentClient(c *gin.Context) account.ClientAccount {
	acc, _ := CurrentAccount(c)
	client, _ := acc.(account.ClientAccount)
	return client
}

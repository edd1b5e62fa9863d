package middleware

import (
	"net/http"

	"github.com/demanda-dev/demanda/internal/auth"
	"github.com/demanda-dev/demanda/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthRequired is the gate every project and task route passes through.
// It reads the session cookie, verifies it with the codec and stores the
// embedded user identifier in the request context. The identifier is the
// sole tenancy key downstream; client-supplied user ids are never trusted.
func AuthRequired(codec auth.Codec) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(auth.CookieName)

		if err != nil || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			return
		}

		userID, err := codec.Verify(tokenString)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			return
		}

		ctx.Set(types.ContextUserKey, userID)
		ctx.Next()
	}
}

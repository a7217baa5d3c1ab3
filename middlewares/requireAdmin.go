package middlewares

import (
	"net/http"

	"github.com/Kibet/tableserve-api/utils"
	"github.com/gin-gonic/gin"
)

// RequireAdmin guards management and analytics routes. The verified
// session claims are placed on the context so handlers can see which
// admin acted.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(utils.AdminSessionCookie)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Admin session required"})
			return
		}

		claims, err := utils.ParseAdminToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired admin session"})
			return
		}

		ctx.Set("admin", claims)
		ctx.Next()
	}
}

package controllers

import (
	"log"
	"net/http"

	"github.com/Kibet/tableserve-api/initializers"
	"github.com/Kibet/tableserve-api/models"
	"github.com/Kibet/tableserve-api/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInvalidCredentials    = "invalid username or password"
	msgFailedToGenerateToken = "failed to generate session token"
	msgLoginSuccess          = "Login successful"
	msgLogoutSuccess         = "Logged out"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "message": message})
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// AdminLogin checks the staff credential and sets the session cookie.
// The username defaults to "admin" so the single-credential clients keep
// working unchanged.
func AdminLogin(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	username := loginData.Username
	if username == "" {
		username = "admin"
	}

	var admin models.Admin
	if err := initializers.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(admin.PasswordHash, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := utils.GenerateAdminToken(admin.Username)
	if err != nil {
		log.Println("Session token generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	ctx.SetCookie(utils.AdminSessionCookie, tokenString, 12*60*60, "/", "", false, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgLoginSuccess})
}

func AdminLogout(ctx *gin.Context) {
	ctx.SetCookie(utils.AdminSessionCookie, "", -1, "/", "", false, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgLogoutSuccess})
}

// AdminStatus reports whether the request carries a valid admin session.
// It never fails: an absent or expired cookie just reads as logged out.
func AdminStatus(ctx *gin.Context) {
	authenticated := false
	if tokenString, err := ctx.Cookie(utils.AdminSessionCookie); err == nil {
		if _, err := utils.ParseAdminToken(tokenString); err == nil {
			authenticated = true
		}
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"isAuthenticated": authenticated})
}

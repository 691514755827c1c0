// controllers/auth.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yad-anakin/diva/config"
	"github.com/yad-anakin/diva/utils"
)

const maxCredentialLen = 256

type AuthController struct {
	Cfg      config.Config
	Sessions *utils.SessionManager
	Log      *zap.Logger
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the submitted credentials against the single configured admin
// identity and sets the session cookie on success. Credential mismatches are
// all reported the same way, with nothing reflected back.
func (ac *AuthController) Login(c *gin.Context) {
	if !strings.Contains(c.ContentType(), "application/json") {
		utils.RespondWithError(c, http.StatusBadRequest, "Unsupported content-type")
		return
	}

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(input.Email)
	password := input.Password
	if email == "" || password == "" || len(email) > maxCredentialLen || len(password) > maxCredentialLen {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !ac.Cfg.HasAdminCredentials() {
		ac.Log.Error("admin credentials not configured")
		utils.RespondWithError(c, http.StatusInternalServerError, "Server not configured")
		return
	}

	// Evaluate both checks before combining so a wrong email costs the same
	// as a wrong password.
	emailOK := utils.ConstantTimeEqual(email, ac.Cfg.AdminEmail)
	passwordOK := ac.checkPassword(password)
	if !emailOK || !passwordOK {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.Sessions.Issue()
	if err != nil {
		ac.Log.Error("issue session token failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}
	ac.Sessions.SetCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ac *AuthController) checkPassword(password string) bool {
	if ac.Cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(ac.Cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return utils.ConstantTimeEqual(password, ac.Cfg.AdminPassword)
}

// Logout clears the session cookie immediately.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.Sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

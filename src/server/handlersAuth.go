package server

import (
	app "frameless/src/app"
	db "frameless/src/repository"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const currentUserKey = "currentUser"

type (
	AuthHandler struct {
		users  *db.UserRepository
		hasher app.PasswordHasher
		tokens *app.TokenService
	}

	TokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
)

func NewAuthHandler(users *db.UserRepository, hasher app.PasswordHasher, tokens *app.TokenService) *AuthHandler {
	return &AuthHandler{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Token exchanges form credentials for a bearer token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (a *AuthHandler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		abortError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := a.users.GetByUsername(c.Request.Context(), username)
	if err != nil || !a.hasher.Check(password, user.HashedPassword) {
		a.unauthorized(c, "incorrect username or password")
		return
	}

	token, err := a.tokens.Issue(user.Username)
	if err != nil {
		log.WithError(err).Error("can not issue token")
		abortError(c, http.StatusInternalServerError, "can not issue token")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the profile of the authenticated caller.
func (a *AuthHandler) Me(c *gin.Context) {
	user, ok := c.Get(currentUserKey)
	if !ok {
		a.unauthorized(c, "could not validate credentials")
		return
	}
	c.JSON(http.StatusOK, user.(*app.User))
}

// RequireUser extracts the bearer token, validates it and resolves the
// subject to a stored user. Every failure collapses to a 401; the resolved
// user is attached to the request context on success.
func (a *AuthHandler) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			a.unauthorized(c, "missing bearer token")
			return
		}

		subject, err := a.tokens.Validate(parts[1])
		if err != nil {
			a.unauthorized(c, "could not validate credentials")
			return
		}

		user, err := a.users.GetByUsername(c.Request.Context(), subject)
		if err != nil {
			a.unauthorized(c, "could not validate credentials")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func (a *AuthHandler) unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.IndentedJSON(http.StatusUnauthorized, gin.H{"message": "error", "error": msg})
	c.Abort()
}

package server

import (
	app "frameless/src/app"
	db "frameless/src/repository"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type (
	UserHandler struct {
		users       *db.UserRepository
		hasher      app.PasswordHasher
		maxPageSize int
	}

	CreateUserBody struct {
		Username string `json:"username" binding:"required,min=3,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}

	UpdateUserBody struct {
		Username *string `json:"username" binding:"omitempty,min=3,max=50"`
		Email    *string `json:"email" binding:"omitempty,email"`
		Password *string `json:"password" binding:"omitempty,min=8"`
	}
)

func NewUserHandler(users *db.UserRepository, hasher app.PasswordHasher, maxPageSize int) *UserHandler {
	return &UserHandler{
		users:       users,
		hasher:      hasher,
		maxPageSize: maxPageSize,
	}
}

func (u *UserHandler) Create(c *gin.Context) {
	var body CreateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	digest, err := u.hasher.Hash(body.Password)
	if err != nil {
		log.WithError(err).Error("can not hash password")
		abortError(c, http.StatusInternalServerError, "can not hash password")
		return
	}

	user := &app.User{
		Username:       body.Username,
		Email:          body.Email,
		HashedPassword: digest,
		IsActive:       true,
	}
	if err := u.users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			abortError(c, http.StatusConflict, "username or email already registered")
			return
		}
		log.WithError(err).Error("can not create user")
		abortError(c, http.StatusInternalServerError, "can not create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (u *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := u.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			abortError(c, http.StatusNotFound, "User not found")
			return
		}
		log.WithError(err).Error("can not fetch user")
		abortError(c, http.StatusInternalServerError, "can not fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (u *UserHandler) List(c *gin.Context) {
	offset, limit := pagination(c, u.maxPageSize)

	users, err := u.users.List(c.Request.Context(), offset, limit)
	if err != nil {
		log.WithError(err).Error("can not list users")
		abortError(c, http.StatusInternalServerError, "can not list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (u *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body UpdateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	patch := db.UserPatch{
		Username: body.Username,
		Email:    body.Email,
	}
	// A password change is re-hashed, never stored raw.
	if body.Password != nil {
		digest, err := u.hasher.Hash(*body.Password)
		if err != nil {
			log.WithError(err).Error("can not hash password")
			abortError(c, http.StatusInternalServerError, "can not hash password")
			return
		}
		patch.HashedPassword = &digest
	}

	user, err := u.users.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			abortError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, db.ErrDuplicate):
			abortError(c, http.StatusConflict, "username or email already registered")
		default:
			log.WithError(err).Error("can not update user")
			abortError(c, http.StatusInternalServerError, "can not update user")
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func (u *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := u.users.Delete(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("can not delete user")
		abortError(c, http.StatusInternalServerError, "can not delete user")
		return
	}
	if !deleted {
		abortError(c, http.StatusNotFound, "User not found")
		return
	}
	c.Status(http.StatusNoContent)
}

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
	ContentHandler struct {
		contents    *db.ContentRepository
		generator   app.Generator
		maxPageSize int
	}

	CreateContentBody struct {
		Title     string `json:"title" binding:"required,min=1,max=200"`
		Content   string `json:"content" binding:"required,min=1"`
		Theme     string `json:"theme" binding:"required,min=1,max=100"`
		IsStory   *bool  `json:"is_story"`
		IsPublic  bool   `json:"is_public"`
		ImageURL1 string `json:"image_url_1" binding:"required"`
		ImageURL2 string `json:"image_url_2" binding:"required"`
		ImageURL3 string `json:"image_url_3" binding:"required"`
		Caption1  string `json:"caption_1" binding:"required"`
		Caption2  string `json:"caption_2" binding:"required"`
		Caption3  string `json:"caption_3" binding:"required"`
		OwnerID   *uint  `json:"owner_id"`
	}

	GenerateContentBody struct {
		Theme    string `json:"theme" binding:"required,min=1,max=100"`
		Prompt   string `json:"prompt" binding:"omitempty,max=500"`
		IsStory  *bool  `json:"is_story"`
		IsPublic bool   `json:"is_public"`
		OwnerID  *uint  `json:"owner_id"`
	}

	UpdateContentBody struct {
		Title     *string `json:"title" binding:"omitempty,min=1,max=200"`
		Content   *string `json:"content" binding:"omitempty,min=1"`
		Theme     *string `json:"theme" binding:"omitempty,min=1,max=100"`
		IsStory   *bool   `json:"is_story"`
		IsPublic  *bool   `json:"is_public"`
		ImageURL1 *string `json:"image_url_1"`
		ImageURL2 *string `json:"image_url_2"`
		ImageURL3 *string `json:"image_url_3"`
		Caption1  *string `json:"caption_1"`
		Caption2  *string `json:"caption_2"`
		Caption3  *string `json:"caption_3"`
	}
)

func NewContentHandler(contents *db.ContentRepository, generator app.Generator, maxPageSize int) *ContentHandler {
	return &ContentHandler{
		contents:    contents,
		generator:   generator,
		maxPageSize: maxPageSize,
	}
}

// Create stores content supplied in full by the caller.
func (h *ContentHandler) Create(c *gin.Context) {
	var body CreateContentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	isStory := true
	if body.IsStory != nil {
		isStory = *body.IsStory
	}

	content := &app.GeneratedContent{
		Title:     body.Title,
		Content:   body.Content,
		Theme:     body.Theme,
		IsStory:   isStory,
		IsPublic:  body.IsPublic,
		ImageURL1: body.ImageURL1,
		ImageURL2: body.ImageURL2,
		ImageURL3: body.ImageURL3,
		Caption1:  body.Caption1,
		Caption2:  body.Caption2,
		Caption3:  body.Caption3,
		OwnerID:   body.OwnerID,
	}
	if err := h.contents.Create(c.Request.Context(), content); err != nil {
		log.WithError(err).Error("can not create content")
		abortError(c, http.StatusInternalServerError, "can not create content")
		return
	}
	c.JSON(http.StatusCreated, content)
}

// Generate asks the generation collaborator for title/body and the three
// image/caption pairs, then stores the result.
func (h *ContentHandler) Generate(c *gin.Context) {
	var body GenerateContentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	isStory := true
	if body.IsStory != nil {
		isStory = *body.IsStory
	}

	fields, err := h.generator.Generate(c.Request.Context(), app.GenerationRequest{
		Theme:   body.Theme,
		Prompt:  body.Prompt,
		IsStory: isStory,
	})
	if err != nil {
		log.WithError(err).WithField("theme", body.Theme).Error("generation failed")
		abortError(c, http.StatusBadGateway, "content generation failed")
		return
	}

	content := &app.GeneratedContent{
		Title:     fields.Title,
		Content:   fields.Content,
		Theme:     body.Theme,
		IsStory:   isStory,
		IsPublic:  body.IsPublic,
		ImageURL1: fields.ImageURL1,
		ImageURL2: fields.ImageURL2,
		ImageURL3: fields.ImageURL3,
		Caption1:  fields.Caption1,
		Caption2:  fields.Caption2,
		Caption3:  fields.Caption3,
		OwnerID:   body.OwnerID,
	}
	if err := h.contents.Create(c.Request.Context(), content); err != nil {
		log.WithError(err).Error("can not store generated content")
		abortError(c, http.StatusInternalServerError, "can not store generated content")
		return
	}
	c.JSON(http.StatusCreated, content)
}

func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	content, err := h.contents.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			abortError(c, http.StatusNotFound, "Content not found")
			return
		}
		log.WithError(err).Error("can not fetch content")
		abortError(c, http.StatusInternalServerError, "can not fetch content")
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) List(c *gin.Context) {
	offset, limit := pagination(c, h.maxPageSize)
	isPublic, ok := boolQuery(c, "is_public")
	if !ok {
		return
	}

	contents, err := h.contents.List(c.Request.Context(), db.ContentFilter{
		Theme:    c.Query("theme"),
		IsPublic: isPublic,
	}, offset, limit)
	if err != nil {
		log.WithError(err).Error("can not list content")
		abortError(c, http.StatusInternalServerError, "can not list content")
		return
	}
	c.JSON(http.StatusOK, contents)
}

func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body UpdateContentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	content, err := h.contents.Update(c.Request.Context(), id, db.ContentPatch{
		Title:     body.Title,
		Content:   body.Content,
		Theme:     body.Theme,
		IsStory:   body.IsStory,
		IsPublic:  body.IsPublic,
		ImageURL1: body.ImageURL1,
		ImageURL2: body.ImageURL2,
		ImageURL3: body.ImageURL3,
		Caption1:  body.Caption1,
		Caption2:  body.Caption2,
		Caption3:  body.Caption3,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			abortError(c, http.StatusNotFound, "Content not found")
			return
		}
		log.WithError(err).Error("can not update content")
		abortError(c, http.StatusInternalServerError, "can not update content")
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.contents.Delete(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("can not delete content")
		abortError(c, http.StatusInternalServerError, "can not delete content")
		return
	}
	if !deleted {
		abortError(c, http.StatusNotFound, "Content not found")
		return
	}
	c.Status(http.StatusNoContent)
}

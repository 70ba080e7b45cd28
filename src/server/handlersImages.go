package server

import (
	app "frameless/src/app"
	db "frameless/src/repository"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type (
	ImageHandler struct {
		images      *db.ImageRepository
		blobs       app.BlobStore
		maxPageSize int
	}

	CreateImageBody struct {
		URL         string `json:"url" binding:"required"`
		Description string `json:"description"`
		IsPublic    bool   `json:"is_public"`
		OwnerID     *uint  `json:"owner_id"`
	}

	UpdateImageBody struct {
		URL         *string `json:"url" binding:"omitempty,min=1"`
		Description *string `json:"description"`
		IsPublic    *bool   `json:"is_public"`
	}
)

func NewImageHandler(images *db.ImageRepository, blobs app.BlobStore, maxPageSize int) *ImageHandler {
	return &ImageHandler{
		images:      images,
		blobs:       blobs,
		maxPageSize: maxPageSize,
	}
}

// Create registers an externally hosted image by URL; no blob is written.
func (h *ImageHandler) Create(c *gin.Context) {
	var body CreateImageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	image := &app.Image{
		URL:         body.URL,
		Description: body.Description,
		IsPublic:    body.IsPublic,
		OwnerID:     body.OwnerID,
	}
	if err := h.images.Create(c.Request.Context(), image); err != nil {
		log.WithError(err).Error("can not create image")
		abortError(c, http.StatusInternalServerError, "can not create image")
		return
	}
	c.JSON(http.StatusCreated, image)
}

// Upload persists the binary under a random filename and stores the
// metadata row with the derived URL.
func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		abortError(c, http.StatusBadRequest, "can not find file in request: "+err.Error())
		return
	}
	defer file.Close()

	url, err := h.blobs.Save(app.RandomFilename(header.Filename), file, header.Size)
	if err != nil {
		log.WithError(err).Error("can not persist blob")
		abortError(c, http.StatusInternalServerError, "can not persist uploaded file")
		return
	}

	isPublic, _ := strconv.ParseBool(c.PostForm("is_public"))
	var ownerID *uint
	if raw := c.PostForm("owner_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			abortError(c, http.StatusBadRequest, "owner_id must be a positive integer")
			return
		}
		owner := uint(parsed)
		ownerID = &owner
	}

	image := &app.Image{
		URL:         url,
		Description: c.PostForm("description"),
		IsPublic:    isPublic,
		OwnerID:     ownerID,
	}
	if err := h.images.Create(c.Request.Context(), image); err != nil {
		log.WithError(err).Error("can not create image")
		abortError(c, http.StatusInternalServerError, "can not create image")
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *ImageHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	image, err := h.images.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			abortError(c, http.StatusNotFound, "Image not found")
			return
		}
		log.WithError(err).Error("can not fetch image")
		abortError(c, http.StatusInternalServerError, "can not fetch image")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *ImageHandler) List(c *gin.Context) {
	offset, limit := pagination(c, h.maxPageSize)
	isPublic, ok := boolQuery(c, "is_public")
	if !ok {
		return
	}
	ownerID, ok := uintQuery(c, "owner_id")
	if !ok {
		return
	}

	images, err := h.images.List(c.Request.Context(), db.ImageFilter{
		IsPublic: isPublic,
		OwnerID:  ownerID,
	}, offset, limit)
	if err != nil {
		log.WithError(err).Error("can not list images")
		abortError(c, http.StatusInternalServerError, "can not list images")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body UpdateImageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	image, err := h.images.Update(c.Request.Context(), id, db.ImagePatch{
		URL:         body.URL,
		Description: body.Description,
		IsPublic:    body.IsPublic,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			abortError(c, http.StatusNotFound, "Image not found")
			return
		}
		log.WithError(err).Error("can not update image")
		abortError(c, http.StatusInternalServerError, "can not update image")
		return
	}
	c.JSON(http.StatusOK, image)
}

// Delete removes the row, then tries to remove the local blob. A failed
// blob removal is logged and accepted, it never rolls back the row.
func (h *ImageHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	image, err := h.images.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			abortError(c, http.StatusNotFound, "Image not found")
			return
		}
		log.WithError(err).Error("can not delete image")
		abortError(c, http.StatusInternalServerError, "can not delete image")
		return
	}

	if err := h.blobs.Delete(image.URL); err != nil {
		log.WithError(err).WithField("url", image.URL).Warn("image row deleted but blob removal failed")
	}
	c.Status(http.StatusNoContent)
}

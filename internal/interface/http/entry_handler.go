package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mydiaryhq/mydiary-api/internal/application"
	"github.com/mydiaryhq/mydiary-api/internal/domain/entity"
	"github.com/mydiaryhq/mydiary-api/internal/domain/repository"
	"github.com/mydiaryhq/mydiary-api/internal/interface/middleware"
	"github.com/mydiaryhq/mydiary-api/pkg/response"
	"github.com/mydiaryhq/mydiary-api/pkg/validation"
)

type EntryHandler struct {
	Svc    *application.EntryService
	Logger *logrus.Logger
}

func NewEntryHandler(svc *application.EntryService, logger *logrus.Logger) *EntryHandler {
	return &EntryHandler{Svc: svc, Logger: logger}
}

type entryRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

func entryView(e *entity.Entry) gin.H {
	return gin.H{
		"id":         e.ID,
		"title":      e.Title,
		"content":    e.Content,
		"created_at": e.CreatedAt,
		"updated_at": e.UpdatedAt,
	}
}

// List GET /api/v1/entries
func (h *EntryHandler) List(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	entries, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("list entries failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch entries", nil)
		return
	}
	views := make([]gin.H, 0, len(entries))
	for i := range entries {
		views = append(views, entryView(&entries[i]))
	}
	response.Success(c, http.StatusOK, views, "entries")
}

// Get GET /api/v1/entries/:id
func (h *EntryHandler) Get(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	e, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "entry not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get entry failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch entry", nil)
		return
	}
	response.Success(c, http.StatusOK, entryView(e), "entry")
}

// Create POST /api/v1/entries
func (h *EntryHandler) Create(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), uid, application.EntryInput{Title: req.Title, Content: req.Content})
	if err != nil {
		h.Logger.WithError(err).Error("create entry failed")
		response.Error(c, http.StatusInternalServerError, "failed to create entry", nil)
		return
	}
	response.Success(c, http.StatusCreated, entryView(e), "entry created")
}

// Update PUT /api/v1/entries/:id
func (h *EntryHandler) Update(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), application.EntryInput{Title: req.Title, Content: req.Content})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "entry not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update entry failed")
		response.Error(c, http.StatusInternalServerError, "failed to update entry", nil)
		return
	}
	response.Success(c, http.StatusOK, entryView(e), "entry updated")
}

// Delete DELETE /api/v1/entries/:id
func (h *EntryHandler) Delete(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "entry not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete entry failed")
		response.Error(c, http.StatusInternalServerError, "failed to delete entry", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "entry deleted")
}

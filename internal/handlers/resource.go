package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"alocacoes-admin/internal/logger"
	"alocacoes-admin/internal/models"
	"alocacoes-admin/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResourceHandler sirve la API de recursos (profesores, cursos y alocaciones) sobre SQLite.
type ResourceHandler struct {
	Allocations *repository.AllocationRepository
	References  *repository.ReferenceRepository
}

func NewResourceHandler(allocations *repository.AllocationRepository, references *repository.ReferenceRepository) *ResourceHandler {
	return &ResourceHandler{Allocations: allocations, References: references}
}

func (h *ResourceHandler) ListProfessors(c *gin.Context) {
	professors, err := h.References.GetAllProfessors()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, professors)
}

func (h *ResourceHandler) ListCourses(c *gin.Context) {
	courses, err := h.References.GetAllCourses()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *ResourceHandler) ListAllocations(c *gin.Context) {
	allocations, err := h.Allocations.GetAll()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, allocations)
}

func (h *ResourceHandler) GetAllocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.Allocations.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ResourceHandler) CreateAllocation(c *gin.Context) {
	var p models.AllocationPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	a, err := h.Allocations.Create(p)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *ResourceHandler) UpdateAllocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var p models.AllocationPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	a, err := h.Allocations.Update(id, p)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ResourceHandler) DeleteAllocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Allocations.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrUnknownReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.L().Error("resource api error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

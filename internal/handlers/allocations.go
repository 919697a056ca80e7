package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"alocacoes-admin/internal/editor"
	"alocacoes-admin/internal/listview"
	"alocacoes-admin/internal/logger"
	"alocacoes-admin/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const listPath = "/allocations"

type AllocationHandler struct{}

func NewAllocationHandler() *AllocationHandler {
	return &AllocationHandler{}
}

// ShowList carga el listado y dibuja la página con el editor si está abierto.
func (h *AllocationHandler) ShowList(c *gin.Context) {
	sess := currentSession(c)

	var listError string
	if err := sess.List.Load(c.Request.Context()); err != nil {
		logger.L().Warn("allocation list fetch failed", zap.String("session", sess.ID), zap.Error(err))
		listError = err.Error()
	}

	c.HTML(http.StatusOK, "allocations.html", gin.H{
		"table":        sess.List.Table(),
		"listError":    listError,
		"editor":       sess.Controller.View(),
		"notices":      sess.Inbox.Drain(),
		"removePrompt": editor.RemovePrompt,
	})
}

func (h *AllocationHandler) OpenCreate(c *gin.Context) {
	sess := currentSession(c)
	if err := sess.Controller.OpenCreate(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, listPath)
}

func (h *AllocationHandler) Edit(c *gin.Context) {
	h.runAction(c, editor.ActionEdit, nil)
}

func (h *AllocationHandler) Remove(c *gin.Context) {
	confirmed := c.PostForm("confirm") == "yes"
	h.runAction(c, editor.ActionRemove, editor.ConfirmFunc(func(string) bool { return confirmed }))
}

func (h *AllocationHandler) runAction(c *gin.Context, name string, confirmer editor.Confirmer) {
	sess := currentSession(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "id inválido")
		return
	}

	err = sess.List.Run(c.Request.Context(), sess.Controller.Actions(confirmer), name, id)
	if errors.Is(err, listview.ErrRowNotFound) {
		c.String(http.StatusNotFound, "Alocación no encontrada")
		return
	}
	// Los fallos de la API ya se notificaron al usuario.
	c.Redirect(http.StatusSeeOther, listPath)
}

// UpdateDraft aplica los campos del formulario al borrador sin guardar.
func (h *AllocationHandler) UpdateDraft(c *gin.Context) {
	sess := currentSession(c)
	if err := sess.Controller.Update(draftUpdateFromForm(c)); err != nil {
		c.String(http.StatusConflict, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, listPath)
}

func (h *AllocationHandler) Save(c *gin.Context) {
	sess := currentSession(c)
	if err := sess.Controller.Update(draftUpdateFromForm(c)); err != nil {
		c.String(http.StatusConflict, err.Error())
		return
	}
	if err := sess.Controller.Save(c.Request.Context(), sess.List.Refetch); errors.Is(err, editor.ErrEditorClosed) {
		c.String(http.StatusConflict, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, listPath)
}

func (h *AllocationHandler) Cancel(c *gin.Context) {
	sess := currentSession(c)
	if err := sess.Controller.Cancel(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, listPath)
}

// draftUpdateFromForm toma sólo los campos presentes. Un id no numérico queda en 0.
func draftUpdateFromForm(c *gin.Context) models.DraftUpdate {
	var u models.DraftUpdate
	if v, ok := c.GetPostForm("professorId"); ok {
		id, _ := strconv.Atoi(v)
		u.ProfessorID = &id
	}
	if v, ok := c.GetPostForm("courseId"); ok {
		id, _ := strconv.Atoi(v)
		u.CourseID = &id
	}
	if v, ok := c.GetPostForm("dayOfWeek"); ok {
		u.DayOfWeek = &v
	}
	if v, ok := c.GetPostForm("startHour"); ok {
		u.StartHour = &v
	}
	if v, ok := c.GetPostForm("endHour"); ok {
		u.EndHour = &v
	}
	return u
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jyoo0515/docuflow/internal/core/ports/services"

	"github.com/jyoo0515/docuflow/internal/middleware"
	"github.com/jyoo0515/docuflow/internal/platform/config"
)

// WorkflowHandler exposes the signature workflow's plain-text entry points.
type WorkflowHandler struct {
	workflowService portssvc.SignatureWorkflowSvc
}

func NewWorkflowHandler(ws portssvc.SignatureWorkflowSvc) *WorkflowHandler {
	return &WorkflowHandler{workflowService: ws}
}

// registerWorkflowRoutes sets up the public workflow entry points.
func registerWorkflowRoutes(rg *gin.Engine, cfg *config.Config, workflowService portssvc.SignatureWorkflowSvc) {
	h := NewWorkflowHandler(workflowService)
	limit := middleware.RateLimit(workflowRateLimiter(cfg.WorkflowRateLimit))

	wf := rg.Group("/workflow", limit)
	{
		wf.GET("/sign", h.Complete)
		wf.POST("/submissions", h.RegisterSubmission)
	}
}

// Complete runs a signature-completion job. The response is always HTTP 200
// with a short status string; callers dispatch on the body, not the status
// code.
func (h *WorkflowHandler) Complete(c *gin.Context) {
	role := c.Query("role")
	rowStr := c.Query("row")
	if role == "" || rowStr == "" {
		c.String(http.StatusOK, portssvc.StatusParamErr)
		return
	}
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		c.String(http.StatusOK, portssvc.StatusParamErr)
		return
	}

	status := h.workflowService.Complete(c.Request.Context(), role, row)
	c.String(http.StatusOK, status)
}

// submissionRequest is the form-intake payload.
type submissionRequest struct {
	Row    int    `json:"row" binding:"required"`
	Status string `json:"status" binding:"required"`
}

func (h *WorkflowHandler) RegisterSubmission(c *gin.Context) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusOK, portssvc.StatusParamErr)
		return
	}

	err := h.workflowService.RegisterSubmission(c.Request.Context(), req.Row, portssvc.SubmissionStatus(req.Status))
	if err != nil {
		c.String(http.StatusOK, "error: "+err.Error())
		return
	}
	c.String(http.StatusOK, portssvc.StatusSuccess)
}

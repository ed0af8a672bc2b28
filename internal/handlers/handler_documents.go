package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jyoo0515/docuflow/internal/core/ports/services"

	"github.com/jyoo0515/docuflow/internal/apperrors"
	"github.com/jyoo0515/docuflow/internal/core/domain"
	"github.com/jyoo0515/docuflow/internal/dto"
	"github.com/jyoo0515/docuflow/internal/middleware"
)

// DocumentHandler handles document-ledger requests.
type DocumentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func NewDocumentHandler(ds portssvc.DocumentSvcFacade) *DocumentHandler {
	return &DocumentHandler{documentService: ds}
}

// registerDocumentRoutes sets up the routes for documents.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := NewDocumentHandler(documentService)

	docs := rg.Group("/documents")
	{
		docs.GET("", h.ListUnsigned)
		docs.POST("", h.Create)
		docs.GET("/:id", h.Get)
		docs.POST("/:id/sign", h.Sign)
		docs.GET("/:id/pdf-link", h.PdfLink)
	}
}

// ListUnsigned returns the pending documents of a spreadsheet. Image
// extraction is opt-in; it costs an extra grid read against the store.
func (h *DocumentHandler) ListUnsigned(c *gin.Context) {
	storeRef := c.Query("storeRef")
	if storeRef == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "storeRef query parameter required"})
		return
	}
	extractImages, _ := strconv.ParseBool(c.DefaultQuery("images", "true"))

	docs, err := h.documentService.ListUnsigned(c.Request.Context(), storeRef, extractImages)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list documents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs))
}

func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.documentService.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to get document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

func (h *DocumentHandler) Create(c *gin.Context) {
	storeRef := c.Query("storeRef")
	if storeRef == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "storeRef query parameter required"})
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	doc := domain.Document{
		Date:    req.Date,
		Title:   req.Title,
		Author:  req.Author,
		Content: req.Content,
	}
	created, err := h.documentService.CreateDocument(c.Request.Context(), storeRef, doc)
	if err != nil {
		h.writeError(c, err, "Failed to create document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(created))
}

func (h *DocumentHandler) Sign(c *gin.Context) {
	if err := h.documentService.SignDocument(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Failed to sign document")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DocumentHandler) PdfLink(c *gin.Context) {
	link, err := h.documentService.DocumentPdfLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to derive PDF link")
		return
	}
	c.JSON(http.StatusOK, dto.DocumentPdfLinkResponse{PdfURL: link})
}

func (h *DocumentHandler) writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document id"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
	}
}

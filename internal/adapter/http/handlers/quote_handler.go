package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"laminasycortes/internal/adapter/http/dto/request"
	"laminasycortes/internal/adapter/http/dto/response"
	"laminasycortes/internal/adapter/http/middleware"
	"laminasycortes/internal/usecase"
	"laminasycortes/internal/usecase/interfaces"
	"laminasycortes/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_PAYLOAD", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler exposes the quote engine over HTTP.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	pdf     interfaces.IPDFGenerator
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, pdf interfaces.IPDFGenerator) *QuoteHandler {
	return &QuoteHandler{usecase: uc, pdf: pdf}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Update(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	deleted, err := h.usecase.Delete(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !deleted {
		appErr := mapQuoteError(usecase.ErrQuoteNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearQuotes wipes the caller's scope. Administrative/testing endpoint, not
// part of the normal user flow.
func (h *QuoteHandler) ClearQuotes(c *gin.Context) {
	if err := h.usecase.ClearAll(c.Request.Context(), middleware.OwnerID(c)); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) ExportQuotePDF(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.pdf.Generate(quote)
	if err != nil {
		appErr := pkg.NewDomainError("PDF_GENERATION_FAILED", "Could not generate the quote document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cotizacion-%s.pdf", quote.Number))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteDataRequired),
		errors.Is(err, usecase.ErrClientNameRequired),
		errors.Is(err, usecase.ErrProductDescriptionRequired),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidUnitPrice),
		errors.Is(err, usecase.ErrInvalidClientEmail):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuthRequired):
		return pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

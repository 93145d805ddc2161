package routes

import (
	"laminasycortes/internal/adapter/http/handlers"
	"laminasycortes/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, tokens middleware.TokenVerifier, authRequired bool) {
	quotes := rg.Group(PathQuotes)
	quotes.Use(middleware.BearerAuth(tokens, authRequired))
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.DELETE("", quoteHandler.ClearQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.GET("/:id/pdf", quoteHandler.ExportQuotePDF)
	}
}

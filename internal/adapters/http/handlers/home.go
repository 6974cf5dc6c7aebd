package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/app/viewstate"
)

// HomeHandler serves the aggregated home screen payload: the quote of the
// day and the most recent catalog page, loaded in parallel with
// independent outcomes. One section failing does not fail the request.
type HomeHandler struct {
	catalog viewstate.CatalogService
	logger  *slog.Logger
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(catalog viewstate.CatalogService, logger *slog.Logger) *HomeHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &HomeHandler{catalog: catalog, logger: logger}
}

// Home handles GET /home. Both sections failing yields 503; anything
// less degrades per section in the body.
func (h *HomeHandler) Home(c *gin.Context) {
	home := viewstate.NewHome(h.catalog, h.logger)
	defer home.Close()

	home.Load(c.Request.Context())
	snap := home.Snapshot()

	resp := dto.HomeResponse{}

	if snap.QuoteOfTheDay.Err != nil {
		resp.QuoteOfTheDay.Error = snap.QuoteOfTheDay.Err.Error()
	} else if snap.QuoteOfTheDay.Value != nil {
		resp.QuoteOfTheDay.Value = dto.NewQuoteResponse(snap.QuoteOfTheDay.Value)
	}

	if snap.Recent.Err != nil {
		resp.Recent.Error = snap.Recent.Err.Error()
	} else {
		resp.Recent.Value = dto.NewQuoteResponses(snap.Recent.Value)
	}

	if snap.QuoteOfTheDay.Err != nil && snap.Recent.Err != nil {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers the home route on the given router group.
func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", h.Home)
}

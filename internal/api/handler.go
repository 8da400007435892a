// Package api serves the catalog as read-only JSON over HTTP.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jward/catalog"
	"github.com/sirupsen/logrus"
)

// Handler serves catalog reads. Every read is fail-soft, so handlers never
// report storage errors; an absent entity is a 404.
type Handler struct {
	q      *catalog.QueryBuilder
	logger *logrus.Logger
}

// NewHandler creates a Handler over q.
func NewHandler(q *catalog.QueryBuilder, logger *logrus.Logger) *Handler {
	return &Handler{q: q, logger: logger}
}

// BankingDetail is a payment method plus the casinos that accept it.
type BankingDetail struct {
	catalog.PaymentMethod
	Casinos []catalog.CasinoSummary `json:"casinos"`
}

// Search returns the flat search index.
// GET /api/search.json
func (h *Handler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.SearchIndex())
}

// Casinos returns several casinos with relations in one batch.
// GET /api/casinos?ids=bitstarz,woo
func (h *Handler) Casinos(c *gin.Context) {
	ids := splitIDs(c.Query("ids"))
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids is required"})
		return
	}
	c.JSON(http.StatusOK, h.q.CasinosWithRelations(ids))
}

// TopCasinos returns casinos by payout ratio.
// GET /api/casinos/top?limit=5
func (h *Handler) TopCasinos(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(catalog.DefaultCasinoLimit)))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}
	c.JSON(http.StatusOK, h.q.TopCasinos(limit))
}

// Casino returns one casino with payments and software.
// GET /api/casinos/:id
func (h *Handler) Casino(c *gin.Context) {
	cas := h.q.CasinoWithRelations(c.Param("id"))
	if cas == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "casino not found"})
		return
	}
	c.JSON(http.StatusOK, cas)
}

// Slot returns one slot with its provider.
// GET /api/slots/:slug
func (h *Handler) Slot(c *gin.Context) {
	sl := h.q.SlotWithProvider(c.Param("slug"))
	if sl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "slot not found"})
		return
	}
	c.JSON(http.StatusOK, sl)
}

// Banking returns one payment method and the casinos accepting it.
// GET /api/banking/:id
func (h *Handler) Banking(c *gin.Context) {
	id := c.Param("id")
	pm := h.q.PaymentMethodByID(id)
	if pm == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
		return
	}
	c.JSON(http.StatusOK, BankingDetail{
		PaymentMethod: *pm,
		Casinos:       h.q.CasinosByPaymentMethod(id, catalog.DefaultCasinoLimit),
	})
}

// Providers returns every software provider with its game count.
// GET /api/providers
func (h *Handler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.SoftwareProvidersWithCounts())
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

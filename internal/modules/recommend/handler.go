package recommend

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/middleware"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	recs := rg.Group("/recommendations", authMW)
	recs.GET("/spots", h.spots)
	recs.GET("/accommodations", h.accommodations)
	recs.GET("/feed", h.feed)
	recs.GET("/nearby", h.nearby)

	rg.GET("/districts", h.districts)
}

func limitQuery(c *gin.Context) int {
	v, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return v
}

func (h *Handler) spots(c *gin.Context) {
	results, err := h.svc.Spots(middleware.CurrentUserID(c), limitQuery(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, results)
}

func (h *Handler) accommodations(c *gin.Context) {
	results, err := h.svc.Accommodations(middleware.CurrentUserID(c), limitQuery(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, results)
}

func (h *Handler) feed(c *gin.Context) {
	results, err := h.svc.Feed(middleware.CurrentUserID(c), limitQuery(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, results)
}

func (h *Handler) nearby(c *gin.Context) {
	results, err := h.svc.Nearby(middleware.CurrentUserID(c), limitQuery(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, results)
}

func (h *Handler) districts(c *gin.Context) {
	out := make([]gin.H, 0, len(Districts()))
	for _, name := range Districts() {
		out = append(out, gin.H{
			"name":           name,
			"municipalities": districtMunicipalities[name],
		})
	}
	response.OK(c, out)
}

package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelnest/internal/domain"
	"travelnest/internal/pkg/response"
	"travelnest/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the browse/read surface.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/destinations", h.ListDestinations)
	rg.GET("/destinations/:id", h.GetDestination)
	rg.GET("/packages", h.ListPackages)
	rg.GET("/packages/:id", h.GetPackage)
	rg.GET("/offers", h.ListOffers)
	rg.GET("/offers/:id", h.GetOffer)
}

// RegisterManagementRoutes exposes the company/admin write surface; the
// caller wraps the group with auth and role middleware.
func (h *Handler) RegisterManagementRoutes(rg *gin.RouterGroup) {
	rg.POST("/destinations", h.CreateDestination)
	rg.PUT("/destinations/:id", h.UpdateDestination)
	rg.DELETE("/destinations/:id", h.DeleteDestination)
	rg.PATCH("/destinations/:id/active", h.ToggleDestinationActive)
	rg.PATCH("/destinations/:id/featured", h.ToggleDestinationFeatured)

	rg.POST("/packages", h.CreatePackage)
	rg.PUT("/packages/:id", h.UpdatePackage)
	rg.DELETE("/packages/:id", h.DeletePackage)
	rg.PATCH("/packages/:id/active", h.TogglePackageActive)
	rg.PATCH("/packages/:id/featured", h.TogglePackageFeatured)

	rg.POST("/offers", h.CreateOffer)
	rg.PUT("/offers/:id", h.UpdateOffer)
	rg.DELETE("/offers/:id", h.DeleteOffer)
	rg.PATCH("/offers/:id/active", h.ToggleOfferActive)
	rg.PATCH("/offers/:id/featured", h.ToggleOfferFeatured)
}

func actorFromContext(c *gin.Context) Actor {
	return Actor{
		ID:   c.GetInt64("user_id"),
		Role: domain.UserRole(c.GetString("role")),
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func writeCatalogError(c *gin.Context, err error) {
	var fieldErrs validator.Errors
	switch {
	case errors.As(err, &fieldErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fieldErrs)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Catalog item not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func listMeta(total int64, q ListQuery) gin.H {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}
	return gin.H{"total": total, "page": page, "per_page": perPage}
}

/* ---------- DESTINATIONS ---------- */

func (h *Handler) ListDestinations(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	items, total, err := h.service.ListDestinations(c.Request.Context(), q)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"destinations": items, "meta": listMeta(total, q)})
}

func (h *Handler) GetDestination(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.service.GetDestination(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"destination": item})
}

func (h *Handler) CreateDestination(c *gin.Context) {
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.CreateDestination(c.Request.Context(), actorFromContext(c), in)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"destination": item})
}

func (h *Handler) UpdateDestination(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.UpdateDestination(c.Request.Context(), actorFromContext(c), id, in)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"destination": item})
}

func (h *Handler) DeleteDestination(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteDestination(c.Request.Context(), actorFromContext(c), id); err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ToggleDestinationActive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleDestinationActive(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"destination": item})
}

func (h *Handler) ToggleDestinationFeatured(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleDestinationFeatured(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"destination": item})
}

/* ---------- PACKAGES ---------- */

func (h *Handler) ListPackages(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	items, total, err := h.service.ListPackages(c.Request.Context(), q)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"packages": items, "meta": listMeta(total, q)})
}

func (h *Handler) GetPackage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"package": item})
}

func (h *Handler) CreatePackage(c *gin.Context) {
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.CreatePackage(c.Request.Context(), actorFromContext(c), in)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"package": item})
}

func (h *Handler) UpdatePackage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.UpdatePackage(c.Request.Context(), actorFromContext(c), id, in)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"package": item})
}

func (h *Handler) DeletePackage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeletePackage(c.Request.Context(), actorFromContext(c), id); err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) TogglePackageActive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.service.TogglePackageActive(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"package": item})
}

func (h *Handler) TogglePackageFeatured(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.service.TogglePackageFeatured(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"package": item})
}

/* ---------- OFFERS ---------- */

func (h *Handler) ListOffers(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	items, total, err := h.service.ListOffers(c.Request.Context(), q)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offers": items, "meta": listMeta(total, q)})
}

func (h *Handler) GetOffer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.service.GetOffer(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offer": item})
}

func (h *Handler) CreateOffer(c *gin.Context) {
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.CreateOffer(c.Request.Context(), actorFromContext(c), in)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"offer": item})
}

func (h *Handler) UpdateOffer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.UpdateOffer(c.Request.Context(), actorFromContext(c), id, in)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offer": item})
}

func (h *Handler) DeleteOffer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteOffer(c.Request.Context(), actorFromContext(c), id); err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ToggleOfferActive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleOfferActive(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offer": item})
}

func (h *Handler) ToggleOfferFeatured(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleOfferFeatured(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offer": item})
}

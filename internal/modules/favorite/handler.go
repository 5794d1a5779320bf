package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelnest/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the authenticated favorites surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/favorites", h.Add)
	rg.DELETE("/favorites/:destinationID", h.Remove)
	rg.GET("/favorites", h.List)
	rg.GET("/favorites/:destinationID/status", h.Status)
}

func (h *Handler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	fav, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), req.DestinationID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"favorite": fav})
}

func (h *Handler) Remove(c *gin.Context) {
	destinationID, err := strconv.ParseInt(c.Param("destinationID"), 10, 64)
	if err != nil || destinationID < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), destinationID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}

	favorites, total, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), perPage, (page-1)*perPage)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorites": favorites, "total": total})
}

func (h *Handler) Status(c *gin.Context) {
	destinationID, err := strconv.ParseInt(c.Param("destinationID"), 10, 64)
	if err != nil || destinationID < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination id")
		return
	}

	favorited, err := h.service.IsFavorited(c.Request.Context(), c.GetInt64("user_id"), destinationID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorited": favorited})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDestinationNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
	case errors.Is(err, ErrFavoriteNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

package club

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ifclub/ifclub-api/internal/shared/handler"
)

type ClubHandler struct {
	clubService *ClubService
}

func NewClubHandler(clubService *ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

func (h *ClubHandler) GetByID(c *gin.Context) {
	id, ok := handler.ParseIDParam(c, "id")
	if !ok {
		return
	}

	response, err := h.clubService.GetByID(c.Request.Context(), id)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

package v1

import (
	"net/http"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PreviewHandler struct {
	previewUC domain.PreviewUsecase
}

func NewPreviewHandler(api *gin.RouterGroup, previewUC domain.PreviewUsecase) {
	handler := &PreviewHandler{previewUC: previewUC}
	api.GET("/preview", handler.Get)
}

// GetPreview godoc
// @Summary      Link preview
// @Description  Fetches url and returns its og:title, og:description and og:image. Never cached.
// @Tags         preview
// @Produce      json
// @Param        url  query     string  true  "Page to preview"
// @Success      200  {object}  domain.LinkPreview
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /preview [get]
func (h *PreviewHandler) Get(c *gin.Context) {
	// Exactly one url value is accepted; ?url=a&url=b is as invalid as none.
	urls := c.QueryArray("url")
	if len(urls) != 1 {
		c.Error(apperror.BadRequest("Invalid URL"))
		return
	}

	preview, err := h.previewUC.Preview(c.Request.Context(), urls[0])
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

package api

import (
	"net/http"

	reqdto "pousada-booking/internal/handler/dto/request"
	resdto "pousada-booking/internal/handler/dto/response"
	"pousada-booking/internal/handler/httperr"
	"pousada-booking/internal/usecase/commands"
	"pousada-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ManualBlockHandler struct {
	cmds commands.ManualBlockCommands
	q    queries.ManualBlockQueries
}

func NewManualBlockHandler(cmds commands.ManualBlockCommands, q queries.ManualBlockQueries) *ManualBlockHandler {
	return &ManualBlockHandler{cmds: cmds, q: q}
}

// @Summary Create manual block
// @Description Take [startDate, endDate) off sale
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateManualBlockRequest true "Block"
// @Success 201 {object} resdto.ManualBlockResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/manual-blocks [post]
func (h *ManualBlockHandler) Create(c *gin.Context) {
	var req reqdto.CreateManualBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromManualBlockView(view))
}

// @Summary List manual blocks
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param accommodation_id query string true "Accommodation ID"
// @Param from query string false "Only blocks ending on or after this date (default today)"
// @Success 200 {array} resdto.ManualBlockResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/manual-blocks [get]
func (h *ManualBlockHandler) List(c *gin.Context) {
	accID, err := uuid.Parse(c.Query("accommodation_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter accommodation_id is required", nil)
		return
	}
	var from *civil.Date
	if s := c.Query("from"); s != "" {
		d, parseErr := civil.ParseDate(s)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Query parameter from must be YYYY-MM-DD", nil)
			return
		}
		from = &d
	}

	rows, err := h.q.List(c.Request.Context(), accID, from)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromManualBlockViews(rows))
}

// @Summary Delete manual block
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Manual block ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/manual-blocks/{id} [delete]
func (h *ManualBlockHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid manual block id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

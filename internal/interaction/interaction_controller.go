package interaction

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RyanLee0396/SVDiscordBot/internal/common"
	"github.com/RyanLee0396/SVDiscordBot/internal/scrim"
	"github.com/RyanLee0396/SVDiscordBot/pkg/responses"
	"github.com/RyanLee0396/SVDiscordBot/pkg/validator"
)

// InteractionController exposes the two-phase prompt flow over HTTP
type InteractionController struct {
	coord *Coordinator
	log   *zap.Logger
}

func NewInteractionController(coord *Coordinator, log *zap.Logger) *InteractionController {
	if log == nil {
		log = zap.NewNop()
	}
	return &InteractionController{coord: coord, log: log}
}

type BeginRequest struct {
	Kind Kind `json:"kind" binding:"required,oneof=create_team join_team signup cancel_signup"`
}

type SubmitRequest struct {
	Values []string `json:"values" binding:"required,min=1,max=31,dive,max=32"`
}

func (ic *InteractionController) respondError(c *gin.Context, err error) {
	if code, status, ok := lookup(err); ok {
		responses.SendErrorReason(c, status, code, err.Error())
		return
	}
	scrim.RespondError(c, ic.log, err)
}

// Begin godoc
// @Summary Start an interaction
// @Description Opens a short-lived prompt session and returns the options to offer. Sessions expire after a fixed timeout.
// @Tags Interactions
// @Accept json
// @Produce json
// @Param request body BeginRequest true "Interaction kind"
// @Success 201 {object} responses.SuccessResponse{data=Session} "Session"
// @Failure 400 {object} responses.ErrorResponse "InvalidInput"
// @Failure 409 {object} responses.ErrorResponse "Identity cannot start this interaction"
// @Security ApiKeyAuth
// @Router /interactions [post]
func (ic *InteractionController) Begin(c *gin.Context) {
	who, err := common.GetIdentityFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Identity not authenticated")
		return
	}
	var req BeginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, validator.Describe(err))
		return
	}

	sess, err := ic.coord.Begin(c.Request.Context(), who, req.Kind)
	if err != nil {
		ic.respondError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Interaction started", sess)
}

// Submit godoc
// @Summary Answer an interaction
// @Description Submits the chosen values. Invalid values keep the session open; a valid answer consumes it and runs the operation.
// @Tags Interactions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SubmitRequest true "Chosen values"
// @Success 200 {object} responses.SuccessResponse{data=Result} "Result"
// @Failure 403 {object} responses.ErrorResponse "ForeignSession"
// @Failure 410 {object} responses.ErrorResponse "SessionExpired"
// @Security ApiKeyAuth
// @Router /interactions/{id} [post]
func (ic *InteractionController) Submit(c *gin.Context) {
	who, err := common.GetIdentityFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Identity not authenticated")
		return
	}
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, validator.Describe(err))
		return
	}

	res, err := ic.coord.Submit(c.Request.Context(), who, c.Param("id"), req.Values)
	if err != nil {
		ic.respondError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Interaction completed", res)
}

// Cancel godoc
// @Summary Abandon an interaction
// @Description Discards a pending session without any changes.
// @Tags Interactions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} responses.SuccessResponse "Cancelled"
// @Failure 410 {object} responses.ErrorResponse "SessionExpired"
// @Security ApiKeyAuth
// @Router /interactions/{id} [delete]
func (ic *InteractionController) Cancel(c *gin.Context) {
	who, err := common.GetIdentityFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Identity not authenticated")
		return
	}
	if err := ic.coord.Cancel(c.Request.Context(), who, c.Param("id")); err != nil {
		ic.respondError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Interaction cancelled", nil)
}

package scrim

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RyanLee0396/SVDiscordBot/internal/common"
	"github.com/RyanLee0396/SVDiscordBot/pkg/responses"
	"github.com/RyanLee0396/SVDiscordBot/pkg/validator"
)

// ScrimController handles team and slot HTTP requests
type ScrimController struct {
	svc *Service
	log *zap.Logger
}

// NewScrimController creates a new scrim controller
func NewScrimController(svc *Service, log *zap.Logger) *ScrimController {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScrimController{svc: svc, log: log}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,max=16"`
}

type JoinTeamRequest struct {
	TeamName string `json:"team_name" binding:"required,max=16"`
}

type PeriodsRequest struct {
	Periods []string `json:"periods" binding:"required,min=1,max=31,dive,required,max=32"`
}

type AddSlotRequest struct {
	Period string `json:"period" binding:"required,max=32"`
}

// --- DTOs for responses ---

type CreateTeamResponse struct {
	TeamID   uint   `json:"team_id"`
	TeamName string `json:"team_name"`
}

type TeamNameResponse struct {
	TeamName string `json:"team_name"`
}

type CancelSignupResponse struct {
	Removed []string `json:"removed"`
}

type SlotTeamsResponse struct {
	Period string   `json:"period"`
	Teams  []string `json:"teams"`
}

type AddSlotResponse struct {
	Period  string `json:"period"`
	Created bool   `json:"created"`
}

// RespondError writes err using the scrim error taxonomy. Unknown errors are
// logged and reported as a generic failure.
func RespondError(c *gin.Context, log *zap.Logger, err error) {
	status := StatusOf(err)
	code := CodeOf(err)
	if code == CodeInternal {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		responses.InternalServerError(c, "")
		return
	}
	if code == CodeStorageUnavailable {
		log.Warn("storage unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		responses.SendErrorReason(c, status, code, "Storage is temporarily unavailable, try again later")
		return
	}
	responses.SendErrorReason(c, status, code, err.Error())
}

func (sc *ScrimController) identity(c *gin.Context) (common.Identity, bool) {
	who, err := common.GetIdentityFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Identity not authenticated")
		return common.Identity{}, false
	}
	return who, true
}

// CreateTeam godoc
// @Summary Create a team
// @Description Creates a team led by the authenticated identity. Names are uppercased and at most 3 characters.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team name"
// @Success 201 {object} responses.SuccessResponse{data=CreateTeamResponse} "Team created"
// @Failure 400 {object} responses.ErrorResponse "InvalidInput"
// @Failure 409 {object} responses.ErrorResponse "AlreadyLeader, AlreadyMember or NameTaken"
// @Failure 503 {object} responses.ErrorResponse "StorageUnavailable"
// @Security ApiKeyAuth
// @Router /teams [post]
func (sc *ScrimController) CreateTeam(c *gin.Context) {
	who, ok := sc.identity(c)
	if !ok {
		return
	}
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, validator.Describe(err))
		return
	}

	team, err := sc.svc.CreateTeam(c.Request.Context(), who, req.Name)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", CreateTeamResponse{TeamID: team.ID, TeamName: team.Name})
}

// JoinTeam godoc
// @Summary Join a team
// @Description Adds the authenticated identity to the named team as a member.
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body JoinTeamRequest true "Team to join"
// @Success 200 {object} responses.SuccessResponse{data=TeamNameResponse} "Joined"
// @Failure 404 {object} responses.ErrorResponse "NoSuchTeam"
// @Failure 409 {object} responses.ErrorResponse "AlreadyLeader, AlreadyMember or TeamFull"
// @Security ApiKeyAuth
// @Router /teams/join [post]
func (sc *ScrimController) JoinTeam(c *gin.Context) {
	who, ok := sc.identity(c)
	if !ok {
		return
	}
	var req JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, validator.Describe(err))
		return
	}

	team, err := sc.svc.JoinTeam(c.Request.Context(), who, req.TeamName)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Joined team successfully", TeamNameResponse{TeamName: team.Name})
}

// QuitTeam godoc
// @Summary Quit the current team
// @Description Removes the authenticated member from their team. Leaders must discard instead.
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=TeamNameResponse} "Left team"
// @Failure 404 {object} responses.ErrorResponse "NotAMember"
// @Failure 409 {object} responses.ErrorResponse "IsLeader"
// @Security ApiKeyAuth
// @Router /teams/quit [post]
func (sc *ScrimController) QuitTeam(c *gin.Context) {
	who, ok := sc.identity(c)
	if !ok {
		return
	}
	name, err := sc.svc.QuitTeam(c.Request.Context(), who)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Left team successfully", TeamNameResponse{TeamName: name})
}

// DiscardTeam godoc
// @Summary Discard the led team
// @Description Deletes the team led by the authenticated identity along with its members and signups.
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=TeamNameResponse} "Team discarded"
// @Failure 403 {object} responses.ErrorResponse "NotALeader"
// @Security ApiKeyAuth
// @Router /teams/mine [delete]
func (sc *ScrimController) DiscardTeam(c *gin.Context) {
	who, ok := sc.identity(c)
	if !ok {
		return
	}
	name, err := sc.svc.DiscardTeam(c.Request.Context(), who.ID)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team discarded successfully", TeamNameResponse{TeamName: name})
}

// ListTeams godoc
// @Summary List all teams
// @Description Lists every team with its leader and members.
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]TeamSummary} "Teams"
// @Router /teams [get]
func (sc *ScrimController) ListTeams(c *gin.Context) {
	teams, err := sc.svc.ListAllTeams(c.Request.Context())
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// Signup godoc
// @Summary Sign up for slots
// @Description Signs the led team up for each period. Each period reports Accepted, SlotFull or AlreadySignedUp.
// @Tags Signups
// @Accept json
// @Produce json
// @Param request body PeriodsRequest true "Periods"
// @Success 200 {object} responses.SuccessResponse{data=[]SlotOutcome} "Per period outcome"
// @Failure 403 {object} responses.ErrorResponse "NotALeader"
// @Security ApiKeyAuth
// @Router /signups [post]
func (sc *ScrimController) Signup(c *gin.Context) {
	who, ok := sc.identity(c)
	if !ok {
		return
	}
	var req PeriodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, validator.Describe(err))
		return
	}

	outcomes, err := sc.svc.Signup(c.Request.Context(), who.ID, req.Periods)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Signup processed", outcomes)
}

// CancelSignup godoc
// @Summary Cancel slot signups
// @Description Removes the led team's signups for the given periods. Unknown periods are ignored.
// @Tags Signups
// @Accept json
// @Produce json
// @Param request body PeriodsRequest true "Periods"
// @Success 200 {object} responses.SuccessResponse{data=CancelSignupResponse} "Removed periods"
// @Failure 403 {object} responses.ErrorResponse "NotALeader"
// @Security ApiKeyAuth
// @Router /signups/cancel [post]
func (sc *ScrimController) CancelSignup(c *gin.Context) {
	who, ok := sc.identity(c)
	if !ok {
		return
	}
	var req PeriodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, validator.Describe(err))
		return
	}

	removed, err := sc.svc.CancelSignup(c.Request.Context(), who.ID, req.Periods)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Signups cancelled", CancelSignupResponse{Removed: removed})
}

// GetSchedule godoc
// @Summary Get my team's schedule
// @Description Lists the periods of the team the authenticated identity leads or belongs to.
// @Tags Signups
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Schedule} "Schedule"
// @Failure 404 {object} responses.ErrorResponse "NotInATeam"
// @Security ApiKeyAuth
// @Router /schedule [get]
func (sc *ScrimController) GetSchedule(c *gin.Context) {
	who, ok := sc.identity(c)
	if !ok {
		return
	}
	schedule, err := sc.svc.GetSchedule(c.Request.Context(), who)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// ListSlots godoc
// @Summary List window slots
// @Description Lists every day of the rolling window with registration counts.
// @Tags Slots
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]SlotAvailability} "Slots"
// @Router /slots [get]
func (sc *ScrimController) ListSlots(c *gin.Context) {
	slots, err := sc.svc.Slots(c.Request.Context())
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Slots retrieved successfully", slots)
}

// ListTeamsForSlot godoc
// @Summary List teams for a slot
// @Description Lists team names signed up for a period, in signup order.
// @Tags Slots
// @Produce json
// @Param period query string true "Period, e.g. 05/06"
// @Success 200 {object} responses.SuccessResponse{data=SlotTeamsResponse} "Teams"
// @Failure 400 {object} responses.ErrorResponse "InvalidInput"
// @Router /slots/teams [get]
func (sc *ScrimController) ListTeamsForSlot(c *gin.Context) {
	period := c.Query("period")
	teams, err := sc.svc.ListTeamsForSlot(c.Request.Context(), period)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", SlotTeamsResponse{Period: period, Teams: teams})
}

// Participants godoc
// @Summary Participants by day
// @Description Shows the teams for one day of the window with previous and next day offsets.
// @Tags Slots
// @Produce json
// @Param day_offset query int false "Days from today" default(0)
// @Success 200 {object} responses.SuccessResponse{data=Participants} "Participants"
// @Failure 400 {object} responses.ErrorResponse "InvalidInput"
// @Router /participants [get]
func (sc *ScrimController) Participants(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("day_offset", "0"))
	if err != nil {
		responses.BadRequest(c, "day_offset must be an integer")
		return
	}
	view, err := sc.svc.Participants(c.Request.Context(), offset)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Participants retrieved successfully", view)
}

// ListSeededSlots godoc
// @Summary List seeded slots
// @Description Lists every stored slot period and whether it falls inside the current signup window.
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]SeededSlot} "Seeded slots"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /admin/slots [get]
func (sc *ScrimController) ListSeededSlots(c *gin.Context) {
	slots, err := sc.svc.SeededSlots(c.Request.Context())
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Seeded slots retrieved", slots)
}

// AddSlot godoc
// @Summary Seed a slot
// @Description Adds a slot period. Adding an existing period is not an error and reports created=false.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body AddSlotRequest true "Period"
// @Success 200 {object} responses.SuccessResponse{data=AddSlotResponse} "Slot"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /admin/slots [post]
func (sc *ScrimController) AddSlot(c *gin.Context) {
	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, validator.Describe(err))
		return
	}
	created, err := sc.svc.AddScrimTime(c.Request.Context(), req.Period)
	if err != nil {
		RespondError(c, sc.log, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Slot processed", AddSlotResponse{Period: req.Period, Created: created})
}

// ResetAll godoc
// @Summary Reset all scrim data
// @Description Deletes every slot, team, membership and signup.
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.SuccessResponse "Reset"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /admin/reset [post]
func (sc *ScrimController) ResetAll(c *gin.Context) {
	if err := sc.svc.ResetAll(c.Request.Context()); err != nil {
		RespondError(c, sc.log, err)
		return
	}
	who, _ := common.GetIdentityFromContext(c)
	sc.log.Warn("scrim data reset by admin", zap.String("admin_id", who.ID))
	responses.SendSuccess(c, http.StatusOK, "All scrim data has been reset", nil)
}

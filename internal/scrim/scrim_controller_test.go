package scrim

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RyanLee0396/SVDiscordBot/internal/common"
	"github.com/RyanLee0396/SVDiscordBot/pkg/responses"
)

// headerAuth stands in for the JWT middleware.
func headerAuth(c *gin.Context) {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		responses.Unauthorized(c, "")
		return
	}
	c.Set(common.ContextIdentityKey, common.Identity{ID: id, Name: c.GetHeader("X-User-Name")})
	if role := c.GetHeader("X-Role"); role != "" {
		c.Set(common.ContextRolesKey, []string{role})
	}
	c.Next()
}

func adminOnly(c *gin.Context) {
	if !slices.Contains(common.GetRolesFromContext(c), "admin") {
		responses.Forbidden(c, "")
		return
	}
	c.Next()
}

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	r := gin.New()
	ScrimRoutes(r.Group("/api"), svc, nil, headerAuth, adminOnly)
	return r, svc
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
	Reason  string          `json:"reason"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path string, who *common.Identity, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if who != nil {
		req.Header.Set("X-User-ID", who.ID)
		req.Header.Set("X-User-Name", who.Name)
		if who.ID == "admin" {
			req.Header.Set("X-Role", "admin")
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestCreateTeamEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	leader := user(1)

	code, env := do(t, r, http.MethodPost, "/api/teams", &leader, CreateTeamRequest{Name: "abc"})
	require.Equal(t, http.StatusCreated, code)
	var created CreateTeamResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "ABC", created.TeamName)
	assert.NotZero(t, created.TeamID)

	other := user(2)
	code, env = do(t, r, http.MethodPost, "/api/teams", &other, CreateTeamRequest{Name: "ABC"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, CodeNameTaken, env.Reason)

	code, env = do(t, r, http.MethodPost, "/api/teams", &other, CreateTeamRequest{Name: "LONG"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, CodeInvalidInput, env.Reason)

	code, _ = do(t, r, http.MethodPost, "/api/teams", &other, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, r, http.MethodPost, "/api/teams", nil, CreateTeamRequest{Name: "XYZ"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestTeamLifecycleEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	leader, member := user(1), user(2)

	code, _ := do(t, r, http.MethodPost, "/api/teams", &leader, CreateTeamRequest{Name: "LIF"})
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, r, http.MethodPost, "/api/teams/join", &member, JoinTeamRequest{TeamName: "nope"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, CodeNoSuchTeam, env.Reason)

	code, _ = do(t, r, http.MethodPost, "/api/teams/join", &member, JoinTeamRequest{TeamName: "lif"})
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, r, http.MethodGet, "/api/teams", nil, nil)
	require.Equal(t, http.StatusOK, code)
	var teams []TeamSummary
	require.NoError(t, json.Unmarshal(env.Data, &teams))
	assert.Equal(t, []TeamSummary{{TeamName: "LIF", LeaderID: leader.ID, Members: []string{member.Name}}}, teams)

	code, env = do(t, r, http.MethodPost, "/api/teams/quit", &leader, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, CodeIsLeader, env.Reason)

	code, _ = do(t, r, http.MethodPost, "/api/teams/quit", &member, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, r, http.MethodDelete, "/api/teams/mine", &member, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, CodeNotALeader, env.Reason)

	code, env = do(t, r, http.MethodDelete, "/api/teams/mine", &leader, nil)
	require.Equal(t, http.StatusOK, code)
	var discarded TeamNameResponse
	require.NoError(t, json.Unmarshal(env.Data, &discarded))
	assert.Equal(t, "LIF", discarded.TeamName)
}

func TestSignupEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	leader := user(1)
	code, _ := do(t, r, http.MethodPost, "/api/teams", &leader, CreateTeamRequest{Name: "SGN"})
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, r, http.MethodPost, "/api/signups", &leader, PeriodsRequest{Periods: []string{"05/06", "06/06"}})
	require.Equal(t, http.StatusOK, code)
	var outcomes []SlotOutcome
	require.NoError(t, json.Unmarshal(env.Data, &outcomes))
	assert.Equal(t, []SlotOutcome{{"05/06", StatusAccepted}, {"06/06", StatusAccepted}}, outcomes)

	code, _ = do(t, r, http.MethodPost, "/api/signups", &leader, PeriodsRequest{})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, r, http.MethodGet, "/api/slots/teams?period=05/06", nil, nil)
	require.Equal(t, http.StatusOK, code)
	var slotTeams SlotTeamsResponse
	require.NoError(t, json.Unmarshal(env.Data, &slotTeams))
	assert.Equal(t, []string{"SGN"}, slotTeams.Teams)

	code, env = do(t, r, http.MethodPost, "/api/signups/cancel", &leader, PeriodsRequest{Periods: []string{"05/06"}})
	require.Equal(t, http.StatusOK, code)
	var cancelled CancelSignupResponse
	require.NoError(t, json.Unmarshal(env.Data, &cancelled))
	assert.Equal(t, []string{"05/06"}, cancelled.Removed)

	code, env = do(t, r, http.MethodGet, "/api/schedule", &leader, nil)
	require.Equal(t, http.StatusOK, code)
	var schedule Schedule
	require.NoError(t, json.Unmarshal(env.Data, &schedule))
	assert.Equal(t, []string{"06/06"}, schedule.Periods)

	stranger := user(9)
	code, env = do(t, r, http.MethodGet, "/api/schedule", &stranger, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, CodeNotInATeam, env.Reason)

	code, env = do(t, r, http.MethodPost, "/api/signups", &stranger, PeriodsRequest{Periods: []string{"05/06"}})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, CodeNotALeader, env.Reason)
}

func TestSlotViewEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	code, env := do(t, r, http.MethodGet, "/api/slots", nil, nil)
	require.Equal(t, http.StatusOK, code)
	var slots []SlotAvailability
	require.NoError(t, json.Unmarshal(env.Data, &slots))
	assert.Len(t, slots, 7)

	code, env = do(t, r, http.MethodGet, "/api/participants?day_offset=3", nil, nil)
	require.Equal(t, http.StatusOK, code)
	var view Participants
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, 3, view.Offset)
	require.NotNil(t, view.Prev)
	require.NotNil(t, view.Next)

	code, env = do(t, r, http.MethodGet, "/api/participants?day_offset=9", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, CodeInvalidInput, env.Reason)

	code, _ = do(t, r, http.MethodGet, "/api/participants?day_offset=x", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAdminEndpoints(t *testing.T) {
	r, svc := newTestRouter(t)
	admin := common.Identity{ID: "admin", Name: "root"}
	leader := user(1)

	code, _ := do(t, r, http.MethodPost, "/api/admin/reset", &leader, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := do(t, r, http.MethodPost, "/api/admin/slots", &admin, AddSlotRequest{Period: "20/06"})
	require.Equal(t, http.StatusOK, code)
	var added AddSlotResponse
	require.NoError(t, json.Unmarshal(env.Data, &added))
	assert.True(t, added.Created)

	code, env = do(t, r, http.MethodPost, "/api/admin/slots", &admin, AddSlotRequest{Period: "20/06"})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &added))
	assert.False(t, added.Created)

	code, _ = do(t, r, http.MethodGet, "/api/admin/slots", &leader, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, env = do(t, r, http.MethodGet, "/api/admin/slots", &admin, nil)
	require.Equal(t, http.StatusOK, code)
	var seeded []SeededSlot
	require.NoError(t, json.Unmarshal(env.Data, &seeded))
	require.Len(t, seeded, 1)
	assert.Equal(t, "20/06", seeded[0].Period)

	code, _ = do(t, r, http.MethodPost, "/api/teams", &leader, CreateTeamRequest{Name: "DEL"})
	require.Equal(t, http.StatusCreated, code)

	code, _ = do(t, r, http.MethodPost, "/api/admin/reset", &admin, nil)
	require.Equal(t, http.StatusOK, code)

	teams, err := svc.ListAllTeams(t.Context())
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestRespondErrorHidesUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, zap.NewNop(), errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, CodeInternal, env.Reason)
	assert.NotContains(t, env.Message, "connection reset")
}

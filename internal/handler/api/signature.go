package api

import (
	"errors"
	"net/http"

	reqdto "dealer-contracts/internal/handler/dto/request"
	resdto "dealer-contracts/internal/handler/dto/response"
	"dealer-contracts/internal/handler/httperr"
	"dealer-contracts/internal/handler/middleware"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingUser              = errors.New("authenticated user missing from context")
	errInvalidIdempotencyKey    = errors.New("invalid idempotency key format")
	idempotencyKeyHeader        = "Idempotency-Key"
	idempotencyReplayHeader     = "Idempotent-Replayed"
	idempotencyReplayHeaderTrue = "true"
)

type SignatureHandler struct {
	cmds  commands.SignatureCommands
	q     queries.SignatureQueries
	clock clock.Clock
}

func NewSignatureHandler(cmds commands.SignatureCommands, q queries.SignatureQueries, clk clock.Clock) *SignatureHandler {
	return &SignatureHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Create signing session
// @Description Freeze the contract options, issue a signing link and queue the invitation email
// @Tags signature-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicleId path string true "Vehicle ID"
// @Param Idempotency-Key header string false "Replays the original session when repeated"
// @Param request body reqdto.CreateSessionRequest true "Session request"
// @Success 201 {object} resdto.SessionResponse
// @Success 200 {object} resdto.SessionResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles/{vehicleId}/signature-sessions [post]
func (h *SignatureHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle id", nil)
		return
	}
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.CreateSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(vehicleID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.cmds.CreateSession(c.Request.Context(), cmd, actorID, idempotencyKey)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
		c.Header(idempotencyReplayHeader, idempotencyReplayHeaderTrue)
	}
	c.JSON(status, resdto.FromCreateSessionResult(result, h.clock.Now()))
}

// @Summary List signing sessions
// @Description List signing sessions of a vehicle with their derived status
// @Tags signature-sessions
// @Produce json
// @Security BearerAuth
// @Param vehicleId path string true "Vehicle ID"
// @Success 200 {array} resdto.SessionListItemResponse
// @Failure 400 {object} httperr.Response
// @Router /vehicles/{vehicleId}/signature-sessions [get]
func (h *SignatureHandler) List(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle id", nil)
		return
	}
	items, err := h.q.ListSessions(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionList(items))
}

// @Summary Revoke signing session
// @Description Withdraw a pending signing link
// @Tags signature-sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /signature-sessions/{id}/revoke [post]
func (h *SignatureHandler) Revoke(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	session, err := h.cmds.RevokeSession(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(session, h.clock.Now()))
}

// getIdempotencyKey returns nil when the header is absent.
func getIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	keyStr := c.GetHeader(idempotencyKeyHeader)
	if keyStr == "" {
		return nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return nil, errInvalidIdempotencyKey
	}

	return &key, nil
}

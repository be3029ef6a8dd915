package api

import (
	"log/slog"
	"net/http"

	reqdto "dealer-contracts/internal/handler/dto/request"
	resdto "dealer-contracts/internal/handler/dto/response"
	"dealer-contracts/internal/handler/httperr"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// SigningHandler serves the customer facing signing page. The token in the
// path is the only credential.
type SigningHandler struct {
	cmds  commands.SignatureCommands
	q     queries.SignatureQueries
	clock clock.Clock
}

func NewSigningHandler(cmds commands.SignatureCommands, q queries.SignatureQueries, clk clock.Clock) *SigningHandler {
	return &SigningHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Open signing page
// @Description Validate a signing token and return the contract to sign
// @Tags signing
// @Produce json
// @Param token path string true "Signing token"
// @Success 200 {object} resdto.SigningPageResponse
// @Failure 404 {object} httperr.Response "code not_found"
// @Failure 409 {object} httperr.Response "code already_signed"
// @Failure 410 {object} httperr.Response "code expired or revoked"
// @Router /contract/sign/{token} [get]
func (h *SigningHandler) Show(c *gin.Context) {
	view, err := h.q.ValidateSession(c.Request.Context(), c.Param("token"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, resdto.FromSigningView(view, h.clock.Now()))
}

// @Summary Sign contract
// @Description Record the customer's signature and archive the signed copy
// @Tags signing
// @Accept json
// @Produce json
// @Param token path string true "Signing token"
// @Param request body reqdto.SignRequest true "Signature"
// @Success 200 {object} resdto.SignResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response "code not_found"
// @Failure 409 {object} httperr.Response "code already_signed"
// @Failure 410 {object} httperr.Response "code expired or revoked"
// @Failure 503 {object} httperr.Response
// @Router /contract/sign/{token} [post]
func (h *SigningHandler) Sign(c *gin.Context) {
	var req reqdto.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SignSession(c.Request.Context(), c.Param("token"), req.ToCommand(c.ClientIP()))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	if result.ArchiveErr != nil {
		// the signature stands; staff re-archive from the session list
		slog.Warn("Signed contract not archived",
			"session_id", result.Session.ID().String(), "error", result.ArchiveErr.Error())
	}
	c.JSON(http.StatusOK, resdto.FromSignResult(result))
}

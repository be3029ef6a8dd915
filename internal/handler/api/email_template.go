package api

import (
	"net/http"

	reqdto "dealer-contracts/internal/handler/dto/request"
	resdto "dealer-contracts/internal/handler/dto/response"
	"dealer-contracts/internal/handler/httperr"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EmailTemplateHandler struct {
	cmds commands.EmailTemplateCommands
	q    queries.EmailTemplateQueries
}

func NewEmailTemplateHandler(cmds commands.EmailTemplateCommands, q queries.EmailTemplateQueries) *EmailTemplateHandler {
	return &EmailTemplateHandler{cmds: cmds, q: q}
}

// @Summary List email templates
// @Tags email-templates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EmailTemplateResponse
// @Router /email-templates [get]
func (h *EmailTemplateHandler) List(c *gin.Context) {
	templates, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmailTemplates(templates))
}

// @Summary Get email template
// @Tags email-templates
// @Produce json
// @Security BearerAuth
// @Param key path string true "Template key"
// @Success 200 {object} resdto.EmailTemplateResponse
// @Failure 404 {object} httperr.Response
// @Router /email-templates/{key} [get]
func (h *EmailTemplateHandler) Get(c *gin.Context) {
	t, err := h.q.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmailTemplate(t))
}

// @Summary Create or replace email template
// @Description Subject and body are Go templates over the invitation data
// @Tags email-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Template key"
// @Param request body reqdto.UpsertEmailTemplateRequest true "Template"
// @Success 200 {object} resdto.EmailTemplateResponse
// @Failure 400 {object} httperr.Response
// @Router /email-templates/{key} [put]
func (h *EmailTemplateHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	t, err := h.cmds.Upsert(c.Request.Context(), req.ToCommand(c.Param("key")))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmailTemplate(t))
}

// @Summary Delete email template
// @Tags email-templates
// @Security BearerAuth
// @Param key path string true "Template key"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /email-templates/{key} [delete]
func (h *EmailTemplateHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("key")); err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

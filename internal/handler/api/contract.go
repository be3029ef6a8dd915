package api

import (
	"errors"
	"fmt"
	"net/http"

	"dealer-contracts/internal/domain/contract"
	reqdto "dealer-contracts/internal/handler/dto/request"
	resdto "dealer-contracts/internal/handler/dto/response"
	"dealer-contracts/internal/handler/httperr"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidContractType = errors.New("invalid contract type filter")

type ContractHandler struct {
	cmds commands.ContractCommands
	q    queries.ContractQueries
}

func NewContractHandler(cmds commands.ContractCommands, q queries.ContractQueries) *ContractHandler {
	return &ContractHandler{cmds: cmds, q: q}
}

// @Summary Preview pricing
// @Description Compute the price breakdown for a vehicle and contract options
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PricingRequest true "Pricing request"
// @Success 200 {object} resdto.PricingViewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /contracts/pricing [post]
func (h *ContractHandler) Pricing(c *gin.Context) {
	var req reqdto.PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.Pricing(c.Request.Context(), req.VehicleID, req.Options.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingView(view))
}

// @Summary Preview contract
// @Description Render the contract as text and HTML without archiving it
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewRequest true "Preview request"
// @Success 200 {object} resdto.PreviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /contracts/preview [post]
func (h *ContractHandler) Preview(c *gin.Context) {
	var req reqdto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.Preview(c.Request.Context(), req.VehicleID, req.Options.ToDomain(), req.IncludeSignatureLink)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreviewView(view))
}

// @Summary Save contract
// @Description Render, materialize and archive a contract for a vehicle
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicleId path string true "Vehicle ID"
// @Param request body reqdto.SaveContractRequest true "Save request"
// @Success 201 {object} resdto.ContractRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /vehicles/{vehicleId}/contracts [post]
func (h *ContractHandler) Save(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle id", nil)
		return
	}
	var req reqdto.SaveContractRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	record, err := h.cmds.Save(c.Request.Context(), req.ToCommand(vehicleID))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromContractRecord(record))
}

// @Summary List contracts
// @Description List archived contracts of a vehicle, newest first
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param vehicleId path string true "Vehicle ID"
// @Success 200 {array} resdto.ContractRecordResponse
// @Failure 400 {object} httperr.Response
// @Router /vehicles/{vehicleId}/contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle id", nil)
		return
	}
	records, err := h.q.ListAll(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractRecords(records))
}

// @Summary Latest contract
// @Description Get the most recent archived contract of a vehicle
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param vehicleId path string true "Vehicle ID"
// @Param type query string false "Contract type (b2b or b2c)"
// @Success 200 {object} resdto.ContractRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{vehicleId}/contracts/latest [get]
func (h *ContractHandler) Latest(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle id", nil)
		return
	}
	contractType := contract.ContractType(c.Query("type"))
	if contractType != "" && !contractType.IsValid() {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidContractType, "Invalid contract type", nil)
		return
	}
	record, err := h.q.GetLatest(c.Request.Context(), vehicleID, contractType)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractRecord(record))
}

// @Summary Delete contract
// @Description Remove an archived contract and its PDF
// @Tags contracts
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /contracts/{id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err = h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errs.Is(err, commands.ErrPartialDelete) {
			// metadata is gone, so a retry would 404; report what is left
			httperr.AbortWithCode(c, http.StatusServiceUnavailable, err, "partial_delete",
				"Contract removed but its PDF could not be deleted", nil)
			return
		}
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Download contract
// @Description Stream the archived PDF
// @Tags contracts
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /contracts/{id}/download [get]
func (h *ContractHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	artifact, err := h.q.Download(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

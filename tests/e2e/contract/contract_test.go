//go:build e2e

package contract_test

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"dealer-contracts/internal/domain/staff"
	"dealer-contracts/internal/handler/dto/response"
	"dealer-contracts/tests/common/builder"
	"dealer-contracts/tests/common/dbtest"
	"dealer-contracts/tests/common/httptest"
	"dealer-contracts/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	pricingURL         = "/api/contracts/pricing"
	vehicleContractURL = "/api/vehicles/%s/contracts"
	latestURL          = "/api/vehicles/%s/contracts/latest"
	contractURL        = "/api/contracts/%s"
	downloadURL        = "/api/contracts/%s/download"
)

type ContractSuite struct {
	e2e.SharedSuite
}

func TestContractSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ContractSuite))
}

// =============================================================================
// TestPricing
// =============================================================================

func (s *ContractSuite) TestPricing() {
	s.Run("Normal case: B2C breakdown with package and trade-in", func() {
		t := s.T()

		b := builder.NewContractBuilder().WithPackagePrice(750).WithTradeIn(2500)
		dbtest.CreateTestVehicle(t, s.DB, b.Vehicle)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, pricingURL, b.BuildPricingRequestDTO(), s.StaffToken(staff.RoleViewer))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.PricingViewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

		expected := response.PricingResponse{
			BasePrice:            20000,
			DeliveryPackagePrice: 750,
			PackageResolved:      true,
			TradeInPrice:         2500,
			FinalPrice:           18250,
		}
		opts := cmpopts.IgnoreFields(response.PricingResponse{}, "PriceExclVat", "VatAmount", "DownPaymentAmount", "DownPaymentPercentage")
		if diff := cmp.Diff(expected, res.Pricing, opts); diff != "" {
			t.Errorf("pricing mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: unknown vehicle is 404", func() {
		t := s.T()

		reqBody := builder.NewContractBuilder().BuildPricingRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, pricingURL, reqBody, s.StaffToken(staff.RoleViewer))
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "not_found")
	})

	s.Run("Auth test: no token is 401", func() {
		t := s.T()

		reqBody := builder.NewContractBuilder().BuildPricingRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, pricingURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestArchiveLifecycle
// =============================================================================

func (s *ContractSuite) TestArchiveLifecycle() {
	s.Run("Normal case: save, fetch latest, download and delete", func() {
		t := s.T()

		b := builder.NewContractBuilder()
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, b.Vehicle)
		sales := s.StaffToken(staff.RoleSales)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(vehicleContractURL, vehicleID), b.BuildSaveRequestDTO(), sales)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var saved response.ContractRecordResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &saved))
		require.True(t, strings.HasPrefix(saved.FileName, "koopovereenkomst-XX123Y-"), saved.FileName)
		require.Equal(t, "b2c", saved.ContractType)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "contract_archive", "vehicle_id = $1", vehicleID))

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(latestURL, vehicleID), nil, sales)
		require.Equal(t, http.StatusOK, lw.Code)
		var latest response.ContractRecordResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &latest))
		if diff := cmp.Diff(saved, latest); diff != "" {
			t.Errorf("latest mismatch (-want +got):\n%s", diff)
		}

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(downloadURL, saved.ID), nil, sales)
		require.Equal(t, http.StatusOK, dw.Code)
		require.Equal(t, "application/pdf", dw.Header().Get("Content-Type"))
		require.True(t, bytes.HasPrefix(dw.Body.Bytes(), []byte("%PDF-")))

		xw := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(contractURL, saved.ID), nil, sales)
		require.Equal(t, http.StatusNoContent, xw.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(latestURL, vehicleID), nil, sales)
		httptest.AssertErrorCode(t, gw, http.StatusNotFound, "not_found")
	})

	s.Run("Normal case: latest honours the type filter", func() {
		t := s.T()

		b := builder.NewContractBuilder()
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, b.Vehicle)
		sales := s.StaffToken(staff.RoleSales)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(vehicleContractURL, vehicleID), b.BuildSaveRequestDTO(), sales)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		bw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(latestURL, vehicleID)+"?type=b2b", nil, sales)
		httptest.AssertErrorCode(t, bw, http.StatusNotFound, "not_found")

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(latestURL, vehicleID)+"?type=b2c", nil, sales)
		require.Equal(t, http.StatusOK, cw.Code)
	})

	s.Run("Auth test: viewers cannot archive", func() {
		t := s.T()

		b := builder.NewContractBuilder()
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, b.Vehicle)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(vehicleContractURL, vehicleID),
			b.BuildSaveRequestDTO(), s.StaffToken(staff.RoleViewer))
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "contract_archive", ""))
	})
}

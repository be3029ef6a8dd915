//go:build e2e

package signing_test

import (
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

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	sessionsURL = "/api/vehicles/%s/signature-sessions"
	revokeURL   = "/api/signature-sessions/%s/revoke"
	signPrefix  = "/contract/sign/"
)

type SigningSuite struct {
	e2e.SharedSuite
}

func TestSigningSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SigningSuite))
}

// createSession seeds a vehicle and opens a session for it, returning the
// session and the path part of its signing link.
func (s *SigningSuite) createSession(t *testing.T, b *builder.SessionBuilder) (response.SessionResponse, string) {
	t.Helper()

	vehicleID := dbtest.CreateTestVehicle(t, s.DB, b.Contract.Vehicle)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionsURL, vehicleID),
		b.BuildCreateRequestDTO(), s.StaffToken(staff.RoleSales))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.SessionResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	i := strings.Index(created.SignLink, signPrefix)
	require.GreaterOrEqual(t, i, 0, created.SignLink)
	return created, created.SignLink[i:]
}

// =============================================================================
// TestSigningFlow
// =============================================================================

func (s *SigningSuite) TestSigningFlow() {
	s.Run("Normal case: customer opens the link, signs once and the copy is archived", func() {
		t := s.T()

		b := builder.NewSessionBuilder()
		created, signPath := s.createSession(t, b)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "kind = 'signature_requested'"))

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, signPath, nil, "")
		require.Equal(t, http.StatusOK, sw.Code, sw.Body.String())
		require.Equal(t, "no-store", sw.Header().Get("Cache-Control"))
		var page response.SigningPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &page))
		require.Equal(t, b.Contract.Vehicle.VIN, page.Vehicle.VIN)
		require.Equal(t, int64(20000), page.Pricing.FinalPrice)

		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, signPath, b.BuildSignRequestDTO(), "")
		require.Equal(t, http.StatusOK, pw.Code, pw.Body.String())
		var signed response.SignResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &signed))
		require.Equal(t, created.ID, signed.SessionID)
		require.Equal(t, "signed", signed.Status)
		require.NotEmpty(t, signed.ContractID)
		require.Empty(t, signed.Warning)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "contract_archive", "session_id = $1", uuid.MustParse(created.ID)))

		again := httptest.PerformRequest(t, s.Router, http.MethodPost, signPath, b.BuildSignRequestDTO(), "")
		httptest.AssertErrorCode(t, again, http.StatusConflict, "already_signed")

		reopen := httptest.PerformRequest(t, s.Router, http.MethodGet, signPath, nil, "")
		httptest.AssertErrorCode(t, reopen, http.StatusConflict, "already_signed")

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(sessionsURL, created.VehicleID), nil, s.StaffToken(staff.RoleViewer))
		require.Equal(t, http.StatusOK, lw.Code)
		var list []response.SessionListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &list))
		require.Len(t, list, 1)
		require.Equal(t, "signed", list[0].Status)
		require.Equal(t, "Jan de Vries", list[0].SignerName)
	})

	s.Run("Error case: expired link is gone", func() {
		t := s.T()

		created, signPath := s.createSession(t, builder.NewSessionBuilder())
		_, err := s.DB.Exec(t.Context(),
			"UPDATE signature_sessions SET created_at = now() - interval '8 days', expires_at = now() - interval '1 day' WHERE id = $1",
			uuid.MustParse(created.ID))
		require.NoError(t, err)

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, signPath, nil, "")
		httptest.AssertErrorCode(t, sw, http.StatusGone, "expired")

		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, signPath, builder.NewSessionBuilder().BuildSignRequestDTO(), "")
		httptest.AssertErrorCode(t, pw, http.StatusGone, "expired")
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "contract_archive", ""))
	})

	s.Run("Error case: unknown token is not found", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, signPrefix+"does-not-exist", nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "not_found")
	})
}

// =============================================================================
// TestIdempotentCreate
// =============================================================================

func (s *SigningSuite) TestIdempotentCreate() {
	s.Run("Normal case: retry with the same key replays the session", func() {
		t := s.T()

		b := builder.NewSessionBuilder()
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, b.Contract.Vehicle)
		token := s.StaffToken(staff.RoleSales)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		url := fmt.Sprintf(sessionsURL, vehicleID)

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, b.BuildCreateRequestDTO(), token, headers)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		var created response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, first.Body, &created))

		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, b.BuildCreateRequestDTO(), token, headers)
		require.Equal(t, http.StatusOK, second.Code, second.Body.String())
		require.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
		var replayed response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, second.Body, &replayed))

		require.Equal(t, created.ID, replayed.ID)
		require.Empty(t, replayed.SignLink)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "signature_sessions", "vehicle_id = $1", vehicleID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", ""))
	})
}

// =============================================================================
// TestRevoke
// =============================================================================

func (s *SigningSuite) TestRevoke() {
	s.Run("Normal case: revoked link can no longer be used", func() {
		t := s.T()

		created, signPath := s.createSession(t, builder.NewSessionBuilder())

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(revokeURL, created.ID), nil, s.StaffToken(staff.RoleSales))
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, signPath, nil, "")
		httptest.AssertErrorCode(t, sw, http.StatusGone, "revoked")

		again := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(revokeURL, created.ID), nil, s.StaffToken(staff.RoleSales))
		httptest.AssertErrorCode(t, again, http.StatusGone, "revoked")
	})

	s.Run("Auth test: viewers cannot revoke", func() {
		t := s.T()

		created, _ := s.createSession(t, builder.NewSessionBuilder())

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(revokeURL, created.ID), nil, s.StaffToken(staff.RoleViewer))
		require.Equal(t, http.StatusForbidden, rw.Code)
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/domain/staff"
	"dealer-contracts/internal/handler/api"
	reqdto "dealer-contracts/internal/handler/dto/request"
	resdto "dealer-contracts/internal/handler/dto/response"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/tests/common/httptest"
	"dealer-contracts/tests/common/testutil"
	commandsmock "dealer-contracts/tests/mock/commands"
	queriesmock "dealer-contracts/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmailTemplateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEmailTemplateCommands
	mockQueries  *queriesmock.MockEmailTemplateQueries
	handler      *api.EmailTemplateHandler
}

func (s *EmailTemplateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEmailTemplateCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEmailTemplateQueries(s.mockCtrl)
	s.handler = api.NewEmailTemplateHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(staff.RoleAdmin)
	s.router.GET("/email-templates", auth, s.handler.List)
	s.router.GET("/email-templates/:key", auth, s.handler.Get)
	s.router.PUT("/email-templates/:key", auth, s.handler.Upsert)
	s.router.DELETE("/email-templates/:key", auth, s.handler.Delete)
}

func (s *EmailTemplateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEmailTemplateHandlerSuite(t *testing.T) {
	suite.Run(t, new(EmailTemplateHandlerTestSuite))
}

func (s *EmailTemplateHandlerTestSuite) template(key string) *notification.Template {
	t, err := notification.NewTemplate(key, "Invitation", "Contract for {{.LicensePlate}}", "Sign here: {{.SignLink}}", testNow)
	s.Require().NoError(err)
	return t
}

func (s *EmailTemplateHandlerTestSuite) TestList() {
	s.Run("success: returns all templates", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*notification.Template{s.template("b2b_invite"), s.template("b2c_invite")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/email-templates", nil, "bearer-token")

		var body []resdto.EmailTemplateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("b2b_invite", body[0].Key)
		s.Equal(testNow.Unix(), body[0].UpdatedAt)
	})
}

func (s *EmailTemplateHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "b2c_invite").Return(s.template("b2c_invite"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/email-templates/b2c_invite", nil, "bearer-token")

		var body resdto.EmailTemplateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Sign here: {{.SignLink}}", body.Body)
	})

	s.Run("error: 404 for an unknown key", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "missing").
			Return(nil, marked("template not found", errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/email-templates/missing", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "not_found")
	})
}

func (s *EmailTemplateHandlerTestSuite) TestUpsert() {
	url := "/email-templates/b2c_invite"
	reqBody := reqdto.UpsertEmailTemplateRequest{
		Name:    "Invitation",
		Subject: "Contract for {{.LicensePlate}}",
		Body:    "Sign here: {{.SignLink}}",
	}

	s.Run("success: key comes from the path", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), commands.UpsertTemplateRequest{
			Key:     "b2c_invite",
			Name:    reqBody.Name,
			Subject: reqBody.Subject,
			Body:    reqBody.Body,
		}).Return(s.template("b2c_invite"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body resdto.EmailTemplateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("b2c_invite", body.Key)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseContract{
			{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: subject", mutate: testutil.Field("subject", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: body", mutate: testutil.Field("body", nil), expectCode: http.StatusBadRequest},
			{name: "subject too long", mutate: testutil.Field("subject", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: template that does not parse is a validation error", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(notification.ErrTemplateSyntax, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
	})
}

func (s *EmailTemplateHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "b2c_invite").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/email-templates/b2c_invite", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown key", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "missing").
			Return(marked("template not found", errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/email-templates/missing", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "not_found")
	})
}

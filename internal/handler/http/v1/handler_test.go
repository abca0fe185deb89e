package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fireduino/fireduino-api/internal/config"
	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/fireduino/fireduino-api/internal/service/mocks"
	"github.com/fireduino/fireduino-api/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type handlerMocks struct {
	departments    *mocks.MockDepartmentService
	establishments *mocks.MockEstablishmentService
	fireduinos     *mocks.MockFireduinoService
	users          *mocks.MockUserService
	incidents      *mocks.MockIncidentService
	audit          *mocks.MockAuditService
	sessions       *session.Manager
}

// newTestHandler wires a Handler with mocked services and a real session
// manager, on a test-mode Gin router.
func newTestHandler(t *testing.T) (*handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		departments:    mocks.NewMockDepartmentService(ctrl),
		establishments: mocks.NewMockEstablishmentService(ctrl),
		fireduinos:     mocks.NewMockFireduinoService(ctrl),
		users:          mocks.NewMockUserService(ctrl),
		incidents:      mocks.NewMockIncidentService(ctrl),
		audit:          mocks.NewMockAuditService(ctrl),
		sessions:       session.NewManager("test-secret", 10*time.Minute),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		MapsAPIKey:        "maps-key",
	}

	handler := NewHandler(
		m.departments,
		m.establishments,
		m.fireduinos,
		m.users,
		m.incidents,
		m.audit,
		m.sessions,
		logger,
		cfg,
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest performs an HTTP request against the test router
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func adminHeader(t *testing.T, m *handlerMocks) map[string]string {
	token, err := m.sessions.GenerateToken(0, 0, session.RoleAdmin)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func userHeader(t *testing.T, m *handlerMocks, userID, establishmentID int64) map[string]string {
	token, err := m.sessions.GenerateToken(userID, establishmentID, session.RoleUser)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAdminLogin_Success(t *testing.T) {
	m, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/admin/login", jsonBody(t, LoginRequest{
		Username: "admin",
		Password: "admin-pass",
	}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := m.sessions.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, claims.Role)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/admin/login", jsonBody(t, LoginRequest{
		Username: "admin",
		Password: "wrong",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken(t *testing.T) {
	m, router := newTestHandler(t)

	token, err := m.sessions.GenerateToken(5, 7, session.RoleUser)
	require.NoError(t, err)

	w := makeRequest(router, http.MethodPost, "/api/v1/validate", jsonBody(t, ValidateTokenRequest{Token: token}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)

	w = makeRequest(router, http.MethodPost, "/api/v1/validate", jsonBody(t, ValidateTokenRequest{Token: "garbage"}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
}

func TestCreateDepartment_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.departments.EXPECT().
		CreateDepartment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dept *models.FireDepartment) error {
			assert.Equal(t, "Central Station", dept.Name)
			dept.ID = 3
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/admin/department", jsonBody(t, DepartmentRequest{
		Name:      "Central Station",
		Phone:     "(028) 123-4567",
		Address:   "1 Main Ave",
		Latitude:  "14.6000",
		Longitude: "120.9800",
	}), adminHeader(t, m))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp DepartmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
}

func TestCreateDepartment_InvalidPhone(t *testing.T) {
	m, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/admin/department", jsonBody(t, DepartmentRequest{
		Name:      "Central Station",
		Phone:     "abc",
		Address:   "1 Main Ave",
		Latitude:  "14.6000",
		Longitude: "120.9800",
	}), adminHeader(t, m))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDepartment_RequiresAdmin(t *testing.T) {
	m, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/admin/department", jsonBody(t, DepartmentRequest{
		Name:      "Central Station",
		Phone:     "0281234567",
		Address:   "1 Main Ave",
		Latitude:  "14.6000",
		Longitude: "120.9800",
	}), userHeader(t, m, 5, 7))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateDepartment_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.departments.EXPECT().
		UpdateDepartment(gomock.Any(), gomock.Any()).
		Return(service.ErrNotFound)

	w := makeRequest(router, http.MethodPut, "/api/v1/admin/department/99", jsonBody(t, DepartmentRequest{
		Name:      "Central Station",
		Phone:     "0281234567",
		Address:   "1 Main Ave",
		Latitude:  "14.6000",
		Longitude: "120.9800",
	}), adminHeader(t, m))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEstablishments_MobileHidesInviteKey(t *testing.T) {
	m, router := newTestHandler(t)

	m.establishments.EXPECT().
		ListEstablishments(gomock.Any()).
		Return([]*models.Establishment{{
			ID:        7,
			Name:      "Harbor Mall",
			InviteKey: "a1b2c3d4",
		}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/establishments", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Harbor Mall")
	assert.NotContains(t, w.Body.String(), "a1b2c3d4")
}

func TestRegisterUser_InvalidInviteKey(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().
		Register(gomock.Any(), gomock.Any(), "hunter22", "wrong-key").
		Return(service.ErrInvalidInviteKey)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/user", jsonBody(t, RegisterUserRequest{
		FirstName:       "Ana",
		LastName:        "Cruz",
		Username:        "anacruz",
		Email:           "ana@example.com",
		Password:        "hunter22",
		EstablishmentID: 7,
		InviteKey:       "wrong-key",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.ErrAlreadyRegistered)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/user", jsonBody(t, RegisterUserRequest{
		FirstName:       "Ana",
		LastName:        "Cruz",
		Username:        "anacruz",
		Email:           "ana@example.com",
		Password:        "hunter22",
		EstablishmentID: 7,
		InviteKey:       "a1b2c3d4",
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMobileLogin_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().
		Login(gomock.Any(), "anacruz", "hunter22").
		Return(&models.User{ID: 5, EstablishmentID: 7, Username: "anacruz"}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/login", jsonBody(t, LoginRequest{
		Username: "anacruz",
		Password: "hunter22",
	}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := m.sessions.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.Equal(t, int64(7), claims.EstablishmentID)
	assert.Equal(t, session.RoleUser, claims.Role)
}

func TestMobileLogin_InvalidCredentials(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().
		Login(gomock.Any(), "anacruz", "wrong").
		Return(nil, service.ErrInvalidCredentials)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/login", jsonBody(t, LoginRequest{
		Username: "anacruz",
		Password: "wrong",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterFireduino_Duplicate(t *testing.T) {
	m, router := newTestHandler(t)

	m.fireduinos.EXPECT().
		RegisterFireduino(gomock.Any(), gomock.Any()).
		Return(service.ErrAlreadyRegistered)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/fireduino", jsonBody(t, RegisterFireduinoRequest{
		EstablishmentID: 7,
		MAC:             "AA:BB:CC:DD:EE:FF",
		Name:            "Lobby Sensor",
	}), userHeader(t, m, 5, 7))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListIncidents_RequiresAuth(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListIncidents_UsesSessionEstablishment(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), int64(7), 2, 10).
		Return([]*models.Incident{{ID: 42, FireduinoID: 11, DepartmentID: 3}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/incidents?page=2&page_size=10", nil, userHeader(t, m, 5, 7))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
}

func TestGetDashboard(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().
		GetDashboardStats(gomock.Any(), int64(7)).
		Return(4, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/dashboard", nil, userHeader(t, m, 5, 7))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"incident_count":4`)
}

func TestCreateReport_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.IncidentReport) error {
			assert.Equal(t, int64(42), report.IncidentID)
			assert.Equal(t, int64(5), report.UserID)
			assert.Equal(t, "Electrical fault in the kitchen", report.CauseText)
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/report", jsonBody(t, CreateReportRequest{
		IncidentID: 42,
		Report:     "Electrical fault in the kitchen",
	}), userHeader(t, m, 5, 7))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestEditReport_NotOwned(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().
		EditReport(gomock.Any(), int64(9), int64(5), "Updated cause").
		Return(service.ErrNotFound)

	w := makeRequest(router, http.MethodPut, "/api/v1/mobile/report", jsonBody(t, EditReportRequest{
		ReportID: 9,
		Report:   "Updated cause",
	}), userHeader(t, m, 5, 7))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateEmail(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().IsEmailTaken(gomock.Any(), "ana@example.com").Return(true, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/validateEmail", jsonBody(t, ValidateEmailRequest{
		Email: "ana@example.com",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":false`)
}

func TestGenerateInviteKey(t *testing.T) {
	m, router := newTestHandler(t)

	m.establishments.EXPECT().GenerateInviteKey().Return("deadbeef", nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/invitekey", nil, adminHeader(t, m))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deadbeef")
}

func TestGetConfig(t *testing.T) {
	m, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/config", nil, adminHeader(t, m))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "maps-key")
}

func TestListSMSHistory(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().
		ListSMSHistory(gomock.Any(), int64(7)).
		Return([]*models.SMSRecord{{ID: 21, DepartmentID: 3}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/sms", nil, userHeader(t, m, 5, 7))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"department_id":3`)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestListDepartments_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)

	m.departments.EXPECT().
		ListDepartments(gomock.Any()).
		Return(nil, errors.New("db down"))

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/departments", nil, adminHeader(t, m))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListDepartmentsMobile_RequiresAuth(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/departments", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListDepartmentsMobile_FiltersAndSortsByDistance(t *testing.T) {
	m, router := newTestHandler(t)

	m.departments.EXPECT().
		ListDepartments(gomock.Any()).
		Return([]*models.FireDepartment{
			{ID: 1, Name: "Harbor Fire Station", Address: "Pier 4", Latitude: "14.6760", Longitude: "121.0437"},
			{ID: 2, Name: "Central Fire Station", Address: "Main St", Latitude: "14.5995", Longitude: "120.9842"},
			{ID: 3, Name: "Rescue Volunteers", Address: "Hill Rd", Latitude: "14.6100", Longitude: "121.0000"},
		}, nil)

	url := "/api/v1/mobile/departments?search=station&location=14.5995,120.9842"
	w := makeRequest(router, http.MethodGet, url, nil, userHeader(t, m, 5, 7))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []*DepartmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	// The origin sits on Central, so it sorts ahead of Harbor; Rescue
	// Volunteers fails the search filter.
	assert.Equal(t, int64(2), resp[0].ID)
	assert.Equal(t, int64(1), resp[1].ID)
}

func TestListDepartmentsMobile_IgnoresMalformedLocation(t *testing.T) {
	m, router := newTestHandler(t)

	m.departments.EXPECT().
		ListDepartments(gomock.Any()).
		Return([]*models.FireDepartment{
			{ID: 1, Name: "Harbor Fire Station", Latitude: "14.6760", Longitude: "121.0437"},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/departments?location=somewhere", nil, userHeader(t, m, 5, 7))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []*DepartmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestVerifyInviteKey(t *testing.T) {
	m, router := newTestHandler(t)

	m.establishments.EXPECT().
		VerifyInviteKey(gomock.Any(), int64(7), "a1b2c3d4").
		Return(true, nil)
	m.establishments.EXPECT().
		VerifyInviteKey(gomock.Any(), int64(7), "deadbeef").
		Return(false, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/verify", jsonBody(t, VerifyInviteKeyRequest{
		EstablishmentID: 7,
		InviteKey:       "a1b2c3d4",
	}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid": true}`, w.Body.String())

	w = makeRequest(router, http.MethodPost, "/api/v1/mobile/verify", jsonBody(t, VerifyInviteKeyRequest{
		EstablishmentID: 7,
		InviteKey:       "deadbeef",
	}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid": false}`, w.Body.String())
}

func TestVerifyInviteKey_UnknownEstablishment(t *testing.T) {
	m, router := newTestHandler(t)

	m.establishments.EXPECT().
		VerifyInviteKey(gomock.Any(), int64(99), "a1b2c3d4").
		Return(false, service.ErrNotFound)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/verify", jsonBody(t, VerifyInviteKeyRequest{
		EstablishmentID: 99,
		InviteKey:       "a1b2c3d4",
	}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordDeviceAccess_UsesSessionUser(t *testing.T) {
	m, router := newTestHandler(t)

	m.audit.EXPECT().
		RecordDeviceAccess(gomock.Any(), int64(5), int64(11)).
		Return(nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/access", jsonBody(t, DeviceAccessRequest{
		FireduinoID: 11,
	}), userHeader(t, m, 5, 7))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRecordDeviceAccess_UnknownDevice(t *testing.T) {
	m, router := newTestHandler(t)

	m.audit.EXPECT().
		RecordDeviceAccess(gomock.Any(), int64(5), int64(99)).
		Return(service.ErrNotFound)

	w := makeRequest(router, http.MethodPost, "/api/v1/mobile/access", jsonBody(t, DeviceAccessRequest{
		FireduinoID: 99,
	}), userHeader(t, m, 5, 7))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAccessLogs_UsesSessionEstablishment(t *testing.T) {
	m, router := newTestHandler(t)

	m.audit.EXPECT().
		ListAccessLogs(gomock.Any(), int64(7)).
		Return([]*models.AccessLog{{ID: 3, UserID: 5, FireduinoID: 11}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/accessLogs", nil, userHeader(t, m, 5, 7))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []*AccessLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(11), resp[0].FireduinoID)
}

func TestListLoginHistory(t *testing.T) {
	m, router := newTestHandler(t)

	m.audit.EXPECT().
		ListLoginHistory(gomock.Any(), int64(7)).
		Return([]*models.LoginRecord{{ID: 1, UserID: 5}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/loginHistory", nil, userHeader(t, m, 5, 7))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []*LoginRecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(5), resp[0].UserID)
}

func TestListReportEdits(t *testing.T) {
	m, router := newTestHandler(t)

	m.audit.EXPECT().
		ListReportEdits(gomock.Any(), int64(7)).
		Return([]*models.ReportEdit{{ID: 2, ReportID: 9, UserID: 5, PreviousText: "faulty wiring"}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/editHistory", nil, userHeader(t, m, 5, 7))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []*ReportEditResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "faulty wiring", resp[0].PreviousText)
}

func TestListReports_UsesSessionEstablishment(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().
		ListReports(gomock.Any(), int64(7)).
		Return([]*models.IncidentReport{{ID: 9, IncidentID: 42, UserID: 5, CauseText: "faulty wiring"}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/mobile/reports", nil, userHeader(t, m, 5, 7))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []*ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(42), resp[0].IncidentID)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fireduino/fireduino-api/internal/alert"
	alert_mocks "github.com/fireduino/fireduino-api/internal/alert/mocks"
	"github.com/fireduino/fireduino-api/internal/config"
	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/routing"
	"github.com/fireduino/fireduino-api/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatchMocks struct {
	fireduinos     *mocks.MockFireduinoRepository
	establishments *mocks.MockEstablishmentRepository
	departments    *mocks.MockDepartmentRepository
	incidents      *mocks.MockIncidentRepository
	resolver       *mocks.MockNearestResolver
	publisher      *alert_mocks.MockPublisher
}

// newTestDispatchService wires the dispatch pipeline with mocks for every
// collaborator.
func newTestDispatchService(t *testing.T) (DispatchService, *dispatchMocks) {
	ctrl := gomock.NewController(t)
	m := &dispatchMocks{
		fireduinos:     mocks.NewMockFireduinoRepository(ctrl),
		establishments: mocks.NewMockEstablishmentRepository(ctrl),
		departments:    mocks.NewMockDepartmentRepository(ctrl),
		incidents:      mocks.NewMockIncidentRepository(ctrl),
		resolver:       mocks.NewMockNearestResolver(ctrl),
		publisher:      alert_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	cfg := &config.Config{
		AlertTemplate: config.DefaultAlertTemplate,
		CountryCode:   "+63",
	}

	svc := NewDispatchService(
		m.fireduinos,
		m.establishments,
		m.departments,
		m.incidents,
		m.resolver,
		m.publisher,
		logger,
		cfg,
	)
	return svc, m
}

func testEstablishment() *models.Establishment {
	return &models.Establishment{
		ID:        7,
		Name:      "Harbor Mall",
		Phone:     "09171234567",
		Address:   "12 Pier St",
		Latitude:  "14.5995",
		Longitude: "120.9842",
		InviteKey: "a1b2c3d4",
	}
}

func testDepartment() *models.FireDepartment {
	return &models.FireDepartment{
		ID:        3,
		Name:      "Central Station",
		Phone:     "0281234567",
		Address:   "1 Main Ave",
		Latitude:  "14.6000",
		Longitude: "120.9800",
	}
}

func TestDispatchFireEvent_Success(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()

	device := &models.Fireduino{ID: 11, EstablishmentID: 7, MAC: "AA:BB:CC:DD:EE:FF"}
	estb := testEstablishment()
	dept := testDepartment()

	m.fireduinos.EXPECT().GetByMAC(ctx, int64(7), device.MAC).Return(device, nil)
	m.establishments.EXPECT().GetByID(ctx, int64(7)).Return(estb, nil)
	m.departments.EXPECT().List(ctx).Return([]*models.FireDepartment{dept}, nil)
	m.resolver.EXPECT().
		Nearest(ctx, gomock.Any(), []*models.FireDepartment{dept}).
		Return(dept, nil)

	m.incidents.EXPECT().
		CreateSMSRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.SMSRecord) error {
			assert.Equal(t, dept.ID, record.DepartmentID)
			record.ID = 21
			return nil
		})

	var published alert.Job
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job alert.Job) error {
			published = job
			return nil
		})

	m.incidents.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Equal(t, device.ID, incident.FireduinoID)
			assert.Equal(t, dept.ID, incident.DepartmentID)
			require.NotNil(t, incident.SMSRecordID)
			assert.Equal(t, int64(21), *incident.SMSRecordID)
			incident.ID = 42
			return nil
		})

	incidentID, err := svc.DispatchFireEvent(ctx, 7, device.MAC)

	require.NoError(t, err)
	assert.Equal(t, int64(42), incidentID)
	assert.Contains(t, published.Body, "Harbor Mall")
	assert.Contains(t, published.Body, "14.5995,120.9842")
	assert.Equal(t, "+63281234567", published.To)
	require.NotNil(t, published.SMSRecordID)
	assert.Equal(t, int64(21), *published.SMSRecordID)
}

func TestDispatchFireEvent_UnknownDevice(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()

	m.fireduinos.EXPECT().
		GetByMAC(ctx, int64(7), "DE:AD:BE:EF:00:01").
		Return(nil, ErrNotFound)

	incidentID, err := svc.DispatchFireEvent(ctx, 7, "DE:AD:BE:EF:00:01")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.Zero(t, incidentID)
}

func TestDispatchFireEvent_ResolverError(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()

	device := &models.Fireduino{ID: 11, EstablishmentID: 7, MAC: "AA:BB:CC:DD:EE:FF"}

	m.fireduinos.EXPECT().GetByMAC(ctx, int64(7), device.MAC).Return(device, nil)
	m.establishments.EXPECT().GetByID(ctx, int64(7)).Return(testEstablishment(), nil)
	m.departments.EXPECT().List(ctx).Return([]*models.FireDepartment{}, nil)
	m.resolver.EXPECT().
		Nearest(ctx, gomock.Any(), gomock.Any()).
		Return(nil, routing.ErrNoCandidates)

	incidentID, err := svc.DispatchFireEvent(ctx, 7, device.MAC)

	require.Error(t, err)
	assert.ErrorIs(t, err, routing.ErrNoCandidates)
	assert.Zero(t, incidentID)
}

func TestDispatchFireEvent_PublishFailureStillCreatesIncident(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()

	device := &models.Fireduino{ID: 11, EstablishmentID: 7, MAC: "AA:BB:CC:DD:EE:FF"}
	dept := testDepartment()

	m.fireduinos.EXPECT().GetByMAC(ctx, int64(7), device.MAC).Return(device, nil)
	m.establishments.EXPECT().GetByID(ctx, int64(7)).Return(testEstablishment(), nil)
	m.departments.EXPECT().List(ctx).Return([]*models.FireDepartment{dept}, nil)
	m.resolver.EXPECT().Nearest(ctx, gomock.Any(), gomock.Any()).Return(dept, nil)
	m.incidents.EXPECT().
		CreateSMSRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.SMSRecord) error {
			record.ID = 21
			return nil
		})
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("queue down"))
	m.incidents.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			incident.ID = 42
			return nil
		})

	incidentID, err := svc.DispatchFireEvent(ctx, 7, device.MAC)

	require.NoError(t, err)
	assert.Equal(t, int64(42), incidentID)
}

func TestDispatchFireEvent_SMSRecordFailureLeavesNilReference(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()

	device := &models.Fireduino{ID: 11, EstablishmentID: 7, MAC: "AA:BB:CC:DD:EE:FF"}
	dept := testDepartment()

	m.fireduinos.EXPECT().GetByMAC(ctx, int64(7), device.MAC).Return(device, nil)
	m.establishments.EXPECT().GetByID(ctx, int64(7)).Return(testEstablishment(), nil)
	m.departments.EXPECT().List(ctx).Return([]*models.FireDepartment{dept}, nil)
	m.resolver.EXPECT().Nearest(ctx, gomock.Any(), gomock.Any()).Return(dept, nil)
	m.incidents.EXPECT().
		CreateSMSRecord(ctx, gomock.Any()).
		Return(errors.New("insert failed"))
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job alert.Job) error {
			assert.Nil(t, job.SMSRecordID)
			return nil
		})
	m.incidents.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Nil(t, incident.SMSRecordID)
			incident.ID = 42
			return nil
		})

	incidentID, err := svc.DispatchFireEvent(ctx, 7, device.MAC)

	require.NoError(t, err)
	assert.Equal(t, int64(42), incidentID)
}

func TestDispatchFireEvent_IncidentInsertFailure(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()

	device := &models.Fireduino{ID: 11, EstablishmentID: 7, MAC: "AA:BB:CC:DD:EE:FF"}
	dept := testDepartment()

	m.fireduinos.EXPECT().GetByMAC(ctx, int64(7), device.MAC).Return(device, nil)
	m.establishments.EXPECT().GetByID(ctx, int64(7)).Return(testEstablishment(), nil)
	m.departments.EXPECT().List(ctx).Return([]*models.FireDepartment{dept}, nil)
	m.resolver.EXPECT().Nearest(ctx, gomock.Any(), gomock.Any()).Return(dept, nil)
	m.incidents.EXPECT().
		CreateSMSRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.SMSRecord) error {
			record.ID = 21
			return nil
		})
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	m.incidents.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		Return(errors.New("insert failed"))

	incidentID, err := svc.DispatchFireEvent(ctx, 7, device.MAC)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistenceFailed)
	assert.Zero(t, incidentID)
}

func TestDispatchFireEvent_CustomTemplate(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()

	device := &models.Fireduino{ID: 11, EstablishmentID: 7, MAC: "AA:BB:CC:DD:EE:FF"}
	estb := testEstablishment()
	estb.AlertTemplate = "Respond to {establishment}, {address}"
	dept := testDepartment()

	m.fireduinos.EXPECT().GetByMAC(ctx, int64(7), device.MAC).Return(device, nil)
	m.establishments.EXPECT().GetByID(ctx, int64(7)).Return(estb, nil)
	m.departments.EXPECT().List(ctx).Return([]*models.FireDepartment{dept}, nil)
	m.resolver.EXPECT().Nearest(ctx, gomock.Any(), gomock.Any()).Return(dept, nil)
	m.incidents.EXPECT().
		CreateSMSRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.SMSRecord) error {
			record.ID = 21
			return nil
		})
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job alert.Job) error {
			assert.Equal(t, "Respond to Harbor Mall, 12 Pier St", job.Body)
			return nil
		})
	m.incidents.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			incident.ID = 42
			return nil
		})

	_, err := svc.DispatchFireEvent(ctx, 7, device.MAC)
	require.NoError(t, err)
}

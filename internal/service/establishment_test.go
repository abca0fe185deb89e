package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEstablishmentService(t *testing.T) (EstablishmentService, *mocks.MockEstablishmentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEstablishmentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewEstablishmentService(repoMock, logger), repoMock
}

func TestVerifyInviteKey_Match(t *testing.T) {
	svc, repoMock := newTestEstablishmentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&models.Establishment{ID: 7, InviteKey: "a1b2c3d4"}, nil).
		Times(2)

	valid, err := svc.VerifyInviteKey(ctx, 7, "a1b2c3d4")
	require.NoError(t, err)
	assert.True(t, valid)

	// Comparison is exact, same as registration.
	valid, err = svc.VerifyInviteKey(ctx, 7, "A1B2C3D4")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyInviteKey_UnknownEstablishment(t *testing.T) {
	svc, repoMock := newTestEstablishmentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		GetByID(ctx, int64(99)).
		Return(nil, fmt.Errorf("establishment 99: %w", ErrNotFound))

	_, err := svc.VerifyInviteKey(ctx, 99, "a1b2c3d4")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) Handle(ctx context.Context, cmd commands.ArchiveSettledOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func TestArchiveSettledOrdersJob_RunOnce(t *testing.T) {
	now := time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)
	cfg := ArchiveConfig{Spec: "0 0 3 * * *", Age: 48 * time.Hour, Batch: 50}

	t.Run("archives settled requisitions older than the age", func(t *testing.T) {
		archiver := &MockArchiver{}
		archiver.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ArchiveSettledOrdersCommand) bool {
			return cmd.Before().Equal(now.Add(-48*time.Hour)) && cmd.Limit() == 50
		})).Return(3, nil)
		job := NewArchiveSettledOrdersJob(archiver, cfg, zap.NewNop())
		job.now = func() time.Time { return now }

		assert.Equal(t, 3, job.RunOnce(context.Background()))
		archiver.AssertExpectations(t)
	})

	t.Run("partial failure still reports archived count", func(t *testing.T) {
		archiver := &MockArchiver{}
		archiver.On("Handle", mock.Anything, mock.Anything).Return(2, errors.New("one order failed"))
		job := NewArchiveSettledOrdersJob(archiver, cfg, zap.NewNop())

		assert.Equal(t, 2, job.RunOnce(context.Background()))
	})

	t.Run("invalid batch never calls the handler", func(t *testing.T) {
		archiver := &MockArchiver{}
		job := NewArchiveSettledOrdersJob(archiver, ArchiveConfig{Spec: cfg.Spec, Age: cfg.Age}, zap.NewNop())

		assert.Zero(t, job.RunOnce(context.Background()))
		archiver.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestArchiveSettledOrdersJob_StartRejectsBadSpec(t *testing.T) {
	job := NewArchiveSettledOrdersJob(&MockArchiver{}, ArchiveConfig{Spec: "every night", Batch: 1}, zap.NewNop())

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	manager := NewJobManager(&MockArchiver{}, ArchiveConfig{Spec: "0 0 3 * * *", Age: time.Hour, Batch: 10}, zap.NewNop())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

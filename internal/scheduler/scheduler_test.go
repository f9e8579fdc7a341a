package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ykvlv/coach-bot/internal/domain"
)

func TestScheduler_RunNow(t *testing.T) {
	f := newFixture(t, newRecordingSender(), &promptCompleter{})
	ctx := context.Background()
	require.NoError(t, f.repo.UpsertGoal(ctx, 1, "спорт", domain.PersonalGrowthCategory))

	s := New(f.jobs, zap.NewNop(), domain.Clock(8*60), domain.Clock(20*60))

	out, err := s.RunNow(ctx, JobMorning)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = s.RunNow(ctx, JobEvening)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = s.RunNow(ctx, "noon")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestScheduler_StartStop(t *testing.T) {
	f := newFixture(t, newRecordingSender(), &promptCompleter{})
	s := New(f.jobs, zap.NewNop(), domain.Clock(8*60), domain.Clock(20*60))

	require.NoError(t, s.Start(context.Background()))
	assert.Error(t, s.Start(context.Background()))
	assert.Len(t, s.cron.Entries(), 2)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
}

func TestScheduler_FiresInJobsZone(t *testing.T) {
	f := newFixture(t, newRecordingSender(), &promptCompleter{})
	s := New(f.jobs, zap.NewNop(), domain.Clock(8*60), domain.Clock(20*60))
	assert.Equal(t, "Europe/Moscow", s.cron.Location().String())
	assert.Equal(t, f.jobs.Location(), s.cron.Location())

	jobs := NewJobs(f.repo, f.ai, f.sender, f.state, nil, zap.NewNop())
	assert.Equal(t, time.UTC, jobs.Location())
	assert.Equal(t, time.UTC, New(jobs, zap.NewNop(), 0, 0).cron.Location())
}

func TestCronLogger_UsesZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newCronLogger(zap.New(core))

	l.Info("skip")
	l.Info("wake", "now", "08:00")
	l.Error(errors.New("boom"), "panic", "job", "morning")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "cron", entries[0].LoggerName)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
	assert.Equal(t, "morning", entries[2].ContextMap()["job"])
}

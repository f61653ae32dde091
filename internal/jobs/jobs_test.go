package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/portfolio-api/internal/session"
	"go.uber.org/zap"
)

func TestScheduler_AddAndRemove(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("five-field", "*/10 * * * *", func() {}))
	require.NoError(t, s.AddJob("six-field", "0 15 * * * *", func() {}))
	require.NoError(t, s.AddJob("descriptor", "@every 1h", func() {}))
	assert.ElementsMatch(t, []string{"five-field", "six-field", "descriptor"}, s.GetJobNames())

	assert.Error(t, s.AddJob("five-field", "@hourly", func() {}), "names are unique")
	assert.Error(t, s.AddJob("broken", "not a cron", func() {}))

	require.NoError(t, s.RemoveJob("six-field"))
	assert.Error(t, s.RemoveJob("six-field"))
	assert.Len(t, s.GetJobNames(), 2)
}

func TestScheduler_RunsJobs(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddJob("tick", "@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}))

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestSessionPurgeJob(t *testing.T) {
	store := session.NewMemoryStore(time.Millisecond)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &session.Session{ID: uuid.New()}))
	require.NoError(t, store.Save(ctx, &session.Session{ID: uuid.New()}))
	time.Sleep(5 * time.Millisecond)

	job := NewSessionPurgeJob(store, zap.NewNop())
	assert.Equal(t, 2, job.Run())
	assert.Zero(t, store.Len())
	assert.Zero(t, job.Run())

	s := NewScheduler(zap.NewNop())
	require.NoError(t, job.Register(s, "*/10 * * * *"))
	assert.Equal(t, []string{SessionPurgeJobName}, s.GetJobNames())
}

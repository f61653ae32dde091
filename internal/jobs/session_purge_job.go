package jobs

import (
	"go.uber.org/zap"
)

// SessionPurgeJobName is the name of the expired session purge job
const SessionPurgeJobName = "session_purge"

// SessionPurger drops expired simulator sessions. Only the in-memory store
// needs it; Redis expires keys by itself.
type SessionPurger interface {
	Purge() int
	Len() int
}

// SessionPurgeJob frees the memory held by abandoned simulator sessions
type SessionPurgeJob struct {
	store  SessionPurger
	logger *zap.Logger
}

func NewSessionPurgeJob(store SessionPurger, logger *zap.Logger) *SessionPurgeJob {
	return &SessionPurgeJob{store: store, logger: logger}
}

// Run purges expired sessions and returns how many were removed
func (j *SessionPurgeJob) Run() int {
	removed := j.store.Purge()
	if removed > 0 {
		j.logger.Info("purged expired simulator sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", j.store.Len()))
	}
	return removed
}

// Register adds the job to the scheduler
func (j *SessionPurgeJob) Register(s *Scheduler, cronExpr string) error {
	return s.AddJob(SessionPurgeJobName, cronExpr, func() { j.Run() })
}

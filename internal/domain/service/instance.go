package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/domain/contract"
)

type Instance struct {
	Session   *sessionManager
	Vote      *voteService
	Scheduler *weeklyScheduler
	Status    *memberStatusEngine
	Cleaner   *duplicateSessionCleaner
}

func NewInstance(dm contract.DataManager, notifier contract.Notifier, loc *time.Location, logger *zap.Logger) *Instance {
	sessions := newSessionManager(dm, loc, logger)

	return &Instance{
		Session:   sessions,
		Vote:      newVote(dm, sessions, logger),
		Scheduler: newWeeklyScheduler(dm, notifier, loc, logger),
		Status:    newMemberStatusEngine(dm, notifier, loc, logger),
		Cleaner:   newDuplicateSessionCleaner(dm, loc, logger),
	}
}

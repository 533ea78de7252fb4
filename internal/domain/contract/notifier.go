package contract

import (
	"context"

	"github.com/jungshell/fccg-core/internal/domain/entity"
)

//go:generate mockgen -source=notifier.go -destination=../../../mocks/notifier_mock.go -package=mocks

// Notifier delivers club notifications over an external channel. Calls are
// fire-and-forget from the caller's point of view: failures are logged and
// never retried by this core.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, member *entity.Member, newStatus, reason string) error
	NotifyWeeklyDigest(ctx context.Context, weekStart string, games []*entity.Game) error
}

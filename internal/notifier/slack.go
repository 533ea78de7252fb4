package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

// SlackNotifier posts club notifications to the admin channel. Delivery is
// best-effort: callers log failures and never retry.
type SlackNotifier struct {
	client    *slack.Client
	channelID string
	logger    *zap.Logger
}

func NewSlack(client *slack.Client, channelID string, logger *zap.Logger) contract.Notifier {
	return &SlackNotifier{
		client:    client,
		channelID: channelID,
		logger:    logger,
	}
}

func (n *SlackNotifier) NotifyStatusChange(ctx context.Context, member *entity.Member, newStatus, reason string) error {
	message := fmt.Sprintf("⚠️ *Member status changed*\n\n%s is now *%s*\nReason: %s",
		member.Name, newStatus, reason)

	_, _, err := n.client.PostMessageContext(ctx,
		n.channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send status change message: %w", err)
	}

	n.logger.Info("status change notification sent",
		zap.Int64("memberID", member.ID),
		zap.String("status", newStatus))
	return nil
}

func (n *SlackNotifier) NotifyWeeklyDigest(ctx context.Context, weekStart string, games []*entity.Game) error {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 *Games for the week of %s*\n", weekStart)
	if len(games) == 0 {
		b.WriteString("\nNo games were generated from the vote.")
	}
	for _, game := range games {
		fmt.Fprintf(&b, "\n• %s — %d player(s) in", game.Date.Format("Mon 2006-01-02"), len(game.SelectedMembers))
	}

	_, _, err := n.client.PostMessageContext(ctx,
		n.channelID,
		slack.MsgOptionText(b.String(), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send weekly digest: %w", err)
	}

	return nil
}

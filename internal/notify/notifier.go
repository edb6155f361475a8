// Package notify publishes cycle summaries to a Discord channel and
// keeps the clan-member role in sync with the roster.
package notify

import (
	"context"

	"github.com/clanwatch/clanwatch/internal/roster"
)

// Notifier is the external side-effect surface driven by the cycle
// orchestrator. Every method is safe to call repeatedly: granting a
// marker an entity already has, or revoking one it lacks, is a no-op.
type Notifier interface {
	// PublishChangeSummary announces the cycle's score changes.
	PublishChangeSummary(ctx context.Context, changes []roster.ChangeEvent) error

	// PublishInitialSnapshot announces every observed member on the
	// very first recorded cycle.
	PublishInitialSnapshot(ctx context.Context, observations []roster.Observation) error

	// GrantMarker tags the named member with the membership role.
	GrantMarker(ctx context.Context, name string) error

	// RevokeMarker removes the membership role from the named member.
	RevokeMarker(ctx context.Context, name string) error
}

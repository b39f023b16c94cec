package port

import (
	"context"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// EventPort records a domain event for later delivery. Called inside a transaction
// the event is committed together with the state change that produced it.
type EventPort interface {
	Append(ctx context.Context, event domain.Event) error
}

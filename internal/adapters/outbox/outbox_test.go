package outbox_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rafaelleal24/smartretail/internal/adapters/outbox"
	outboxmock "github.com/rafaelleal24/smartretail/internal/adapters/outbox/mock"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventStore_Append(t *testing.T) {
	t.Run("marshals event into an entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxmock.NewMockRepository(ctrl)
		store := outbox.NewEventStore(repo)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry outbox.Entry) error {
				assert.Equal(t, "customer.signed_up", entry.EventName)
				assert.Equal(t, "customer", entry.EntityName)
				assert.False(t, entry.CreatedAt.IsZero())

				var payload map[string]any
				require.NoError(t, json.Unmarshal(entry.EventData, &payload))
				assert.Equal(t, float64(4), payload["customer_id"])
				assert.Equal(t, "ada@example.com", payload["email"])
				return nil
			})

		err := store.Append(context.Background(), domain.NewCustomerSignedUpEvent(domain.Customer{ID: 4, Name: "Ada", Email: "ada@example.com"}))
		require.NoError(t, err)
	})

	t.Run("insert error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxmock.NewMockRepository(ctrl)
		store := outbox.NewEventStore(repo)
		boom := errors.New("insert failed")

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(boom)

		err := store.Append(context.Background(), &domain.CustomerLoggedInEvent{CustomerID: 1})
		assert.ErrorIs(t, err, boom)
	})
}

package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every query path must carry a deadline so a stalled backend fails the
// request instead of hanging it. A canceled context stands in for an
// expired one: the driver must abort the call either way.
func TestQueriesHonorContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.userByEmail(ctx, storage.db, "whoever@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = storage.userById(ctx, storage.db, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = storage.places(ctx, storage.db, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = storage.place(ctx, storage.db, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = storage.bookingsByUser(ctx, storage.db, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

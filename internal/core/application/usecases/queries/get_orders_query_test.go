package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryActor(t *testing.T, role account.Role) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestParseStatusFilter(t *testing.T) {
	for _, valid := range []string{"", "paid", "unpaid", "delivered", "pending"} {
		filter, err := queries.ParseStatusFilter(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, queries.StatusFilter(valid), filter)
	}

	_, err := queries.ParseStatusFilter("shipped")
	assert.Error(t, err)
}

func TestNewGetOrdersQuery(t *testing.T) {
	admin := newQueryActor(t, account.RoleAdmin)

	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery(admin, 2, queries.FilterUnpaid)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, 2, query.Page())
		assert.Equal(t, queries.FilterUnpaid, query.Filter())
	})

	t.Run("should reject non-positive page", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(admin, 0, queries.FilterNone)
		assert.ErrorIs(t, err, queries.ErrPageIsInvalid)
	})

	t.Run("should reject unknown filter", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(admin, 1, queries.StatusFilter("shipped"))
		assert.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOrdersQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
	})
}

func TestNewGetMyOrdersQuery(t *testing.T) {
	user := newQueryActor(t, account.RoleUser)

	query, err := queries.NewGetMyOrdersQuery(user, 1)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 1, query.Page())

	_, err = queries.NewGetMyOrdersQuery(user, -1)
	assert.ErrorIs(t, err, queries.ErrPageIsInvalid)

	var zero queries.GetMyOrdersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetMyOrdersQueryIsNotConstructed)
}

func TestNewGetOrderQuery(t *testing.T) {
	user := newQueryActor(t, account.RoleUser)

	query, err := queries.NewGetOrderQuery(user, kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetOrderQuery(user, kernel.UUID{})
	assert.Error(t, err)

	var zero queries.GetOrderQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrderStatsQuery(t *testing.T) {
	admin := newQueryActor(t, account.RoleAdmin)

	query, err := queries.NewGetOrderStatsQuery(admin)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	var zero queries.GetOrderStatsQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetOrderStatsQueryIsNotConstructed)
}

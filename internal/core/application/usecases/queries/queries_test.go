package queries_test

import (
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrdersByStatusQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery("PendingApproval")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.PendingApproval, query.Status())
}

func TestNewGetOrdersByStatusQuery_UnrecognizedStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery("Shipped")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrdersByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}

func TestNewGetOverdueDeliveriesQuery_Valid(t *testing.T) {
	query := queries.NewGetOverdueDeliveriesQuery()
	require.NoError(t, query.Validate())
}

func TestGetOverdueDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOverdueDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOverdueDeliveriesQueryIsNotConstructed)
}

func TestNewGetOpenDiscrepancyQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOpenDiscrepancyQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetOpenDiscrepancyQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOpenDiscrepancyQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOpenDiscrepancyQueryIsNotConstructed)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/pkg/apperror"
)

func TestAddSupplier(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	before, err := env.client.ListSuppliers(ctx)
	require.NoError(t, err)

	supplier, err := env.client.AddSupplier(ctx, testActor, entity.Supplier{
		Company:     "Atlas Components",
		ContactName: "Nadia Berrada",
		Email:       "contact@atlascomponents.ma",
		Category:    "Components",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, supplier.ID)
	assert.Equal(t, "Atlas Components", supplier.Company)

	after, err := env.client.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	logs, err := env.audit.List(ctx, AuditFilter{Search: "Atlas Components"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Clients", logs[0].Module)
	assert.Equal(t, "Supplier Added", logs[0].Action)
}

func TestAddSupplierRequiresCompany(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.client.AddSupplier(ctx, testActor, entity.Supplier{
		ContactName: "Nadia Berrada",
	})
	require.Error(t, err)

	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateClientLeavesBillingFieldsAlone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.addClient(t, "Omar Tazi", "12 Rue des Orangers, Rabat")
	newPhone := "+212600000000"
	updated, err := env.client.UpdateClient(ctx, testActor, client.ID, UpdateClientInput{
		Phone: &newPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)
	assert.Equal(t, client.TotalSpent, updated.TotalSpent)
	assert.Equal(t, client.CreditBalance, updated.CreditBalance)
}

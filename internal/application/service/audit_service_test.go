package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstock/techstock-api/internal/domain/entity"
)

func TestRecordStampsActorAndTimestamp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, testActor, "Test Action", "Testing", "details here")

	logs, err := env.audit.List(ctx, AuditFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, logs)

	// Newest first
	entry := logs[0]
	assert.Equal(t, testActor.Name, entry.User)
	assert.Equal(t, testActor.Role, entry.Role)
	assert.Equal(t, "15/03/2024 10:00:00", entry.Timestamp)
}

func TestRecordFallsBackToSystemActor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, entity.Actor{}, "Automated", "Testing", "")

	logs, err := env.audit.List(ctx, AuditFilter{Search: "Automated"})
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, entity.SystemActor.Name, logs[0].User)
}

func TestListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, testActor, "Needle Action", "ModuleA", "unique needle detail")
	env.audit.Record(ctx, testActor, "Other Action", "ModuleB", "haystack")

	bySearch, err := env.audit.List(ctx, AuditFilter{Search: "needle"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Needle Action", bySearch[0].Action)

	byModule, err := env.audit.List(ctx, AuditFilter{Module: "ModuleB"})
	require.NoError(t, err)
	require.Len(t, byModule, 1)
	assert.Equal(t, "Other Action", byModule[0].Action)

	byDate, err := env.audit.List(ctx, AuditFilter{Date: "2024-03-15", Search: "needle"})
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	wrongDate, err := env.audit.List(ctx, AuditFilter{Date: "2020-01-01", Search: "needle"})
	require.NoError(t, err)
	assert.Empty(t, wrongDate)
}

func TestModulesAreDistinct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, testActor, "A", "Sales", "")
	env.audit.Record(ctx, testActor, "B", "Sales", "")
	env.audit.Record(ctx, testActor, "C", "Finance", "")

	modules, err := env.audit.Modules(ctx)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, m := range modules {
		counts[m]++
	}
	assert.Equal(t, 1, counts["Sales"])
	assert.Equal(t, 1, counts["Finance"])
}

func TestExportCSVEscapesQuotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, testActor, "Quoted", "Testing", `said "hello" twice`)

	data, err := env.audit.ExportCSV(ctx, AuditFilter{Search: "Quoted"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Timestamp","User","Module","Action","Details"`, lines[0])
	assert.Contains(t, lines[1], `"said ""hello"" twice"`)
	assert.Contains(t, lines[1], `"Sarah Sales"`)
}

func TestEveryWorkflowOperationLeavesOneAuditEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	checkpoints := []func() error{
		func() error {
			_, err := env.product.AddProduct(ctx, testActor, CreateProductInput{Code: "A1", Name: "Audited Product", Stock: 1})
			return err
		},
		func() error {
			_, err := env.client.AddClient(ctx, testActor, CreateClientInput{Name: "Audited Client"})
			return err
		},
		func() error {
			_, err := env.finance.AddTransaction(ctx, testActor, CreateTransactionInput{
				Direction: "IN", Category: "SALE", Amount: 10,
			})
			return err
		},
		func() error {
			_, err := env.delivery.AddDelivery(ctx, testActor, CreateDeliveryInput{ClientName: "X", Address: "Y"})
			return err
		},
	}

	for i, op := range checkpoints {
		before := env.auditCount(t)
		require.NoError(t, op())
		assert.Equal(t, before+1, env.auditCount(t), "operation %d", i)
	}
}

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/usecase/report"
)

func TestEarningsSQL_ByEmployeeJoinsEmployees(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(1, 0, 0)

	sql, args, err := earningsSQL(report.Query{
		Unit:     "month",
		GroupBy:  report.GroupEmployee,
		From:     from,
		To:       to,
		Location: loc,
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "JOIN empleados e")
	assert.Contains(t, sql, "t.fecha_hora >= ?")
	assert.Equal(t, []any{"month", "ART", "cancelado", to.UTC(), from.UTC()}, args)
}

func TestEarningsSQL_UnboundedLowerRange(t *testing.T) {
	sql, args, err := earningsSQL(report.Query{
		Unit: "year",
		To:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.NotContains(t, sql, "t.fecha_hora >= ?")
	assert.NotContains(t, sql, "empleados")
	assert.Len(t, args, 4)
	assert.Equal(t, "UTC", args[1])
}

func TestEarningsSQL_RejectsUnknownGroup(t *testing.T) {
	_, _, err := earningsSQL(report.Query{Unit: "day", GroupBy: "cliente"})
	assert.Error(t, err)
}

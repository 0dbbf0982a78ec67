package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/timezone"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/usecase/report"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

type earningsGroup struct {
	id   string
	name string
	join string
}

var earningsGroups = map[report.GroupBy]earningsGroup{
	report.GroupNone: {
		id:   "0",
		name: "''",
	},
	report.GroupService: {
		id:   "s.id",
		name: "s.nombre",
	},
	report.GroupEmployee: {
		id:   "e.id",
		name: "e.nombre || ' ' || e.apellido",
		join: "JOIN empleados e ON e.id = t.empleado_id",
	},
}

type earningsRow struct {
	Bucket       time.Time
	GroupID      uint
	GroupName    string
	Total        decimal.Decimal
	Appointments int64
}

// earningsSQL builds the aggregate over non-cancelled turnos. Buckets are
// truncated on the salon's wall clock.
func earningsSQL(q report.Query) (string, []any, error) {
	g, ok := earningsGroups[q.GroupBy]
	if !ok {
		return "", nil, fmt.Errorf("unknown group %q", q.GroupBy)
	}

	loc := q.Location
	if loc == nil {
		loc = time.UTC
	}

	where := []string{"t.estado <> ?", "t.fecha_hora < ?"}
	args := []any{q.Unit, loc.String(), string(domain.StatusCancelled), q.To.UTC()}
	if !q.From.IsZero() {
		where = append(where, "t.fecha_hora >= ?")
		args = append(args, q.From.UTC())
	}

	sql := fmt.Sprintf(`
SELECT date_trunc(?, t.fecha_hora AT TIME ZONE ?) AS bucket,
       %s AS group_id,
       %s AS group_name,
       COALESCE(SUM(s.precio), 0) AS total,
       COUNT(*) AS appointments
FROM turnos t
JOIN servicios s ON s.id = t.servicio_id
%s
WHERE %s
GROUP BY 1, 2, 3
ORDER BY 1, 3`, g.id, g.name, g.join, strings.Join(where, " AND "))

	return sql, args, nil
}

func (r *ReportGormRepository) Earnings(
	ctx context.Context,
	q report.Query,
) ([]report.Row, error) {

	sql, args, err := earningsSQL(q)
	if err != nil {
		return nil, domain.Persistence("earnings_failed", err)
	}

	var rows []earningsRow
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, domain.Persistence("earnings_failed", err)
	}

	loc := q.Location
	if loc == nil {
		loc = time.UTC
	}

	out := make([]report.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.Row{
			Bucket:       timezone.WallClock(row.Bucket, loc),
			GroupID:      row.GroupID,
			GroupName:    row.GroupName,
			Total:        row.Total.Round(2),
			Appointments: row.Appointments,
		})
	}
	return out, nil
}

var _ report.Repository = (*ReportGormRepository)(nil)

package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/timezone"
)

// ===============================
// Period
// ===============================

type Period string

const (
	PeriodDaily   Period = "diarias"
	PeriodWeekly  Period = "semanales"
	PeriodMonthly Period = "mensuales"
	PeriodYearly  Period = "anuales"
)

func ParsePeriod(raw string) (Period, error) {
	switch p := Period(raw); p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return p, nil
	default:
		return "", domain.InvalidInput("invalid_period")
	}
}

// Unit is the Postgres date_trunc field of the period buckets.
func (p Period) Unit() string {
	switch p {
	case PeriodDaily:
		return "day"
	case PeriodWeekly:
		return "week"
	case PeriodMonthly:
		return "month"
	default:
		return "year"
	}
}

// Window is the default reporting range for the period, relative to now:
// today, last and current week, the months of the current year, or every
// year up to the current one. A zero from means unbounded.
func (p Period) Window(now time.Time) (from, to time.Time) {
	switch p {
	case PeriodDaily:
		from = timezone.StartOfDay(now)
		return from, from.AddDate(0, 0, 1)
	case PeriodWeekly:
		cur := timezone.StartOfWeek(now)
		return cur.AddDate(0, 0, -7), cur.AddDate(0, 0, 7)
	case PeriodMonthly:
		from = timezone.StartOfYear(now)
		return from, from.AddDate(1, 0, 0)
	default:
		return time.Time{}, timezone.StartOfYear(now).AddDate(1, 0, 0)
	}
}

// ===============================
// Grouping
// ===============================

type GroupBy string

const (
	GroupNone     GroupBy = ""
	GroupService  GroupBy = "servicio"
	GroupEmployee GroupBy = "empleado"
)

func ParseGroupBy(raw string) (GroupBy, error) {
	switch g := GroupBy(raw); g {
	case GroupNone, GroupService, GroupEmployee:
		return g, nil
	default:
		return "", domain.InvalidInput("invalid_group")
	}
}

// ===============================
// Repository
// ===============================

type Query struct {
	Unit     string
	GroupBy  GroupBy
	From     time.Time
	To       time.Time
	Location *time.Location
}

type Row struct {
	Bucket       time.Time       `json:"periodo"`
	GroupID      uint            `json:"grupo_id,omitempty"`
	GroupName    string          `json:"grupo,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Appointments int64           `json:"turnos"`
}

type Repository interface {
	Earnings(ctx context.Context, q Query) ([]Row, error)
}

// ===============================
// Use case
// ===============================

type EarningsInput struct {
	Period  string
	GroupBy string
}

type Earnings struct {
	Period  Period          `json:"periodo"`
	GroupBy GroupBy         `json:"agrupar,omitempty"`
	From    *time.Time      `json:"desde,omitempty"`
	To      time.Time       `json:"hasta"`
	Total   decimal.Decimal `json:"total"`
	Rows    []Row           `json:"detalle"`
}

type GetEarnings struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewGetEarnings(repo Repository, tz string) *GetEarnings {
	loc := timezone.Location(tz)
	return &GetEarnings{
		repo: repo,
		loc:  loc,
		now:  func() time.Time { return time.Now().In(loc) },
	}
}

func (uc *GetEarnings) Execute(ctx context.Context, in EarningsInput) (*Earnings, error) {
	period, err := ParsePeriod(in.Period)
	if err != nil {
		return nil, err
	}
	group, err := ParseGroupBy(in.GroupBy)
	if err != nil {
		return nil, err
	}

	from, to := period.Window(uc.now().In(uc.loc))

	rows, err := uc.repo.Earnings(ctx, Query{
		Unit:     period.Unit(),
		GroupBy:  group,
		From:     from,
		To:       to,
		Location: uc.loc,
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Total)
	}

	out := &Earnings{
		Period:  period,
		GroupBy: group,
		To:      to,
		Total:   total.Round(2),
		Rows:    rows,
	}
	if !from.IsZero() {
		out.From = &from
	}
	return out, nil
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/httperr"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/usecase/report"
)

type ReportHandler struct {
	earnings *report.GetEarnings
}

func NewReportHandler(earnings *report.GetEarnings) *ReportHandler {
	return &ReportHandler{earnings: earnings}
}

// Earnings serves /turnos/ganancias/:periodo?agrupar=servicio|empleado.
func (h *ReportHandler) Earnings(c *gin.Context) {
	out, err := h.earnings.Execute(c.Request.Context(), report.EarningsInput{
		Period:  c.Param("periodo"),
		GroupBy: c.Query("agrupar"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

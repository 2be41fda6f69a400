package handler

import (
	"net/http"
	"strings"

	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/modules/common/httpx"
	moduledto "art-atlas-server/internal/modules/report/dto"
	reportservice "art-atlas-server/internal/modules/report/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	reportService *reportservice.Service
}

func New(reportService *reportservice.Service) *Handler {
	return &Handler{reportService: reportService}
}

func (h *Handler) CreateReport(c *gin.Context) {
	var req moduledto.CreateReportRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		httpx.BadRequest(c)
		return
	}

	report, err := h.reportService.CreateReport(middleware.CurrentActor(c), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to submit report")
		return
	}
	httpx.OK(c, http.StatusCreated, "Report submitted successfully", report)
}

func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.reportService.ListReports(middleware.CurrentActor(c), c.Query("status"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load reports")
		return
	}
	httpx.OK(c, http.StatusOK, "Reports retrieved", reports)
}

func (h *Handler) CloseReport(c *gin.Context) {
	var req moduledto.CloseReportRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		httpx.BadRequest(c)
		return
	}
	// 路径参数优先，其次 ?id=
	if id := strings.TrimSpace(c.Param("id")); id != "" {
		req.ReportID = id
	} else if id := strings.TrimSpace(c.Query("id")); id != "" && req.ReportID == "" {
		req.ReportID = id
	}

	report, err := h.reportService.CloseReport(middleware.CurrentActor(c), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update report")
		return
	}
	httpx.OK(c, http.StatusOK, "Report updated successfully", report)
}

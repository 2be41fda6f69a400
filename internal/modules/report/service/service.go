package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/moderation"
	"art-atlas-server/internal/modules/report/dto"
	"art-atlas-server/internal/modules/report/repo"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/utils"

	"gorm.io/gorm"
)

// ArtworkTitles 举报未带标题时按作品 ID 补全
type ArtworkTitles interface {
	Title(artworkID string) string
}

type Service struct {
	*platformservice.AppService
	reportStore repo.ReportStore
	artworks    ArtworkTitles
	publisher   events.Publisher
}

func New(appService *platformservice.AppService, reportStore repo.ReportStore, artworks ArtworkTitles, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		AppService:  appService,
		reportStore: reportStore,
		artworks:    artworks,
		publisher:   publisher,
	}
}

// CreateReport 提交举报，匿名可用。被举报作品不要求仍然存在
func (s *Service) CreateReport(actor moderation.Actor, req dto.CreateReportRequest) (*model.Report, error) {
	if err := moderation.Allow(moderation.ActionSubmitReport, actor, ""); err != nil {
		return nil, err
	}

	artworkID := strings.TrimSpace(req.ArtworkID)
	if artworkID == "" {
		return nil, platformservice.NewValidationError("Artwork ID is required")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, platformservice.NewValidationError("Reason is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" {
		if ok, msg := utils.ValidateEmail(email); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
	}
	if s.GetBool(consts.ConfigReportCaptchaEnabled) && !utils.VerifyCaptcha(req.CaptchaID, req.CaptchaAnswer) {
		return nil, platformservice.NewValidationError("Invalid captcha")
	}

	detail := strings.TrimSpace(req.Detail)
	if detail == "" {
		detail = strings.TrimSpace(req.Details)
	}
	title := strings.TrimSpace(req.ArtworkTitle)
	if title == "" && s.artworks != nil {
		title = s.artworks.Title(artworkID)
	}

	report := &model.Report{
		ID:           utils.NewID(consts.ReportIDPrefix),
		ArtworkID:    artworkID,
		ArtworkTitle: title,
		Reason:       reason,
		Detail:       detail,
		Email:        email,
		Status:       consts.ReportStatusOpen,
		CreatedAt:    time.Now(),
	}
	if err := s.reportStore.Create(report); err != nil {
		return nil, platformservice.NewInternalError("Failed to save report")
	}

	s.publisher.Publish(context.Background(), events.New(events.ReportOpened, report.ID, actor.ID, map[string]interface{}{
		"artwork_id": artworkID,
		"reason":     reason,
	}))
	return report, nil
}

// ListReports 管理员查看举报，status 为空或 all 时返回全部
func (s *Service) ListReports(actor moderation.Actor, status string) ([]model.Report, error) {
	if err := moderation.Allow(moderation.ActionDecideReport, actor, ""); err != nil {
		return nil, err
	}

	var (
		reports []model.Report
		err     error
	)
	switch status = strings.TrimSpace(status); status {
	case "", consts.StatusFilterAll:
		reports, err = s.reportStore.ListAll()
	case consts.ReportStatusOpen, consts.ReportStatusClosed:
		reports, err = s.reportStore.ListByStatus(status)
	default:
		return nil, platformservice.NewValidationError("Invalid status. Must be one of: open, closed")
	}
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to load reports")
	}
	return reports, nil
}

// CloseReport 关闭举报，只能执行一次
func (s *Service) CloseReport(actor moderation.Actor, req dto.CloseReportRequest) (*model.Report, error) {
	if err := moderation.Allow(moderation.ActionDecideReport, actor, ""); err != nil {
		return nil, err
	}

	reportID := strings.TrimSpace(req.ReportID)
	if reportID == "" {
		return nil, platformservice.NewValidationError("Report ID is required")
	}
	if status := strings.TrimSpace(req.Status); status != "" && status != consts.ReportStatusClosed {
		return nil, platformservice.NewValidationError("Invalid status. Reports can only be closed")
	}
	decision := strings.TrimSpace(req.Decision)
	if decision == "" {
		return nil, platformservice.NewValidationError("Decision is required")
	}

	report, err := s.reportStore.FindByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("Report not found")
		}
		return nil, platformservice.NewInternalError("Failed to load report")
	}

	now := time.Now()
	report.Decision = decision
	report.Note = strings.TrimSpace(req.Note)
	report.ReviewedAt = &now
	report.ReviewedBy = actor.ID
	if err := s.reportStore.Close(report); err != nil {
		switch {
		case errors.Is(err, repo.ErrReportClosed):
			return nil, platformservice.NewConflictError("Report is already closed")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, platformservice.NewNotFoundError("Report not found")
		}
		log.Printf("❌ 关闭举报失败 %s: %v", reportID, err)
		return nil, platformservice.NewInternalError("Failed to update report")
	}

	s.publisher.Publish(context.Background(), events.New(events.ReportClosed, report.ID, actor.ID, map[string]interface{}{
		"artwork_id": report.ArtworkID,
		"decision":   decision,
	}))
	return report, nil
}

package repo

import (
	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportStore {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(report *model.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepository) FindByID(id string) (*model.Report, error) {
	var report model.Report
	if err := r.db.Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) ListByStatus(status string) ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.Where("status = ?", status).Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListAll 最新的举报排在前面
func (r *ReportRepository) ListAll() ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) Close(report *model.Report) error {
	result := r.db.Model(&model.Report{}).
		Where("id = ? AND status = ?", report.ID, consts.ReportStatusOpen).
		Updates(map[string]interface{}{
			"status":      consts.ReportStatusClosed,
			"decision":    report.Decision,
			"note":        report.Note,
			"reviewed_at": report.ReviewedAt,
			"reviewed_by": report.ReviewedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		report.Status = consts.ReportStatusClosed
		return nil
	}

	var count int64
	if err := r.db.Model(&model.Report{}).Where("id = ?", report.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrReportClosed
}

func (r *ReportRepository) Upsert(report *model.Report) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(report).Error
}

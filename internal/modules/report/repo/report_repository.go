package repo

import (
	"errors"

	"art-atlas-server/internal/model"
)

// ErrReportClosed 举报已被关闭，不能再次处理
var ErrReportClosed = errors.New("report already closed")

type ReportStore interface {
	Create(report *model.Report) error
	FindByID(id string) (*model.Report, error)
	ListByStatus(status string) ([]model.Report, error)
	ListAll() ([]model.Report, error)
	// Close 仅当举报仍为 open 时写入处理结果
	Close(report *model.Report) error
	Upsert(report *model.Report) error
}

package repo

import "art-atlas-server/internal/model"

type UserStore interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByIDs(ids []string) ([]model.User, error)
	FindByUsernameOrEmail(identifier string) (*model.User, error)
	IsUsernameTaken(username string) (bool, error)
	IsEmailTaken(email string, excludeUserID string) (bool, error)
	GetStatus(id string) (string, error)
	ListAll() ([]model.User, error)
	ListByStatus(status string) ([]model.User, error)
	UpdateFields(id string, fields map[string]interface{}) error
	DeleteCascade(id string) error
	// Upsert 导入旧数据时按 id 覆盖写入
	Upsert(user *model.User) error
}

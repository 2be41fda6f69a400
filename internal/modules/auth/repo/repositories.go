package repo

import "art-atlas-server/internal/model"

// UserStore 认证流程需要的账号读写能力，由 user 模块的仓储实现
type UserStore interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByUsernameOrEmail(identifier string) (*model.User, error)
	IsUsernameTaken(username string) (bool, error)
	IsEmailTaken(email string, excludeUserID string) (bool, error)
}

type SessionStore interface {
	Create(session *model.Session) error
	FindByID(id string) (*model.Session, error)
	DeleteByID(id string) error
	DeleteByUserID(userID string) error
	ReplaceUserSession(session *model.Session) error
	ListAll() ([]model.Session, error)
	Upsert(session *model.Session) error
}

package repo

import (
	"art-atlas-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionStore {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

func (r *SessionRepository) FindByID(id string) (*model.Session, error) {
	var session model.Session
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) DeleteByID(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Session{}).Error
}

func (r *SessionRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Session{}).Error
}

// ReplaceUserSession 在同一事务内删除该用户的旧会话并写入新会话，保证每个用户最多一个会话
func (r *SessionRepository) ReplaceUserSession(session *model.Session) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", session.UserID).Delete(&model.Session{}).Error; err != nil {
			return err
		}
		return tx.Create(session).Error
	})
}

func (r *SessionRepository) ListAll() ([]model.Session, error) {
	var sessions []model.Session
	if err := r.db.Order("created_at asc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) Upsert(session *model.Session) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(session).Error
}

package repo

import (
	"strings"

	"art-atlas-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByIDs(ids []string) ([]model.User, error) {
	var users []model.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByUsernameOrEmail 登录时用户名与邮箱任选其一，均不区分大小写
func (r *UserRepository) FindByUsernameOrEmail(identifier string) (*model.User, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	var user model.User
	if err := r.db.Where("LOWER(username) = ? OR email = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) IsUsernameTaken(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("LOWER(username) = ?", strings.ToLower(username)).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) IsEmailTaken(email string, excludeUserID string) (bool, error) {
	query := r.db.Model(&model.User{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeUserID != "" {
		query = query.Where("id <> ?", excludeUserID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) GetStatus(id string) (string, error) {
	var user model.User
	if err := r.db.Select("id", "status").Where("id = ?", id).First(&user).Error; err != nil {
		return "", err
	}
	return user.Status, nil
}

// ListAll 按注册顺序返回
func (r *UserRepository) ListAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) ListByStatus(status string) ([]model.User, error) {
	var users []model.User
	if err := r.db.Where("status = ?", status).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade 删除用户及其会话与点赞，作品保留但解除归属，举报保留
func (r *UserRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Artwork{}).Where("submitted_by = ?", id).
			Updates(map[string]interface{}{"submitted_by": "", "version": gorm.Expr("version + 1")}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *UserRepository) Upsert(user *model.User) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(user).Error
}

package jsonstore

import (
	"encoding/json"
	"strings"
	"time"

	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/moderation"
)

// PHPTimeLayout 旧版数据文件使用 date('Y-m-d H:i:s') 写入时间
const PHPTimeLayout = "2006-01-02 15:04:05"

// PHPTime 兼容旧数据的时间字段，空字符串与 null 视为零值
type PHPTime struct {
	time.Time
}

func (t PHPTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Local().Format(PHPTimeLayout))
}

func (t *PHPTime) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		t.Time = time.Time{}
		return nil
	}
	value := strings.TrimSpace(*raw)
	parsed, err := time.ParseInLocation(PHPTimeLayout, value, time.Local)
	if err != nil {
		// 新版导出可能带时区
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

func (t PHPTime) ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

func phpTime(t *time.Time) PHPTime {
	if t == nil {
		return PHPTime{}
	}
	return PHPTime{Time: *t}
}

type userRecord struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	Status          string  `json:"status"`
	Region          string  `json:"region,omitempty"`
	Nation          string  `json:"nation,omitempty"`
	Bio             string  `json:"bio,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	Dob             string  `json:"dob,omitempty"`
	Gender          string  `json:"gender,omitempty"`
	CreatedAt       PHPTime `json:"created_at"`
	UpdatedAt       PHPTime `json:"updated_at"`
	ApprovedAt      PHPTime `json:"approved_at"`
	StatusUpdatedAt PHPTime `json:"status_updated_at"`
}

func userToRecord(u model.User) userRecord {
	return userRecord{
		ID:              u.ID,
		Username:        u.Username,
		Password:        u.Password,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		Status:          u.Status,
		Region:          u.Region,
		Nation:          u.Nation,
		Bio:             u.Bio,
		ImageURL:        u.ImageURL,
		Phone:           u.Phone,
		Dob:             u.Dob,
		Gender:          u.Gender,
		CreatedAt:       PHPTime{Time: u.CreatedAt},
		UpdatedAt:       PHPTime{Time: u.UpdatedAt},
		ApprovedAt:      phpTime(u.ApprovedAt),
		StatusUpdatedAt: phpTime(u.StatusUpdatedAt),
	}
}

// toModel 密码哈希原样保留，PHP 的 $2y$ 哈希可直接被 bcrypt 校验
func (r userRecord) toModel() model.User {
	updated := r.UpdatedAt.Time
	if updated.IsZero() {
		updated = r.CreatedAt.Time
	}
	return model.User{
		ID:              r.ID,
		Username:        r.Username,
		Email:           strings.ToLower(strings.TrimSpace(r.Email)),
		Password:        r.Password,
		Name:            r.Name,
		Role:            r.Role,
		Status:          r.Status,
		Region:          r.Region,
		Nation:          r.Nation,
		Bio:             r.Bio,
		ImageURL:        r.ImageURL,
		Phone:           r.Phone,
		Dob:             r.Dob,
		Gender:          r.Gender,
		CreatedAt:       r.CreatedAt.Time,
		UpdatedAt:       updated,
		ApprovedAt:      r.ApprovedAt.ptr(),
		StatusUpdatedAt: r.StatusUpdatedAt.ptr(),
	}
}

type artworkRecord struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Artist          string        `json:"artist"`
	ArtType         string        `json:"artType"`
	Period          string        `json:"period"`
	Region          string        `json:"region"`
	Sensitive       bool          `json:"sensitive"`
	Address         *string       `json:"address"`
	Coords          *model.Coords `json:"coords"`
	Description     string        `json:"description"`
	Status          string        `json:"status"`
	SubmittedBy     string        `json:"submitted_by"`
	SubmittedAt     PHPTime       `json:"submitted_at"`
	UpdatedAt       PHPTime       `json:"updated_at"`
	ReviewedAt      PHPTime       `json:"reviewed_at"`
	ApprovedAt      PHPTime       `json:"approved_at"`
	ReviewedBy      string        `json:"reviewed_by,omitempty"`
	RejectedAt      PHPTime       `json:"rejected_at"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	FlaggedAt       PHPTime       `json:"flagged_at"`
	FlaggedBy       string        `json:"flagged_by,omitempty"`
	FlagReason      string        `json:"flag_reason,omitempty"`
	Images          []string      `json:"images"`
}

func artworkToRecord(a model.Artwork) artworkRecord {
	images := []string(a.Images)
	if images == nil {
		images = []string{}
	}
	return artworkRecord{
		ID:              a.ID,
		Title:           a.Title,
		Artist:          a.Artist,
		ArtType:         a.ArtType,
		Period:          a.Period,
		Region:          a.Region,
		Sensitive:       a.Sensitive,
		Address:         a.Address,
		Coords:          a.Coords(),
		Description:     a.Description,
		Status:          a.Status,
		SubmittedBy:     a.SubmittedBy,
		SubmittedAt:     PHPTime{Time: a.SubmittedAt},
		UpdatedAt:       PHPTime{Time: a.UpdatedAt},
		ReviewedAt:      phpTime(a.ReviewedAt),
		ReviewedBy:      a.ReviewedBy,
		RejectedAt:      phpTime(a.RejectedAt),
		RejectionReason: a.RejectionReason,
		FlaggedAt:       phpTime(a.FlaggedAt),
		FlaggedBy:       a.FlaggedBy,
		FlagReason:      a.FlagReason,
		Images:          images,
	}
}

// toModel 敏感作品即使旧数据里带了位置也不落库
func (r artworkRecord) toModel() model.Artwork {
	reviewed := r.ReviewedAt
	if reviewed.IsZero() {
		reviewed = r.ApprovedAt
	}
	updated := r.UpdatedAt.Time
	if updated.IsZero() {
		updated = r.SubmittedAt.Time
	}
	art := model.Artwork{
		ID:              r.ID,
		Title:           r.Title,
		Artist:          r.Artist,
		SubmittedBy:     r.SubmittedBy,
		ArtType:         r.ArtType,
		Period:          r.Period,
		Region:          r.Region,
		Sensitive:       r.Sensitive,
		Description:     r.Description,
		Images:          model.StringList(r.Images),
		Status:          r.Status,
		SubmittedAt:     r.SubmittedAt.Time,
		UpdatedAt:       updated,
		ReviewedAt:      reviewed.ptr(),
		ReviewedBy:      r.ReviewedBy,
		RejectedAt:      r.RejectedAt.ptr(),
		RejectionReason: r.RejectionReason,
		FlaggedAt:       r.FlaggedAt.ptr(),
		FlaggedBy:       r.FlaggedBy,
		FlagReason:      r.FlagReason,
		Version:         1,
	}
	if art.Images == nil {
		art.Images = model.StringList{}
	}
	art.Address = r.Address
	art.SetCoords(r.Coords)
	moderation.ScrubLocation(&art)
	return art
}

type sessionRecord struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	CreatedAt PHPTime `json:"created_at"`
	ExpiresAt PHPTime `json:"expires_at"`
}

func sessionToRecord(s model.Session) sessionRecord {
	return sessionRecord{
		ID:        s.ID,
		UserID:    s.UserID,
		Username:  s.Username,
		Role:      s.Role,
		CreatedAt: PHPTime{Time: s.CreatedAt},
		ExpiresAt: PHPTime{Time: s.ExpiresAt},
	}
}

func (r sessionRecord) toModel() model.Session {
	return model.Session{
		ID:        r.ID,
		UserID:    r.UserID,
		Username:  r.Username,
		Role:      r.Role,
		CreatedAt: r.CreatedAt.Time,
		ExpiresAt: r.ExpiresAt.Time,
	}
}

type reportRecord struct {
	ID           string  `json:"id"`
	Artwork      string  `json:"artwork"`
	ArtworkTitle string  `json:"artwork_title"`
	Reason       string  `json:"reason"`
	Detail       string  `json:"detail"`
	Email        string  `json:"email"`
	Created      PHPTime `json:"created"`
	Status       string  `json:"status"`
	Decision     string  `json:"decision,omitempty"`
	Note         string  `json:"note,omitempty"`
	ReviewedAt   PHPTime `json:"reviewed_at"`
	ReviewedBy   string  `json:"reviewed_by,omitempty"`
}

func reportToRecord(r model.Report) reportRecord {
	return reportRecord{
		ID:           r.ID,
		Artwork:      r.ArtworkID,
		ArtworkTitle: r.ArtworkTitle,
		Reason:       r.Reason,
		Detail:       r.Detail,
		Email:        r.Email,
		Created:      PHPTime{Time: r.CreatedAt},
		Status:       r.Status,
		Decision:     r.Decision,
		Note:         r.Note,
		ReviewedAt:   phpTime(r.ReviewedAt),
		ReviewedBy:   r.ReviewedBy,
	}
}

func (r reportRecord) toModel() model.Report {
	return model.Report{
		ID:           r.ID,
		ArtworkID:    r.Artwork,
		ArtworkTitle: r.ArtworkTitle,
		Reason:       r.Reason,
		Detail:       r.Detail,
		Email:        r.Email,
		Status:       r.Status,
		Decision:     r.Decision,
		Note:         r.Note,
		CreatedAt:    r.Created.Time,
		ReviewedAt:   r.ReviewedAt.ptr(),
		ReviewedBy:   r.ReviewedBy,
	}
}

type likeRecord struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	ArtworkID string  `json:"artwork_id"`
	CreatedAt PHPTime `json:"created_at"`
}

func likeToRecord(l model.Like) likeRecord {
	return likeRecord{
		ID:        l.ID,
		UserID:    l.UserID,
		ArtworkID: l.ArtworkID,
		CreatedAt: PHPTime{Time: l.CreatedAt},
	}
}

func (r likeRecord) toModel() model.Like {
	return model.Like{
		ID:        r.ID,
		UserID:    r.UserID,
		ArtworkID: r.ArtworkID,
		CreatedAt: r.CreatedAt.Time,
	}
}

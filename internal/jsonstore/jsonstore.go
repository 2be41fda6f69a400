// Package jsonstore 负责旧版 JSON 数据文件与数据库之间的导入导出。
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
)

const (
	UsersFile    = "users.json"
	ArtworksFile = "artworks.json"
	SessionsFile = "sessions.json"
	ReportsFile  = "reports.json"
	LikesFile    = "likes.json"
)

type UserStore interface {
	ListAll() ([]model.User, error)
	Upsert(user *model.User) error
}

type ArtworkStore interface {
	ListAll() ([]model.Artwork, error)
	Upsert(art *model.Artwork) error
}

type SessionStore interface {
	ListAll() ([]model.Session, error)
	Upsert(session *model.Session) error
}

type ReportStore interface {
	ListAll() ([]model.Report, error)
	Upsert(report *model.Report) error
}

type LikeStore interface {
	ListAll() ([]model.Like, error)
	Upsert(like *model.Like) error
}

type Stores struct {
	Users    UserStore
	Artworks ArtworkStore
	Sessions SessionStore
	Reports  ReportStore
	Likes    LikeStore
}

// Summary 每个文件处理的记录数
type Summary map[string]int

func (s Summary) String() string {
	parts := make([]string, 0, 5)
	for _, name := range []string{UsersFile, ArtworksFile, SessionsFile, ReportsFile, LikesFile} {
		parts = append(parts, fmt.Sprintf("%s=%d", name, s[name]))
	}
	return strings.Join(parts, " ")
}

// Import 读取 dir 下的数据文件并按 id 覆盖写入，缺失的文件跳过，重复导入结果不变
func Import(dir string, stores Stores) (Summary, error) {
	summary := Summary{}

	var users []userRecord
	found, err := readFile(dir, UsersFile, &users)
	if err != nil {
		return summary, err
	}
	if found {
		for _, rec := range users {
			if strings.TrimSpace(rec.ID) == "" {
				continue
			}
			u := rec.toModel()
			if u.Username == "" {
				u.Username = u.ID
			}
			if u.Role == "" {
				u.Role = consts.RoleUser
			}
			if u.Status == "" {
				u.Status = consts.UserStatusPending
			}
			if err := stores.Users.Upsert(&u); err != nil {
				return summary, fmt.Errorf("导入用户 %s 失败: %w", u.ID, err)
			}
			summary[UsersFile]++
		}
	}

	var artworks []artworkRecord
	if found, err = readFile(dir, ArtworksFile, &artworks); err != nil {
		return summary, err
	}
	if found {
		for _, rec := range artworks {
			if strings.TrimSpace(rec.ID) == "" {
				continue
			}
			art := rec.toModel()
			if art.Status == "" {
				art.Status = consts.ArtworkStatusPending
			}
			if err := stores.Artworks.Upsert(&art); err != nil {
				return summary, fmt.Errorf("导入作品 %s 失败: %w", art.ID, err)
			}
			summary[ArtworksFile]++
		}
	}

	var sessions []sessionRecord
	if found, err = readFile(dir, SessionsFile, &sessions); err != nil {
		return summary, err
	}
	if found {
		for _, rec := range sessions {
			if strings.TrimSpace(rec.ID) == "" || rec.UserID == "" {
				continue
			}
			sess := rec.toModel()
			if err := stores.Sessions.Upsert(&sess); err != nil {
				return summary, fmt.Errorf("导入会话 %s 失败: %w", sess.ID, err)
			}
			summary[SessionsFile]++
		}
	}

	var reports []reportRecord
	if found, err = readFile(dir, ReportsFile, &reports); err != nil {
		return summary, err
	}
	if found {
		for _, rec := range reports {
			if strings.TrimSpace(rec.ID) == "" {
				continue
			}
			report := rec.toModel()
			if report.Status != consts.ReportStatusClosed {
				report.Status = consts.ReportStatusOpen
			}
			if err := stores.Reports.Upsert(&report); err != nil {
				return summary, fmt.Errorf("导入举报 %s 失败: %w", report.ID, err)
			}
			summary[ReportsFile]++
		}
	}

	var likes []likeRecord
	if found, err = readFile(dir, LikesFile, &likes); err != nil {
		return summary, err
	}
	if found {
		// 同一用户对同一作品只保留第一条
		seen := make(map[string]bool, len(likes))
		for _, rec := range likes {
			if strings.TrimSpace(rec.ID) == "" || rec.UserID == "" || rec.ArtworkID == "" {
				continue
			}
			pair := rec.UserID + "|" + rec.ArtworkID
			if seen[pair] {
				continue
			}
			seen[pair] = true
			like := rec.toModel()
			if err := stores.Likes.Upsert(&like); err != nil {
				return summary, fmt.Errorf("导入点赞 %s 失败: %w", like.ID, err)
			}
			summary[LikesFile]++
		}
	}

	return summary, nil
}

// Export 将当前数据写成旧版文件布局
func Export(dir string, stores Stores) (Summary, error) {
	summary := Summary{}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return summary, fmt.Errorf("无法创建导出目录 '%s': %w", dir, err)
	}

	users, err := stores.Users.ListAll()
	if err != nil {
		return summary, err
	}
	userRecords := make([]userRecord, 0, len(users))
	for _, u := range users {
		userRecords = append(userRecords, userToRecord(u))
	}
	if err := writeFile(dir, UsersFile, userRecords); err != nil {
		return summary, err
	}
	summary[UsersFile] = len(userRecords)

	artworks, err := stores.Artworks.ListAll()
	if err != nil {
		return summary, err
	}
	artworkRecords := make([]artworkRecord, 0, len(artworks))
	for _, a := range artworks {
		artworkRecords = append(artworkRecords, artworkToRecord(a))
	}
	if err := writeFile(dir, ArtworksFile, artworkRecords); err != nil {
		return summary, err
	}
	summary[ArtworksFile] = len(artworkRecords)

	sessions, err := stores.Sessions.ListAll()
	if err != nil {
		return summary, err
	}
	sessionRecords := make([]sessionRecord, 0, len(sessions))
	for _, s := range sessions {
		sessionRecords = append(sessionRecords, sessionToRecord(s))
	}
	if err := writeFile(dir, SessionsFile, sessionRecords); err != nil {
		return summary, err
	}
	summary[SessionsFile] = len(sessionRecords)

	reports, err := stores.Reports.ListAll()
	if err != nil {
		return summary, err
	}
	reportRecords := make([]reportRecord, 0, len(reports))
	for _, r := range reports {
		reportRecords = append(reportRecords, reportToRecord(r))
	}
	if err := writeFile(dir, ReportsFile, reportRecords); err != nil {
		return summary, err
	}
	summary[ReportsFile] = len(reportRecords)

	likes, err := stores.Likes.ListAll()
	if err != nil {
		return summary, err
	}
	likeRecords := make([]likeRecord, 0, len(likes))
	for _, l := range likes {
		likeRecords = append(likeRecords, likeToRecord(l))
	}
	if err := writeFile(dir, LikesFile, likeRecords); err != nil {
		return summary, err
	}
	summary[LikesFile] = len(likeRecords)

	return summary, nil
}

func readFile(dir, name string, out interface{}) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("⚠️ 未找到 %s，跳过", name)
			return false, nil
		}
		return false, fmt.Errorf("读取 %s 失败: %w", name, err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("解析 %s 失败: %w", name, err)
	}
	return true, nil
}

func writeFile(dir, name string, records interface{}) error {
	raw, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("序列化 %s 失败: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", name, err)
	}
	return nil
}

package service

import (
	"testing"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/artwork/repo"
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/moderation"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	userrepo "art-atlas-server/internal/modules/user/repo"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService  *Service
	testRecorder *events.Recorder
	testRemover  *fakeRemover
)

var (
	adminActor  = moderation.Actor{ID: "u_admin", Role: consts.RoleAdmin, Status: consts.UserStatusApproved}
	artistActor = moderation.Actor{ID: "u_artist", Role: consts.RoleArtist, Status: consts.UserStatusApproved}
	otherActor  = moderation.Actor{ID: "u_other", Role: consts.RoleArtist, Status: consts.UserStatusApproved}
)

type fakeRemover struct {
	removed []string
}

func (f *fakeRemover) RemoveImages(names []string) {
	f.removed = append(f.removed, names...)
}

type fakeLikes map[string]int64

func (f fakeLikes) CountByArtwork(id string) (int64, error) {
	return f[id], nil
}

func (f fakeLikes) CountByArtworks(ids []string) (map[string]int64, error) {
	out := make(map[string]int64, len(ids))
	for _, id := range ids {
		out[id] = f[id]
	}
	return out, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	artworkStore := repo.NewArtworkRepository(gdb)
	userStore := userrepo.NewUserRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testRecorder = &events.Recorder{}
	testRemover = &fakeRemover{}
	testService = New(appService, artworkStore, userStore, testRecorder)
	testService.SetImageRemover(testRemover)
	testService.ClearCache()
	return gdb
}

// seedArtwork 直接写库，submittedAt 用于控制存储顺序
func seedArtwork(t *testing.T, gdb *gorm.DB, id, owner, status string, offset int) *model.Artwork {
	t.Helper()
	art := &model.Artwork{
		ID:          id,
		Title:       "Title " + id,
		Artist:      "Artist " + owner,
		SubmittedBy: owner,
		ArtType:     "painting",
		Period:      "contemporary",
		Region:      "north",
		Status:      status,
		SubmittedAt: time.Date(2024, 1, 1, 0, 0, offset, 0, time.UTC),
		Version:     1,
	}
	if err := gdb.Create(art).Error; err != nil {
		t.Fatalf("创建作品失败: %v", err)
	}
	return art
}

func strPtr(s string) *string { return &s }

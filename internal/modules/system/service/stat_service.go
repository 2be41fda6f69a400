package service

import (
	"runtime"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/modules/moderation"
	moduledto "art-atlas-server/internal/modules/system/dto"
	platformservice "art-atlas-server/internal/platform/service"
)

// AdminGetStats 获取后台仪表盘统计数据。
func (s *Service) AdminGetStats(actor moderation.Actor) (*moduledto.StatsResponse, error) {
	if err := moderation.Allow(moderation.ActionManageUsers, actor, ""); err != nil {
		return nil, err
	}

	users, err := s.systemStore.CountUsersByStatus()
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to count users")
	}
	artworks, err := s.systemStore.CountArtworksByStatus()
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to count artworks")
	}
	reports, err := s.systemStore.CountReportsByStatus()
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to count reports")
	}
	likes, err := s.systemStore.CountLikes()
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to count likes")
	}

	return &moduledto.StatsResponse{
		TotalUsers:       sum(users),
		PendingUsers:     users[consts.UserStatusPending],
		ApprovedUsers:    users[consts.UserStatusApproved],
		InactiveUsers:    users[consts.UserStatusInactive],
		TotalArtworks:    sum(artworks),
		PendingArtworks:  artworks[consts.ArtworkStatusPending],
		ApprovedArtworks: artworks[consts.ArtworkStatusApproved],
		RejectedArtworks: artworks[consts.ArtworkStatusRejected],
		FlaggedArtworks:  artworks[consts.ArtworkStatusFlagged],
		OpenReports:      reports[consts.ReportStatusOpen],
		TotalReports:     sum(reports),
		TotalLikes:       likes,
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}

func sum(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}

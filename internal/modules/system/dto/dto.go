package dto

type InitRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	SiteName        string `json:"site_name"`
	SiteDescription string `json:"site_description"`
}

type InitStateResponse struct {
	Initialized bool `json:"initialized"`
}

// StatsResponse 字段与旧后台 stats 接口一致，并补充举报与点赞统计
type StatsResponse struct {
	TotalUsers       int64              `json:"total_users"`
	PendingUsers     int64              `json:"pending_users"`
	ApprovedUsers    int64              `json:"approved_users"`
	InactiveUsers    int64              `json:"inactive_users"`
	TotalArtworks    int64              `json:"total_artworks"`
	PendingArtworks  int64              `json:"pending_artworks"`
	ApprovedArtworks int64              `json:"approved_artworks"`
	RejectedArtworks int64              `json:"rejected_artworks"`
	FlaggedArtworks  int64              `json:"flagged_artworks"`
	OpenReports      int64              `json:"open_reports"`
	TotalReports     int64              `json:"total_reports"`
	TotalLikes       int64              `json:"total_likes"`
	SystemInfo       SystemInfoResponse `json:"system_info"`
}

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

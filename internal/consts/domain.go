package consts

// 用户角色
const (
	RoleUser   = "user"
	RoleArtist = "artist"
	RoleAdmin  = "admin"
)

// 用户状态
const (
	UserStatusPending  = "pending"
	UserStatusApproved = "approved"
	UserStatusInactive = "inactive"
)

// 作品状态
const (
	ArtworkStatusPending  = "pending"
	ArtworkStatusApproved = "approved"
	ArtworkStatusRejected = "rejected"
	ArtworkStatusFlagged  = "flagged"
)

// 举报状态
const (
	ReportStatusOpen   = "open"
	ReportStatusClosed = "closed"
)

// StatusFilterAll 列表查询时跳过状态过滤
const StatusFilterAll = "all"

// 记录 ID 前缀
const (
	UserIDPrefix    = "u_"
	ArtworkIDPrefix = "art_"
	ReportIDPrefix  = "r_"
	LikeIDPrefix    = "like_"
	SessionIDPrefix = "sess_"
)

const DefaultRejectionReason = "No reason provided"

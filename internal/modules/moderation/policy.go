// Package moderation 集中定义权限表与作品状态机，不做任何 I/O。
package moderation

import (
	"art-atlas-server/internal/consts"
	platformservice "art-atlas-server/internal/platform/service"
)

type Action string

const (
	ActionCreateArtwork    Action = "create_artwork"
	ActionSetArtworkStatus Action = "set_artwork_status"
	ActionEditArtwork      Action = "edit_artwork"
	ActionFlagArtwork      Action = "flag_artwork"
	ActionDeleteArtwork    Action = "delete_artwork"
	ActionManageUsers      Action = "manage_users"
	ActionSubmitReport     Action = "submit_report"
	ActionDecideReport     Action = "decide_report"
	ActionLikeArtwork      Action = "like_artwork"
	ActionManageSettings   Action = "manage_settings"
)

// Actor 发起操作的身份，匿名访问时 ID 为空。
type Actor struct {
	ID     string
	Role   string
	Status string
}

func (a Actor) IsAuthenticated() bool {
	return a.ID != ""
}

func (a Actor) IsAdmin() bool {
	return a.IsAuthenticated() && a.Role == consts.RoleAdmin
}

func (a Actor) Owns(ownerID string) bool {
	return a.IsAuthenticated() && ownerID != "" && a.ID == ownerID
}

type rule struct {
	anonymous bool
	anyUser   bool
	owner     bool
	// approvedArtist 为 true 时已审核的 artist 也可执行
	approvedArtist bool
}

// 管理员对全部动作放行，这里只列出非管理员的授权
var policyTable = map[Action]rule{
	ActionCreateArtwork:    {approvedArtist: true},
	ActionSetArtworkStatus: {},
	ActionEditArtwork:      {owner: true},
	ActionFlagArtwork:      {owner: true},
	ActionDeleteArtwork:    {owner: true},
	ActionManageUsers:      {},
	ActionSubmitReport:     {anonymous: true, anyUser: true},
	ActionDecideReport:     {},
	ActionLikeArtwork:      {anyUser: true},
	ActionManageSettings:   {},
}

// Allow 判断 actor 能否对 ownerID 拥有的资源执行 action。
// 匿名访问被拒返回 Unauthorized，已登录被拒返回 Forbidden。
func Allow(action Action, actor Actor, ownerID string) error {
	r, known := policyTable[action]
	if !known {
		return platformservice.NewForbiddenError("Unknown action")
	}
	if !actor.IsAuthenticated() {
		if r.anonymous {
			return nil
		}
		return platformservice.NewUnauthorizedError("Authentication required")
	}
	if actor.IsAdmin() || r.anyUser || r.anonymous {
		return nil
	}
	if r.owner && actor.Owns(ownerID) {
		return nil
	}
	if r.approvedArtist && actor.Role == consts.RoleArtist && actor.Status == consts.UserStatusApproved {
		return nil
	}
	return platformservice.NewForbiddenError(forbiddenMessage(action))
}

func forbiddenMessage(action Action) string {
	switch action {
	case ActionCreateArtwork:
		return "Only approved artists can submit artworks"
	case ActionEditArtwork, ActionDeleteArtwork, ActionFlagArtwork:
		return "You can only modify your own artworks"
	default:
		return "Admin access required"
	}
}

// Package events 将审核流程中的状态变化推送给在线管理员与消息队列。
package events

import (
	"context"
	"log"
	"sync"
	"time"
)

type Type string

const (
	ArtworkSubmitted  Type = "artwork.submitted"
	ArtworkApproved   Type = "artwork.approved"
	ArtworkRejected   Type = "artwork.rejected"
	ArtworkFlagged    Type = "artwork.flagged"
	ArtworkRevised    Type = "artwork.revised"
	ArtworkDeleted    Type = "artwork.deleted"
	ReportOpened      Type = "report.opened"
	ReportClosed      Type = "report.closed"
	UserRegistered    Type = "user.registered"
	UserStatusChanged Type = "user.status_changed"
	UserDeleted       Type = "user.deleted"
)

type Event struct {
	Type       Type                   `json:"type"`
	ResourceID string                 `json:"resource_id"`
	ActorID    string                 `json:"actor_id,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func New(t Type, resourceID, actorID string, data map[string]interface{}) Event {
	return Event{Type: t, ResourceID: resourceID, ActorID: actorID, Data: data, OccurredAt: time.Now().UTC()}
}

// Publisher 事件发布失败只记录日志，不影响业务请求
type Publisher interface {
	Publish(ctx context.Context, evt Event)
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) {}

// Multi 依次投递给多个发布者
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, evt Event) {
	for _, p := range m {
		if p != nil {
			p.Publish(ctx, evt)
		}
	}
}

// Recorder 记录发布过的事件，便于测试断言
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

func (r *Recorder) Publish(_ context.Context, evt Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, evt)
}

func (r *Recorder) Types() []Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Type, 0, len(r.Events))
	for _, e := range r.Events {
		out = append(out, e.Type)
	}
	return out
}

func logPublishError(sink string, evt Event, err error) {
	log.Printf("⚠️ 事件推送失败 [%s] %s(%s): %v", sink, evt.Type, evt.ResourceID, err)
}

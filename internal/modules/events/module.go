package events

import (
	"log"

	"art-atlas-server/internal/config"
)

type Module struct {
	Hub       *Hub
	Publisher Publisher
	Handler   *Handler
}

// NewModule 总是启用 websocket 推送，AMQP 由 events.amqp_enabled 控制
func NewModule() *Module {
	hub := NewHub()
	publishers := Multi{hub}

	cfg := config.Get().Events
	if cfg.AMQPEnabled {
		publishers = append(publishers, NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue))
		log.Printf("✅ 审核事件将投递到 AMQP 队列 %s", cfg.AMQPQueue)
	}

	return &Module{
		Hub:       hub,
		Publisher: publishers,
		Handler:   NewHandler(hub),
	}
}

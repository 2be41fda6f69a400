package handler

import systemservice "art-atlas-server/internal/modules/system/service"

type Handler struct {
	systemService *systemservice.Service
}

func New(systemService *systemservice.Service) *Handler {
	return &Handler{systemService: systemService}
}

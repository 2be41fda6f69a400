package handler

import settingsservice "art-atlas-server/internal/modules/settings/service"

type Handler struct {
	settingsService *settingsservice.Service
}

func New(settingsService *settingsservice.Service) *Handler {
	return &Handler{settingsService: settingsService}
}

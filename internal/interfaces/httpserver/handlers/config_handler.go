package handlers

import "jan-server/services/meet-api/internal/config"

// ConfigHandler exposes client-facing settings.
type ConfigHandler struct {
	webcomponentURL string
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{webcomponentURL: cfg.MeetWebcomponentURL()}
}

// WebcomponentURL is where browsers load the meeting web component from.
func (h *ConfigHandler) WebcomponentURL() string {
	return h.webcomponentURL
}

package websocket

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

const upgradeBufferSize = 1024

// NewSecureUpgrader returns an upgrader for the admin dashboard feed
// that only accepts handshakes from the given origins. Same-origin
// requests carry no Origin header and are always accepted.
func NewSecureUpgrader(origins []string, logger *slog.Logger) websocket.Upgrader {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed[origin] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		allowed["http://localhost:3000"] = struct{}{}
	}

	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}

			if _, ok := allowed[origin]; ok {
				return true
			}

			if logger != nil {
				logger.Warn("rejected websocket connection",
					slog.String("origin", origin),
					slog.String("remote_ip", r.RemoteAddr))
			}
			return false
		},
		ReadBufferSize:  upgradeBufferSize,
		WriteBufferSize: upgradeBufferSize,
	}
}

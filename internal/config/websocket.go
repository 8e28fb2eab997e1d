package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/websocket"
)

const defaultReadLimit = 4096

type WebSocket struct {
	Upgrader  websocket.Upgrader
	ReadLimit int64
}

func NewWebSocket() (*WebSocket, error) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		ReadLimit: defaultReadLimit,
	}

	if limitStr, ok := os.LookupEnv("WS_READ_LIMIT"); ok {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("WS_READ_LIMIT must be a positive integer, got %q", limitStr)
		}
		ws.ReadLimit = limit
	}

	return ws, nil
}

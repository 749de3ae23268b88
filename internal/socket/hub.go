package socket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub quản lý các client WebSocket của dashboard admin và broadcast số
// lượt truy cập mỗi khi counter tăng.
type Hub struct {
	clients map[*websocket.Conn]bool
	// mu bảo vệ map clients khi truy cập từ nhiều goroutine.
	mu sync.RWMutex
}

// NewHub tạo một Hub mới.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// Register thêm một client mới vào Hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	log.Printf("WebSocket client registered, total: %d", len(h.clients))
}

// Unregister xóa một client khỏi Hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		log.Printf("WebSocket client unregistered, total: %d", len(h.clients))
	}
}

// Broadcast gửi một tin nhắn đến tất cả client đang kết nối.
// Client gửi lỗi sẽ bị gỡ khỏi Hub.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write failed, dropping client: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

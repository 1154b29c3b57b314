package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Tecosi/voice-container-counter/internal/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser capture page runs on a different origin in dev.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades dictation clients and runs one streaming session per
// connection. The session dies with the socket; nothing is persisted.
type Handler struct {
	store        session.Store
	confirmWords []string
}

func NewHandler(store session.Store, confirmWords []string) *Handler {
	return &Handler{store: store, confirmWords: confirmWords}
}

type clientMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type stateMessage struct {
	Buffer          string  `json:"buffer"`
	ActiveItemLabel string  `json:"active_item_label"`
	LastStatus      string  `json:"last_status"`
	ContainerID     string  `json:"container_id"`
	Subtotal        float64 `json:"subtotal"`
}

// --------------------------------------------------
// GET /ws/dictation
// --------------------------------------------------
func (h *Handler) Dictation(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return
	}
	defer conn.Close()

	sess := session.New(h.store, h.confirmWords)

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "fragment":
			sess.Ingest(msg.Text)
		case "reset":
			sess.Reset()
		}

		state := stateMessage{
			Buffer:          sess.Buffer(),
			ActiveItemLabel: sess.ActiveItemLabel(),
			LastStatus:      sess.LastStatus(),
			ContainerID:     sess.ContainerID(),
			Subtotal:        sess.CurrentSubtotal(sess.ActiveItemLabel()),
		}
		if err := conn.WriteJSON(&state); err != nil {
			return
		}
	}
}

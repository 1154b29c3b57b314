package ws

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Tecosi/voice-container-counter/internal/container"
)

func dialTestSocket(t *testing.T) (*websocket.Conn, *container.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := container.NewService(container.NewMemoryRepository())
	handler := NewHandler(service, nil)

	r := gin.New()
	r.GET("/ws/dictation", handler.Dictation)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/dictation"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("websocket dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn, service
}

func TestDictation_FragmentRoundTrip(t *testing.T) {
	conn, service := dialTestSocket(t)

	msg := clientMessage{Type: "fragment", Text: "référence vis M6x20 ok 5 plus 10 ok"}
	if err := conn.WriteJSON(&msg); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var state stateMessage
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if state.ActiveItemLabel != "vis M6x20" {
		t.Errorf("active item = %q, want %q", state.ActiveItemLabel, "vis M6x20")
	}
	if state.Buffer != "" {
		t.Errorf("buffer = %q, want empty", state.Buffer)
	}
	if state.Subtotal != 15 {
		t.Errorf("subtotal = %v, want 15", state.Subtotal)
	}
	if state.ContainerID == "" {
		t.Error("expected a lazily created container id")
	}

	summary, err := service.Summary(state.ContainerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary) != 1 || summary[0].TotalQuantity != 15 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestDictation_Reset(t *testing.T) {
	conn, _ := dialTestSocket(t)

	if err := conn.WriteJSON(&clientMessage{Type: "fragment", Text: "référence vis ok"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var state stateMessage
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if state.ActiveItemLabel != "vis" {
		t.Fatalf("active item = %q, want %q", state.ActiveItemLabel, "vis")
	}

	if err := conn.WriteJSON(&clientMessage{Type: "reset"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if state.ActiveItemLabel != "" || state.Buffer != "" || state.LastStatus != "" {
		t.Errorf("reset left state: %+v", state)
	}
}

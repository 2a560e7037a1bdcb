package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"whatshouldweeat/internal/model"
	"whatshouldweeat/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is handled at the HTTP layer
	},
}

// Connection wraps one live quiz socket
type Connection struct {
	SessionID string

	ws *websocket.Conn
	mu sync.Mutex
}

// Send writes an envelope to the socket
func (c *Connection) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(msg)
}

// Close closes the underlying socket
func (c *Connection) Close() {
	c.ws.Close()
}

// Handler drives the swipe flow over a WebSocket: the server pushes
// next_question, the client answers with swipe, and a finish message
// (or running out of questions) yields the recommendation.
type Handler struct {
	hub      *Hub
	quizSvc  *service.QuizService
	usageSvc *service.UsageService
	tokenSvc *service.TokenService
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, quizSvc *service.QuizService, usageSvc *service.UsageService, tokenSvc *service.TokenService) *Handler {
	return &Handler{
		hub:      hub,
		quizSvc:  quizSvc,
		usageSvc: usageSvc,
		tokenSvc: tokenSvc,
	}
}

// swipePayload is the client's answer to the current question
type swipePayload struct {
	QuestionID string `json:"questionId"`
	Category   string `json:"category"`
}

// finishPayload asks for the recommendation, optionally with a location
type finishPayload struct {
	Location *model.Location `json:"location,omitempty"`
	MaxPrice int             `json:"maxPrice,omitempty"`
}

// QuizWS handles GET /v1/ws/quiz
func (h *Handler) QuizWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokenSvc.ValidateSessionToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}

	conn := &Connection{SessionID: claims.SessionID, ws: wsConn}
	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	logrus.WithField("session", claims.SessionID).Info("live quiz connected")

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	h.readLoop(conn, r)
}

func (h *Handler) readLoop(conn *Connection, r *http.Request) {
	defer conn.Close()

	for {
		var msg Message
		if err := conn.ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).Debug("websocket read error")
			}
			return
		}
		conn.ws.SetReadDeadline(time.Now().Add(pongWait))

		switch msg.Type {
		case MsgSwipe:
			var payload swipePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				conn.Send(NewMessage(MsgError, map[string]string{"message": "invalid swipe payload"}))
				continue
			}

			question, done, err := h.quizSvc.Answer(r.Context(), conn.SessionID, payload.Category)
			if err != nil {
				conn.Send(NewMessage(MsgError, map[string]string{"message": err.Error()}))
				continue
			}
			if done {
				h.finish(conn, r, finishPayload{})
				return
			}
			conn.Send(NewMessage(MsgNextQuestion, map[string]interface{}{"question": question}))

		case MsgFinish:
			var payload finishPayload
			if len(msg.Payload) > 0 {
				_ = json.Unmarshal(msg.Payload, &payload)
			}
			h.finish(conn, r, payload)
			return

		default:
			conn.Send(NewMessage(MsgError, map[string]string{"message": "unknown message type"}))
		}
	}
}

func (h *Handler) finish(conn *Connection, r *http.Request, payload finishPayload) {
	rec, record, err := h.quizSvc.Recommend(r.Context(), conn.SessionID, payload.Location, payload.MaxPrice)
	if err != nil {
		conn.Send(NewMessage(MsgError, map[string]string{"message": err.Error()}))
		return
	}

	record.UserAgent = r.UserAgent()
	if err := h.usageSvc.TrackCompletion(r.Context(), clientID(r), record); err != nil {
		logrus.WithError(err).Warn("failed to track live quiz completion")
	}

	conn.Send(NewMessage(MsgRecommendation, rec))
}

func clientID(r *http.Request) string {
	if id := r.Header.Get("X-Client-ID"); id != "" {
		return id
	}
	return r.RemoteAddr
}

package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/benbeisheim/chessrules/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	sessionService *service.SessionService
}

func NewWebSocketController(sessionService *service.SessionService) *WebSocketController {
	return &WebSocketController{
		sessionService: sessionService,
	}
}

const writeWait = 10 * time.Second

var errClientClosed = errors.New("client connection closed")

// wsClient serializes writes to one connection. Session deliveries and
// replies from the read loop share it.
type wsClient struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// WriteJSON fails once the handler has returned or a peer stops reading for
// writeWait.
func (wc *wsClient) WriteJSON(v interface{}) error {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if wc.closed {
		return errClientClosed
	}
	if err := wc.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return wc.conn.WriteJSON(v)
}

func (wc *wsClient) markClosed() {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.closed = true
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	sessionID, _ := c.Locals("wsSessionID").(string)
	clientID, _ := c.Locals("wsClientID").(string)
	client := &wsClient{conn: c}

	if err := wsc.sessionService.RegisterConnection(sessionID, clientID, client); err != nil {
		log.Printf("Failed to register connection: %v", err)
		wsc.sendError(client, err)
		client.markClosed()
		c.Close()
		return
	}
	defer func() {
		wsc.sessionService.UnregisterConnection(sessionID, clientID, client)
		client.markClosed()
	}()

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read error: %v", err)
			}
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(client, fmt.Errorf("parse message: %w", err))
			continue
		}
		if err := wsc.handleMessage(sessionID, msg); err != nil {
			wsc.sendError(client, err)
		}
	}
}

// Successful moves and undos reach this client through the session broadcast.
func (wsc *WebSocketController) handleMessage(sessionID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("parse move: %w", err)
		}
		_, err := wsc.sessionService.HandleMove(sessionID, move.Move)
		return err
	case ws.MessageTypeUndo:
		_, err := wsc.sessionService.HandleUndo(sessionID)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(client *wsClient, err error) {
	msg, merr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if merr != nil {
		return
	}
	if werr := client.WriteJSON(msg); werr != nil {
		log.Printf("write error: %v", werr)
	}
}

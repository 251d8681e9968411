package service

import (
	"log"
	"sync"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/ws"
)

// Subscriber receives session events. *websocket.Conn satisfies it.
type Subscriber interface {
	WriteJSON(v interface{}) error
}

// Session is one board under analysis and the clients watching it
type Session struct {
	ID       string
	Nickname string

	mu          sync.Mutex
	board       *model.Board
	subscribers map[string]*subscription // clientID -> subscription
}

const subscriberQueueSize = 16

// subscription feeds one subscriber from its own goroutine, so a slow
// client never holds up the session.
type subscription struct {
	sub   Subscriber
	queue chan ws.Message
}

type PieceState struct {
	Type   model.PieceType `json:"type"`
	Color  model.Color     `json:"color"`
	Square string          `json:"square"`
}

// SessionState is the snapshot sent to HTTP and websocket clients.
type SessionState struct {
	ID         string           `json:"id"`
	Nickname   string           `json:"nickname"`
	FEN        string           `json:"fen"`
	Turn       model.Color      `json:"turn"`
	Pieces     []PieceState     `json:"pieces"`
	History    []string         `json:"history"`
	LastMove   *string          `json:"lastMove"`
	IsCheck    bool             `json:"isCheck"`
	LegalMoves []string         `json:"legalMoves"`
	Result     model.GameResult `json:"result"`
}

func newSession(id, nickname string, board *model.Board) *Session {
	return &Session{
		ID:          id,
		Nickname:    nickname,
		board:       board,
		subscribers: make(map[string]*subscription),
	}
}

func (s *Session) Board() *model.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() SessionState {
	b := s.board
	st := SessionState{
		ID:         s.ID,
		Nickname:   s.Nickname,
		FEN:        b.FEN(),
		Turn:       b.Turn(),
		Pieces:     make([]PieceState, 0, 32),
		History:    model.History(b),
		IsCheck:    model.IsCheck(b),
		LegalMoves: make([]string, 0),
		Result:     model.Result(b),
	}
	for _, sq := range b.Squares() {
		if sq.Empty() {
			continue
		}
		st.Pieces = append(st.Pieces, PieceState{
			Type:   sq.Occupant.Type,
			Color:  sq.Occupant.Color,
			Square: sq.String(),
		})
	}
	if m := b.LastMove(); m != nil {
		uci := m.String()
		st.LastMove = &uci
	}
	for _, m := range model.AllLegalMoves(b) {
		st.LegalMoves = append(st.LegalMoves, m.String())
	}
	return st
}

// apply swaps in the next board and queues the new state for every
// subscriber. Queueing happens under the lock, so clients see states in the
// order they were applied; the writes themselves happen off the lock.
func (s *Session) apply(next func(*model.Board) (*model.Board, error)) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := next(s.board)
	if err != nil {
		return SessionState{}, err
	}
	s.board = b
	st := s.state()
	s.broadcast(ws.MessageTypeSessionState, st)
	return st, nil
}

func (s *Session) subscribe(clientID string, sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, exists := s.subscribers[clientID]; exists {
		if old.sub != sub {
			log.Printf("session %s: replacing subscriber for client %s", s.ID, clientID)
		}
		s.drop(clientID, old)
	}
	subn := &subscription{sub: sub, queue: make(chan ws.Message, subscriberQueueSize)}
	s.subscribers[clientID] = subn
	go s.deliver(clientID, subn)
	s.enqueue(clientID, subn, ws.MessageTypeSessionState, s.state())
}

func (s *Session) unsubscribe(clientID string, sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Only unregister if this is still the current subscriber
	if current, exists := s.subscribers[clientID]; exists && current.sub == sub {
		s.drop(clientID, current)
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.broadcast(ws.MessageTypeClosed, ws.ErrorPayload{Error: "session deleted"})
	for clientID, subn := range s.subscribers {
		s.drop(clientID, subn)
	}
}

func (s *Session) subscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

// broadcast must be called with s.mu held.
func (s *Session) broadcast(t ws.MessageType, payload interface{}) {
	for clientID, subn := range s.subscribers {
		s.enqueue(clientID, subn, t, payload)
	}
}

// enqueue must be called with s.mu held. A subscriber whose queue is full
// has stopped reading and is dropped.
func (s *Session) enqueue(clientID string, subn *subscription, t ws.MessageType, payload interface{}) {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		log.Printf("session %s: marshal %s: %v", s.ID, t, err)
		return
	}
	select {
	case subn.queue <- msg:
	default:
		log.Printf("session %s: dropping client %s: queue full", s.ID, clientID)
		s.drop(clientID, subn)
	}
}

// drop must be called with s.mu held.
func (s *Session) drop(clientID string, subn *subscription) {
	if s.subscribers[clientID] != subn {
		return
	}
	delete(s.subscribers, clientID)
	close(subn.queue)
}

// deliver writes queued messages until the queue is closed or a write fails.
func (s *Session) deliver(clientID string, subn *subscription) {
	for msg := range subn.queue {
		if err := subn.sub.WriteJSON(msg); err != nil {
			log.Printf("session %s: dropping client %s: %v", s.ID, clientID, err)
			s.mu.Lock()
			s.drop(clientID, subn)
			s.mu.Unlock()
			return
		}
	}
}

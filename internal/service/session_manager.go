package service

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chessrules/internal/model"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNothingToUndo   = errors.New("no move to undo")
)

type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// CreateSession starts a session from the initial position, or from fen when
// it is not empty.
func (sm *SessionManager) CreateSession(fen string) (*Session, error) {
	board := model.NewBoard()
	if fen != "" {
		var err error
		if board, err = model.ParseFEN(fen); err != nil {
			return nil, err
		}
	}

	session := newSession(uuid.New().String(), petname.Generate(2, "-"), board)

	sm.mu.Lock()
	sm.sessions[session.ID] = session
	sm.mu.Unlock()

	log.Printf("created session %s (%s)", session.ID, session.Nickname)
	return session, nil
}

func (sm *SessionManager) GetSession(sessionID string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, fmt.Errorf("%s: %w", sessionID, ErrSessionNotFound)
	}
	return session, nil
}

func (sm *SessionManager) GetSessionState(sessionID string) (SessionState, error) {
	session, err := sm.GetSession(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	return session.State(), nil
}

// LegalMoves lists the UCI moves available to the piece on square. A square
// that is empty or holds a piece of the side not on turn yields no moves.
func (sm *SessionManager) LegalMoves(sessionID, square string) ([]string, error) {
	session, err := sm.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return legalMovesFrom(session.Board(), square)
}

func (sm *SessionManager) MakeMove(sessionID, uci string) (SessionState, error) {
	session, err := sm.GetSession(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	return session.apply(func(b *model.Board) (*model.Board, error) {
		m, err := model.ParseMove(b, uci)
		if err != nil {
			return nil, err
		}
		return b.ApplyMove(m), nil
	})
}

func (sm *SessionManager) Undo(sessionID string) (SessionState, error) {
	session, err := sm.GetSession(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	return session.apply(func(b *model.Board) (*model.Board, error) {
		prev := b.Previous()
		if prev == nil {
			return nil, ErrNothingToUndo
		}
		return prev, nil
	})
}

func (sm *SessionManager) DeleteSession(sessionID string) error {
	sm.mu.Lock()
	session, exists := sm.sessions[sessionID]
	delete(sm.sessions, sessionID)
	sm.mu.Unlock()

	if !exists {
		return fmt.Errorf("%s: %w", sessionID, ErrSessionNotFound)
	}
	session.close()
	log.Printf("deleted session %s", sessionID)
	return nil
}

// Subscribe registers sub for state events and sends it the current state.
func (sm *SessionManager) Subscribe(sessionID, clientID string, sub Subscriber) error {
	session, err := sm.GetSession(sessionID)
	if err != nil {
		return err
	}
	session.subscribe(clientID, sub)
	return nil
}

func (sm *SessionManager) Unsubscribe(sessionID, clientID string, sub Subscriber) {
	session, err := sm.GetSession(sessionID)
	if err != nil {
		return
	}
	session.unsubscribe(clientID, sub)
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func legalMovesFrom(b *model.Board, square string) ([]string, error) {
	pos, err := model.ParsePosition(square)
	if err != nil {
		return nil, err
	}
	moves := make([]string, 0)
	p := b.PieceAt(pos)
	if p == nil || p.Color != b.Turn() {
		return moves, nil
	}
	for _, m := range model.LegalMoves(p, b) {
		moves = append(moves, m.String())
	}
	return moves, nil
}

package service

import (
	"github.com/benbeisheim/chessrules/internal/model"
)

type SessionService struct {
	sessionManager *SessionManager
}

func NewSessionService(sessionManager *SessionManager) *SessionService {
	return &SessionService{
		sessionManager: sessionManager,
	}
}

// PositionAnalysis answers a one-off question about a FEN position.
type PositionAnalysis struct {
	FEN     string           `json:"fen"`
	Turn    model.Color      `json:"turn"`
	Moves   []string         `json:"moves,omitempty"`
	IsCheck bool             `json:"isCheck"`
	Result  model.GameResult `json:"result"`
}

func (ss *SessionService) CreateSession(fen string) (SessionState, error) {
	session, err := ss.sessionManager.CreateSession(fen)
	if err != nil {
		return SessionState{}, err
	}
	return session.State(), nil
}

func (ss *SessionService) GetSessionState(sessionID string) (SessionState, error) {
	return ss.sessionManager.GetSessionState(sessionID)
}

func (ss *SessionService) LegalMoves(sessionID, square string) ([]string, error) {
	return ss.sessionManager.LegalMoves(sessionID, square)
}

func (ss *SessionService) HandleMove(sessionID, uci string) (SessionState, error) {
	return ss.sessionManager.MakeMove(sessionID, uci)
}

func (ss *SessionService) HandleUndo(sessionID string) (SessionState, error) {
	return ss.sessionManager.Undo(sessionID)
}

func (ss *SessionService) DeleteSession(sessionID string) error {
	return ss.sessionManager.DeleteSession(sessionID)
}

func (ss *SessionService) RegisterConnection(sessionID, clientID string, sub Subscriber) error {
	return ss.sessionManager.Subscribe(sessionID, clientID, sub)
}

func (ss *SessionService) UnregisterConnection(sessionID, clientID string, sub Subscriber) {
	ss.sessionManager.Unsubscribe(sessionID, clientID, sub)
}

// PositionMoves lists the legal moves from square in the given position.
func (ss *SessionService) PositionMoves(fen, square string) (PositionAnalysis, error) {
	b, err := model.ParseFEN(fen)
	if err != nil {
		return PositionAnalysis{}, err
	}
	moves, err := legalMovesFrom(b, square)
	if err != nil {
		return PositionAnalysis{}, err
	}
	a := analyse(b)
	a.Moves = moves
	return a, nil
}

// PositionResult evaluates check and game termination for the given position.
func (ss *SessionService) PositionResult(fen string) (PositionAnalysis, error) {
	b, err := model.ParseFEN(fen)
	if err != nil {
		return PositionAnalysis{}, err
	}
	return analyse(b), nil
}

func analyse(b *model.Board) PositionAnalysis {
	return PositionAnalysis{
		FEN:     b.FEN(),
		Turn:    b.Turn(),
		IsCheck: model.IsCheck(b),
		Result:  model.Result(b),
	}
}

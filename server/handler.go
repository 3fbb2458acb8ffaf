package server

import (
	"errors"
	"net/http"
	"path"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/daystram/rookery/board"
	"github.com/daystram/rookery/game"
	"github.com/daystram/rookery/position"
)

type createGameRequest struct {
	White string `json:"white" validate:"required,oneof=human computer1 computer2 computer3 computer4"`
	Black string `json:"black" validate:"required,oneof=human computer1 computer2 computer3 computer4"`
}

// moveRequest is empty when the computer to move should play.
type moveRequest struct {
	From      string `json:"from" validate:"required_with=To,omitempty,len=2"`
	To        string `json:"to" validate:"required_with=From,omitempty,len=2"`
	Promotion string `json:"promotion" validate:"omitempty,oneof=q r b n Q R B N"`
}

type scoreResponse struct {
	White float64 `json:"white"`
	Black float64 `json:"black"`
}

type gameResponse struct {
	Href       string        `json:"href"`
	ID         string        `json:"id"`
	White      string        `json:"white"`
	Black      string        `json:"black"`
	FEN        string        `json:"fen"`
	Turn       string        `json:"turn"`
	State      string        `json:"state"`
	InProgress bool          `json:"inProgress"`
	Outcome    string        `json:"outcome,omitempty"`
	LastMove   string        `json:"lastMove,omitempty"`
	Score      scoreResponse `json:"score"`
}

type gamesResponse struct {
	Href  string   `json:"href"`
	Games []string `json:"games"`
}

type movesResponse struct {
	Href  string   `json:"href"`
	Moves []string `json:"moves"`
}

func errToHTTP(err error) error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return echo.ErrNotFound
	case errors.Is(err, game.ErrIllegalMove):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, game.ErrNoGame),
		errors.Is(err, game.ErrComputerTurn),
		errors.Is(err, game.ErrHumanTurn):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrInvalidPlayer),
		errors.Is(err, position.ErrInvalidNotation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}

func requestEntry(st *store, c echo.Context) (*entry, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	e, err := st.get(id)
	if err != nil {
		return nil, errToHTTP(err)
	}
	return e, nil
}

func stateName(st board.State) string {
	return strings.ToLower(strings.TrimPrefix(st.String(), "State"))
}

// responseGame must be called with the entry locked.
func responseGame(s *game.Session, lastMove string) gameResponse {
	white, black := s.Players()
	scoreWhite, scoreBlack := s.Score()
	b := s.Board()
	last := s.Last()
	return gameResponse{
		Href:       path.Join("/games", s.ID().String()),
		ID:         s.ID().String(),
		White:      white.String(),
		Black:      black.String(),
		FEN:        b.FEN(),
		Turn:       strings.ToLower(b.Turn().String()),
		State:      stateName(last.State),
		InProgress: s.InProgress(),
		Outcome:    last.String(),
		LastMove:   lastMove,
		Score:      scoreResponse{White: scoreWhite, Black: scoreBlack},
	}
}

func (s *Server) listGames(c echo.Context) error {
	return c.JSON(http.StatusOK, gamesResponse{Href: "/games", Games: s.store.ids()})
}

func (s *Server) createGame(c echo.Context) error {
	var request createGameRequest
	if err := c.Bind(&request); err != nil {
		return err
	}
	if err := c.Validate(&request); err != nil {
		return err
	}
	white, err := game.ParsePlayer(request.White)
	if err != nil {
		return errToHTTP(err)
	}
	black, err := game.ParsePlayer(request.Black)
	if err != nil {
		return errToHTTP(err)
	}

	n := atomic.AddUint64(&s.created, 1)
	session := game.NewSession(
		game.WithSeed(s.seed+n*2),
		game.WithLogger(s.logger),
	)
	if err := session.Start(white, black); err != nil {
		return errToHTTP(err)
	}
	s.store.add(session)
	return c.JSON(http.StatusCreated, responseGame(session, ""))
}

func (s *Server) getGame(c echo.Context) error {
	e, err := requestEntry(s.store, c)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return c.JSON(http.StatusOK, responseGame(e.session, ""))
}

func (s *Server) legalMoves(c echo.Context) error {
	e, err := requestEntry(s.store, c)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	response := movesResponse{
		Href:  path.Join("/games", e.session.ID().String(), "moves"),
		Moves: []string{},
	}
	mvs, err := e.session.LegalMoves()
	if err != nil && !errors.Is(err, game.ErrNoGame) {
		return errToHTTP(err)
	}
	for _, mv := range mvs {
		response.Moves = append(response.Moves, mv.UCI())
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) playMove(c echo.Context) error {
	e, err := requestEntry(s.store, c)
	if err != nil {
		return err
	}
	var request moveRequest
	if err := c.Bind(&request); err != nil {
		return err
	}
	if err := c.Validate(&request); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if request.From == "" {
		mv, _, err := e.session.ComputerMove(c.Request().Context())
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(e.session, mv.UCI()))
	}

	from, err := position.NewPosFromNotation(request.From)
	if err != nil {
		return errToHTTP(err)
	}
	to, err := position.NewPosFromNotation(request.To)
	if err != nil {
		return errToHTTP(err)
	}
	promotion := board.PieceUnknown
	if request.Promotion != "" {
		promotion, _, _ = board.NewPieceFromSymbol(rune(request.Promotion[0]))
	}
	if _, err := e.session.Move(from, to, promotion); err != nil {
		return errToHTTP(err)
	}
	return c.JSON(http.StatusOK, responseGame(e.session, board.NewMove(from, to, promotion).UCI()))
}

func (s *Server) resign(c echo.Context) error {
	e, err := requestEntry(s.store, c)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.session.Resign(); err != nil {
		return errToHTTP(err)
	}
	return c.JSON(http.StatusOK, responseGame(e.session, ""))
}

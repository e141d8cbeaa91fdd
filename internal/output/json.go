package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID        string     `json:"id"`
	Turn      string     `json:"turn"`
	State     string     `json:"state"`
	Winner    string     `json:"winner,omitempty"`
	Placement string     `json:"placement"`
	Moves     []JSONMove `json:"moves,omitempty"`
	PlyCount  int        `json:"plyCount"`
}

// JSONMove represents a ply in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	Notation   string `json:"notation"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Check      bool   `json:"check,omitempty"`
	Mate       bool   `json:"mate,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game) *JSONGame {
	state := g.State()
	jg := &JSONGame{
		ID:        g.ID().String(),
		Turn:      strings.ToLower(g.Turn().String()),
		State:     state.Phase.String(),
		Placement: g.Placement(),
	}
	if state.Phase == game.Checkmate {
		jg.Winner = strings.ToLower(state.By.String())
	}

	history := g.History()
	jg.PlyCount = len(history)
	for _, p := range history {
		jg.Moves = append(jg.Moves, plyToJSON(p))
	}
	return jg
}

func plyToJSON(p game.Ply) JSONMove {
	m := JSONMove{
		MoveNumber: p.MoveNumber(),
		Color:      strings.ToLower(p.Colour.String()),
		Notation:   p.Notation(),
		UCI:        p.From.String() + p.To.String(),
		From:       p.From.String(),
		To:         p.To.String(),
		Piece:      kindName(p.Piece),
		Captured:   kindName(p.Captured),
		Promotion:  kindName(p.Promotion),
		Check:      p.Check,
		Mate:       p.Mate,
	}
	if p.Promotion != 0 {
		m.UCI += strings.ToLower(string(p.Promotion.Letter()))
	}
	return m
}

// OutputGameJSON writes a single game in indented JSON format.
func OutputGameJSON(g *game.Game, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g))
}

// OutputGamesJSON writes multiple games as a JSON object holding an array.
func OutputGamesJSON(games []*game.Game, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, 0, len(games))}
	for _, g := range games {
		out.Games = append(out.Games, GameToJSON(g))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// kindName is the lower-case name of a kind, or "" for none.
func kindName(k chess.Kind) string {
	if k == 0 {
		return ""
	}
	return strings.ToLower(k.String())
}

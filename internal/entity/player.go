package entity

// Player is one side of a session: the human at the terminal or the engine.
type Player struct {
	Name  string `json:"name"`
	Mark  Mark   `json:"mark,omitempty"`
	IsBot bool   `json:"is_bot,omitempty"`
}

func NewHumanPlayer(name string, mark Mark) *Player {
	return &Player{Name: name, Mark: mark}
}

func NewBotPlayer(mark Mark) *Player {
	return &Player{Name: "AI", Mark: mark, IsBot: true}
}

package http

// CreateGameRequest represents the payload for /games.
type CreateGameRequest struct {
	Creator  string `json:"creator"`
	Opponent string `json:"opponent"`
}

// MoveRequest represents one card placement.
type MoveRequest struct {
	GameID uint64 `json:"game_id"`
	Player string `json:"player"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	CardID string `json:"card_id"`
}

// MintRequest represents the payload for /cards/mint.
type MintRequest struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// TransferRequest represents the payload for /cards/transfer.
type TransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	CardID string `json:"card_id"`
}

// TagRequest represents the payload for /profiles/tag.
type TagRequest struct {
	Player string `json:"player"`
	Tag    string `json:"tag"`
}

// AvatarRequest represents the payload for /profiles/avatar.
type AvatarRequest struct {
	Player string `json:"player"`
	CID    string `json:"cid"`
}

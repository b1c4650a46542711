package preview_move

// PreviewMoveRequest HTTP request model
type PreviewMoveRequest struct {
	FromIndex int `json:"fromIndex"`
	ToIndex   int `json:"toIndex"`
}

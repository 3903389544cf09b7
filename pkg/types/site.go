package types

// Advertisement slot positions.
const (
	AdPositionLeft  = "left"
	AdPositionRight = "right"
)

// Ad is an advertisement slot shown beside the navigation grid.
type Ad struct {
	ID       int64  `json:"id"`
	Position string `json:"position"`
	Img      string `json:"img"`
	URL      string `json:"url"`
}

// ValidAdPosition reports whether p is a recognized slot position.
func ValidAdPosition(p string) bool {
	return p == AdPositionLeft || p == AdPositionRight
}

// Friend is an entry in the friend-links footer.
type Friend struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Logo  string `json:"logo,omitempty"`
}

package roast

// Roast is one comparative joke.
type Roast struct {
	Aspect string `json:"aspect"`
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
	Roast  string `json:"roast"`
}

// RoastsPerComparison is how many blocks the prompt asks for.
const RoastsPerComparison = 10

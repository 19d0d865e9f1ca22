package store

// Store is one pickup location with its static availability set. Stores are
// loaded once and never mutated.
type Store struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Lat           float64  `json:"lat"`
	Lon           float64  `json:"lon"`
	AvailableSKUs []string `json:"availableSKUs"`
}

// Details is the store payload returned to clients.
type Details struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

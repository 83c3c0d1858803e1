package entity

// Register is a physical point-of-sale terminal. The backend owns the list;
// we only ever read it. Timestamps come over the wire as strings and are
// display-only, so they stay strings here.
type Register struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

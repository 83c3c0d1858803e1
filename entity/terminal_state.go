package entity

// TerminalState is a key/value row for the little state the terminal keeps
// across restarts (currently just the selected register id).
type TerminalState struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

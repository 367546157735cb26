package models

// Setting is a key/value preference. The key is the effective identity:
// writing an existing key updates its value and keeps its id.
type Setting struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// InsertSetting is the body of a settings write; the key comes from the URL.
type InsertSetting struct {
	Value string `json:"value" validate:"required"`
}

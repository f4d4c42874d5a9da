package models

// Entry represents a cache entry as exposed over HTTP. Value carries the
// raw stored bytes, base64-encoded in JSON. Found is false in responses
// for keys that are missing or expired
type Entry struct {
	Key   string `json:"key"`
	Value []byte `json:"value"`
	Found bool   `json:"found"`
}

package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UpstreamError membawa status dan pesan verbatim dari backend.
// Pesan backend di-surface apa adanya ke user.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

func newUpstreamError(status int, raw []byte) *UpstreamError {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(raw, &env)

	msg := strings.TrimSpace(env.Message)
	if msg == "" {
		msg = strings.TrimSpace(env.Error)
	}
	return &UpstreamError{StatusCode: status, Message: msg}
}

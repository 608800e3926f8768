package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session menentukan pemilik state storefront (cart lokal, draft
// checkout). User login memakai user_id dari token; guest memakai
// X-Session-ID yang di-echo balik agar browser bisa menyimpannya —
// padanan key localStorage pada frontend lama.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("user_id")
		if sessionID == "" {
			sessionID = c.GetString("user_id_validated")
		}
		if sessionID == "" {
			sessionID = c.GetHeader("X-Session-ID")
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set("session_id", sessionID)
		c.Writer.Header().Set("X-Session-ID", sessionID)
		c.Next()
	}
}

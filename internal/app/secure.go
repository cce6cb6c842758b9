package app

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// secureMiddleware sets browser security headers on every response.
func secureMiddleware() gin.HandlerFunc {
	return secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		IENoOpen:           true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})
}

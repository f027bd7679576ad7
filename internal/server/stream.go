package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiltalaviya99/portfolio/internal/content"
	"github.com/sahiltalaviya99/portfolio/internal/quotes"
)

// streamQuotes sends the current quote and then one event per rotation.
// Each connection owns its rotator, so every visitor starts from the
// first quote and the timer stops when the client goes away.
func (s *Server) streamQuotes(c *gin.Context) {
	latest := make(chan quotes.Quote, 1)
	rot, err := quotes.NewRotator(content.Quotes(),
		quotes.WithClock(s.clock),
		quotes.OnChange(func(ch quotes.Change) {
			// Keep only the newest quote if the client is slow.
			for {
				select {
				case latest <- ch.To:
					return
				default:
				}
				select {
				case <-latest:
				default:
				}
			}
		}),
	)
	if err != nil {
		s.logger.Error("failed to start quote rotator", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("quote", rot.Current())
	c.Writer.Flush()

	ctx, cancel := context.WithCancel(c.Request.Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = rot.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case q := <-latest:
			c.SSEvent("quote", q)
			c.Writer.Flush()
		}
	}
}

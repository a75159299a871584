package api

import (
	"context"
	"fmt"
	"sync"

	"manito/domain/entities"
	"manito/domain/interfaces"
	"manito/events"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Server is the HTTP adapter over the draw services. It holds no allocation
// logic; its only state is a cache of drawn giver ids kept fresh through the
// event bus so the roster picker can hide participants that already drew.
type Server struct {
	router     *gin.Engine
	roster     *entities.Roster
	draws      interfaces.DrawService
	wishlists  interfaces.WishlistService
	admin      interfaces.AdminService
	completion interfaces.CompletionService
	adminToken string

	mu    sync.RWMutex
	drawn map[string]bool
}

// NewServer creates the HTTP server, seeds the drawn-giver cache from the
// store, and subscribes it to draw events
func NewServer(
	ctx context.Context,
	roster *entities.Roster,
	draws interfaces.DrawService,
	wishlists interfaces.WishlistService,
	admin interfaces.AdminService,
	completion interfaces.CompletionService,
	bus *events.Bus,
	adminToken string,
) (*Server, error) {
	s := &Server{
		roster:     roster,
		draws:      draws,
		wishlists:  wishlists,
		admin:      admin,
		completion: completion,
		adminToken: adminToken,
		drawn:      make(map[string]bool),
	}

	// Seed the cache; afterwards the bus keeps it current
	giverIDs, err := draws.DrawnGivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed drawn-giver cache: %w", err)
	}
	for _, id := range giverIDs {
		s.drawn[id] = true
	}

	bus.Subscribe(events.EventTypeDrawCommitted, s.onDrawCommitted)
	bus.Subscribe(events.EventTypeDrawsReset, s.onDrawsReset)

	s.router = gin.New()
	s.router.Use(gin.Recovery(), requestLogger())
	s.registerRoutes()

	return s, nil
}

// Router exposes the underlying handler for http.Server and tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) registerRoutes() {
	apiGroup := s.router.Group("/api")
	{
		apiGroup.GET("/participants", s.listParticipants)
		apiGroup.POST("/draws", s.commitDraw)
		apiGroup.POST("/draws/reveal", s.revealDraw)
		apiGroup.GET("/status", s.getStatus)
		apiGroup.GET("/wishlists/:user_id", s.getWishlist)
		apiGroup.PUT("/wishlists/:user_id", s.putWishlist)
		apiGroup.POST("/admin/reset", s.requireAdmin, s.adminReset)
	}
}

func (s *Server) onDrawCommitted(ctx context.Context, event events.Event) {
	committed, ok := event.(events.DrawCommittedEvent)
	if !ok {
		return
	}
	s.mu.Lock()
	s.drawn[committed.GiverID] = true
	s.mu.Unlock()
}

func (s *Server) onDrawsReset(ctx context.Context, event events.Event) {
	s.mu.Lock()
	s.drawn = make(map[string]bool)
	s.mu.Unlock()
}

func (s *Server) hasDrawn(giverID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drawn[giverID]
}

// requestLogger logs each request through logrus
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}).Info("Request handled")
	}
}

// requireAdmin guards administrative endpoints with the configured token
func (s *Server) requireAdmin(c *gin.Context) {
	if s.adminToken == "" || c.GetHeader("X-Admin-Token") != s.adminToken {
		c.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
		return
	}
	c.Next()
}

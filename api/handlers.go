package api

import (
	"errors"
	"net/http"

	"manito/domain/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// participantView is the roster entry exposed to the picker
type participantView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
	Drawn bool   `json:"drawn"`
}

type commitDrawRequest struct {
	GiverID  string `json:"giver_id" binding:"required"`
	Wishlist string `json:"wishlist"`
}

type revealDrawRequest struct {
	GiverID string `json:"giver_id" binding:"required"`
	Code    string `json:"code" binding:"required"`
}

type wishlistRequest struct {
	Wishlist string `json:"wishlist"`
}

// listParticipants returns the roster with a per-participant drawn flag
func (s *Server) listParticipants(c *gin.Context) {
	views := make([]participantView, 0, s.roster.Size())
	for _, p := range s.roster.All() {
		views = append(views, participantView{
			ID:    p.ID,
			Name:  p.Name,
			Group: p.Group,
			Drawn: s.hasDrawn(p.ID),
		})
	}
	c.JSON(http.StatusOK, gin.H{"participants": views})
}

// commitDraw saves the giver's wishlist and commits a draw. A giver that
// already drew gets already_drawn with no recipient; revealing again is
// gated behind the secret code.
func (s *Server) commitDraw(c *gin.Context) {
	var req commitDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "giver_id is required"})
		return
	}

	if req.Wishlist != "" {
		if err := s.wishlists.Upsert(c.Request.Context(), req.GiverID, req.Wishlist); err != nil {
			s.renderError(c, err)
			return
		}
	}

	result, err := s.draws.Commit(c.Request.Context(), req.GiverID)
	if err != nil {
		s.renderError(c, err)
		return
	}

	if result.AlreadyDrawn {
		c.JSON(http.StatusOK, gin.H{"already_drawn": true})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"recipient": gin.H{
			"id":    result.Recipient.ID,
			"name":  result.Recipient.Name,
			"group": result.Recipient.Group,
		},
		"secret_code": result.SecretCode,
		"drawn_at":    result.DrawnAt,
	})
}

// revealDraw returns the giver's assignment after code verification
func (s *Server) revealDraw(c *gin.Context) {
	var req revealDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "giver_id and code are required"})
		return
	}

	result, err := s.draws.Reveal(c.Request.Context(), req.GiverID, req.Code)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipient": gin.H{
			"id":    result.Recipient.ID,
			"name":  result.Recipient.Name,
			"group": result.Recipient.Group,
		},
		"recipient_wishlist": result.RecipientWishlist,
	})
}

// getStatus reports exchange progress
func (s *Server) getStatus(c *gin.Context) {
	status, err := s.completion.Status(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// getWishlist returns a participant's own wishlist
func (s *Server) getWishlist(c *gin.Context) {
	text, err := s.wishlists.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": text})
}

// putWishlist creates or replaces a participant's wishlist
func (s *Server) putWishlist(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wishlist payload"})
		return
	}

	if err := s.wishlists.Upsert(c.Request.Context(), c.Param("user_id"), req.Wishlist); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// adminReset clears all draws and wishlists
func (s *Server) adminReset(c *gin.Context) {
	if err := s.admin.ResetAll(c.Request.Context()); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// renderError maps domain error kinds to HTTP responses. Unclassified errors
// are logged and surfaced as a generic failure; no store error detail leaks.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownParticipant):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown participant"})
	case errors.Is(err, services.ErrNoEligibleRecipients):
		c.JSON(http.StatusConflict, gin.H{"error": "no eligible recipients remain, contact the organizer"})
	case errors.Is(err, services.ErrRetriesExhausted):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "draw is contested, please try again"})
	case errors.Is(err, services.ErrInvalidSecretCode):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret code"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}

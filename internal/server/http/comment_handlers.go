package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (s *Server) handleCreateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := s.comments.Create(c.Request.Context(), c.Param("id"), currentUserID(c), req.Content)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCommentView(comment))
}

func (s *Server) handleGetComment(c *gin.Context) {
	comment, err := s.comments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCommentView(comment))
}

func (s *Server) handleListPostComments(c *gin.Context) {
	comments, err := s.comments.ListByPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	views := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		views = append(views, newCommentView(cm))
	}
	c.JSON(http.StatusOK, views)
}

func (s *Server) handleUpdateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := s.comments.Update(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCommentView(comment))
}

func (s *Server) handleDeleteComment(c *gin.Context) {
	if err := s.comments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type postRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (s *Server) handleCreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := s.posts.Create(c.Request.Context(), currentUserID(c), req.Title, req.Content)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPostView(post))
}

func (s *Server) handleGetPost(c *gin.Context) {
	post, err := s.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPostView(post))
}

// handleListPosts returns all posts, optionally filtered by author via the
// "author" query parameter.
func (s *Server) handleListPosts(c *gin.Context) {
	posts, err := s.posts.List(c.Request.Context(), c.Query("author"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, newPostView(p))
	}
	c.JSON(http.StatusOK, views)
}

func (s *Server) handleUpdatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := s.posts.Update(c.Request.Context(), c.Param("id"), req.Title, req.Content)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPostView(post))
}

func (s *Server) handleDeletePost(c *gin.Context) {
	if err := s.posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

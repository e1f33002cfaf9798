package httpapi

import (
	"errors"
	"net/http"

	postEntity "dhvanicast/internal/core/post"
	postapp "dhvanicast/internal/core/post/service"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Kind        string   `json:"kind" binding:"required"`
		Caption     string   `json:"caption"`
		City        string   `json:"city"`
		Tags        []string `json:"tags"`
		Images      []string `json:"images"`
		VideoURL    string   `json:"videoUrl"`
		PollOptions []string `json:"options"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), userID.(string), postapp.CreatePostInput{
		Kind:        req.Kind,
		Caption:     req.Caption,
		City:        req.City,
		Tags:        req.Tags,
		Images:      req.Images,
		VideoURL:    req.VideoURL,
		PollOptions: req.PollOptions,
	})
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func isValidationError(err error) bool {
	return errors.Is(err, postEntity.ErrCaptionTooLong) ||
		errors.Is(err, postEntity.ErrUnknownKind) ||
		errors.Is(err, postEntity.ErrBadPoll) ||
		errors.Is(err, postEntity.ErrEmptyMedia)
}

func (ctl *PostController) ToggleLike(c *gin.Context) {
	likes, liked, err := ctl.pc.ToggleLike(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		// the optimistic flip was already reverted; tell the client its
		// pre-click state still holds
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not toggle like", "liked": liked})
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes, "liked": liked})
}

func (ctl *PostController) RecordView(c *gin.Context) {
	if err := ctl.pc.RecordView(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *PostController) GetPost(c *gin.Context) {
	res, err := ctl.pc.GetPost(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

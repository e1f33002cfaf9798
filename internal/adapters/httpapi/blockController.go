package httpapi

import (
	"errors"
	"net/http"

	blockapp "dhvanicast/internal/core/block/service"

	"github.com/gin-gonic/gin"
)

type BlockController struct{ bc BlockUseCase }

func NewBlockController(bc BlockUseCase) *BlockController { return &BlockController{bc: bc} }

func (ctl *BlockController) Submit(c *gin.Context) {
	var req struct {
		BlockedUserName string `json:"blockedUserName" binding:"required"`
		Reason          string `json:"reason" binding:"required"`
		PostID          string `json:"postId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	userID := c.GetString("userID")
	res, err := ctl.bc.Submit(c.Request.Context(), userID, sessionID(c), req.BlockedUserName, req.Reason, req.PostID)
	if err != nil {
		if errors.Is(err, blockapp.ErrEmptyTarget) || errors.Is(err, blockapp.ErrEmptyReason) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not submit block request"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "block request pending review", "request": res})
}

func (ctl *BlockController) Pending(c *gin.Context) {
	res, err := ctl.bc.Pending(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch block requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": res})
}

package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ChatController struct{ cc ChatUseCase }

func NewChatController(cc ChatUseCase) *ChatController { return &ChatController{cc: cc} }

func (ctl *ChatController) History(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	res, err := ctl.cc.History(c.Request.Context(), c.GetString("userID"), c.Param("peerId"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": res})
}

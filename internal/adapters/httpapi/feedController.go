package httpapi

import (
	"net/http"
	"strconv"

	"dhvanicast/internal/core/feed"
	feedapp "dhvanicast/internal/core/feed/service"

	"github.com/gin-gonic/gin"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController { return &FeedController{fc: fc} }

func (ctl *FeedController) GetFeed(c *gin.Context) {
	ctl.serveFeed(c, c.Query("city"))
}

func (ctl *FeedController) GetFeedByCity(c *gin.Context) {
	ctl.serveFeed(c, c.Param("city"))
}

func (ctl *FeedController) serveFeed(c *gin.Context, city string) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	res, err := ctl.fc.BuildFeed(c.Request.Context(), feedapp.FeedQuery{
		ViewerID:  c.GetString("userID"),
		SessionID: sessionID(c),
		City:      city,
		Search:    c.Query("q"),
		Policy:    feed.SortPolicy(c.DefaultQuery("sort", string(feed.SortLatest))),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch feed"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *FeedController) Repost(c *gin.Context) {
	var req struct {
		AuthorName string `json:"authorName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := ctl.fc.RepostAuthor(c.Request.Context(), sessionID(c), req.AuthorName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not repost"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reposted": req.AuthorName})
}

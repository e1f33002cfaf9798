package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdController struct{ ac AdUseCase }

func NewAdController(ac AdUseCase) *AdController { return &AdController{ac: ac} }

func (ctl *AdController) CreateAd(c *gin.Context) {
	var req struct {
		Sponsor  string `json:"sponsor" binding:"required"`
		Title    string `json:"title" binding:"required"`
		ImageURL string `json:"imageUrl"`
		LinkURL  string `json:"linkUrl"`
		City     string `json:"city"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.ac.CreateAd(c.Request.Context(), req.Sponsor, req.Title, req.ImageURL, req.LinkURL, req.City)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create ad"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *AdController) ListActive(c *gin.Context) {
	res, err := ctl.ac.ListActive(c.Request.Context(), c.Query("city"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch ads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ads": res})
}

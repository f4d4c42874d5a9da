package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MindFiv/FivcGlue/caches"
	"github.com/MindFiv/FivcGlue/forms"
	"github.com/MindFiv/FivcGlue/models"
	"github.com/MindFiv/FivcGlue/service"
	"github.com/gin-gonic/gin"
)

// CacheController handles cache entry HTTP requests and responses
type CacheController struct {
	cache *service.CacheService
}

var cacheForm = new(forms.CacheForm)

func NewCacheController(cache *service.CacheService) *CacheController {
	return &CacheController{cache: cache}
}

// Get retrieves the entry stored under the key path parameter. Missing
// and expired keys yield a 404 with found=false
func (ctrl CacheController) Get(c *gin.Context) {
	key := c.Param("key")

	value, err := ctrl.cache.Get(key)
	if errors.Is(err, caches.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.Entry{Key: key, Found: false})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "cache backend unavailable"})
		return
	}

	c.JSON(http.StatusOK, models.Entry{Key: key, Value: value, Found: true})
}

// Set stores an entry from a validated form, overwriting any previous
// value and resetting its TTL
func (ctrl CacheController) Set(c *gin.Context) {
	var entryForm forms.SetEntryForm

	if validationErr := c.ShouldBindJSON(&entryForm); validationErr != nil {
		message := cacheForm.Set(validationErr)
		c.AbortWithStatusJSON(http.StatusNotAcceptable, gin.H{"message": message})
		return
	}

	ttl := time.Duration(entryForm.TTLSeconds) * time.Second
	if err := ctrl.cache.Set(entryForm.Key, entryForm.Value, ttl); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "cache backend unavailable"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Entry stored successfully"})
}

// Delete removes the entry stored under the key path parameter
func (ctrl CacheController) Delete(c *gin.Context) {
	key := c.Param("key")

	err := ctrl.cache.Delete(key)
	if errors.Is(err, caches.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.Entry{Key: key, Found: false})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "cache backend unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}

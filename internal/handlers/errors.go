package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chachabrian/profast-backend/internal/database"
	"github.com/chachabrian/profast-backend/internal/logger"
	"github.com/chachabrian/profast-backend/internal/models"
)

var errNotObject = errors.New("request body must be a JSON object")

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// failure answers 400 for malformed ids. Anything else is logged and
// answered 500 with message; driver detail never reaches the client.
func failure(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, database.ErrInvalidID):
		badRequest(c, "Invalid id")
	default:
		logger.FromContext(c.Request.Context()).Error().Err(err).
			Str("route", c.FullPath()).
			Msg(message)
		c.JSON(http.StatusInternalServerError, gin.H{"message": message})
	}
}

// bindDocument decodes a body that is stored as-is. Arrays, scalars and null
// are rejected. Numbers stay json.Number so integers are stored as integers.
func bindDocument(c *gin.Context) (models.Document, error) {
	var doc models.Document
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotObject, err)
	}
	if doc == nil {
		return nil, errNotObject
	}
	return doc, nil
}

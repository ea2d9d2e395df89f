package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chachabrian/profast-backend/internal/database"
)

// ListParcels returns every parcel, or only those created by ?email=,
// newest first.
func ListParcels(parcels ParcelStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := parcels.List(c.Request.Context(), c.Query("email"))
		if err != nil {
			failure(c, err, "Failed to get parcels")
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

func GetParcel(parcels ParcelStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		parcel, err := parcels.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, database.ErrNotFound) {
			notFound(c, "Parcel not found")
			return
		}
		if err != nil {
			failure(c, err, "Failed to get parcel")
			return
		}

		c.JSON(http.StatusOK, parcel)
	}
}

// CreateParcel stores the request body verbatim.
func CreateParcel(parcels ParcelStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := bindDocument(c)
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		result, err := parcels.Create(c.Request.Context(), doc)
		if err != nil {
			failure(c, err, "Failed to create parcel")
			return
		}

		c.JSON(http.StatusCreated, result)
	}
}

// DeleteParcel answers with the delete result whether or not the parcel existed.
func DeleteParcel(parcels ParcelStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := parcels.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			failure(c, err, "Failed to delete parcel")
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetTodayStats(ctx *gin.Context) {
	stats, err := orderService().GetTodayStats()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch statistics", err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

func GetSalesByHour(ctx *gin.Context) {
	sales, err := orderService().GetSalesByHour()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch hourly sales", err)
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

func GetPopularItems(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))

	items, err := orderService().GetPopularItems(limit)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch popular items", err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

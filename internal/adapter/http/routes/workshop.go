package routes

import (
	"taller_andino/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathStages    = "/stages"
	PathDashboard = "/dashboard"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	itemHandler *handlers.LineItemHandler,
	stageHandler *handlers.StageHandler,
	historyHandler *handlers.HistoryHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/prepayment", orderHandler.SetPrepayment)

		orders.PATCH("/:order_id/stage", stageHandler.ChangeStage)

		orders.POST("/:order_id/items", itemHandler.AddItem)
		orders.GET("/:order_id/items", itemHandler.ListItems)
		orders.PUT("/:order_id/items/:item_id", itemHandler.UpdateItem)
		orders.DELETE("/:order_id/items/:item_id", itemHandler.DeleteItem)

		orders.POST("/:order_id/comments", historyHandler.AddComment)
		orders.GET("/:order_id/history", historyHandler.ListHistory)
	}

	stages := rg.Group(PathStages)
	{
		stages.GET("", stageHandler.ListStages)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/daily", dashboardHandler.GetDailySummary)
	}
}

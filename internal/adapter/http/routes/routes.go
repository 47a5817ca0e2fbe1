package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "taller_andino/docs" // This will be auto-generated
	"taller_andino/internal/adapter/http/handlers"
	repository2 "taller_andino/internal/adapter/persistence/repository"
	"taller_andino/internal/infrastructure/database"
	"taller_andino/internal/infrastructure/inventory"
	"taller_andino/internal/infrastructure/logging"
	"taller_andino/internal/usecase"
	"taller_andino/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build the logger: %v", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		logger.Fatalw("dynamodb connection failed", "error", err)
	}

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	itemRepo := repository2.NewLineItemDynamoRepository(ddb)
	stageRepo := repository2.NewOrderStageDynamoRepository(ddb)
	historyRepo := repository2.NewOrderHistoryDynamoRepository(ddb)

	var inventoryGateway interfaces.IInventoryGateway
	gw, err := inventory.NewHTTPGateway(os.Getenv("INVENTORY_SERVICE_URL"), logger)
	if err != nil {
		logger.Warnw("inventory gateway not configured", "error", err)
	} else {
		inventoryGateway = gw
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, itemRepo, stageRepo, logger)
	itemUseCase := usecase.NewLineItemUseCase(itemRepo, orderRepo, inventoryGateway, logger)
	stageUseCase := usecase.NewStageTransitionUseCase(orderRepo, itemRepo, stageRepo, logger)
	auditUseCase := usecase.NewAuditTrailUseCase(historyRepo, orderRepo)
	summaryUseCase := usecase.NewPeriodSummaryUseCase(orderRepo, itemRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	itemHandler := handlers.NewLineItemHandler(itemUseCase)
	stageHandler := handlers.NewStageHandler(stageUseCase)
	historyHandler := handlers.NewHistoryHandler(auditUseCase)
	dashboardHandler := handlers.NewDashboardHandler(summaryUseCase)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, orderHandler, itemHandler, stageHandler, historyHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

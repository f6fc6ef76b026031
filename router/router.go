package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chefassist/kitchen-backend/controllers"
	"github.com/chefassist/kitchen-backend/middlewares"
)

// SetupRouter wires the four action-dispatched handler groups. Each group
// is a single endpoint; the operation is chosen by the "action" query
// parameter and the HTTP method.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(db)
	dataCtrl := controllers.NewDataController(db)
	inventoryCtrl := controllers.NewInventoryController(db)
	productCtrl := controllers.NewProductController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	api.GET("/auth", authCtrl.Dispatch)
	api.POST("/auth", authCtrl.Dispatch)

	api.GET("/data", dataCtrl.Dispatch)
	api.POST("/data", dataCtrl.Dispatch)

	// The inventory group dispatches on action alone.
	api.GET("/inventory", inventoryCtrl.Dispatch)
	api.POST("/inventory", inventoryCtrl.Dispatch)

	api.GET("/products", productCtrl.Dispatch)
	api.POST("/products", productCtrl.Dispatch)

	return r
}

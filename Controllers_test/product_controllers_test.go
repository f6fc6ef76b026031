package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chefassist/kitchen-backend/controllers"
	"github.com/chefassist/kitchen-backend/models"
	"github.com/chefassist/kitchen-backend/utils"
)

func setupTestDBForProducts() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.Employee{},
		&models.ProductCategory{},
		&models.Product{},
		&models.ProductOrder{},
		&models.ProductOrderItem{},
	)
	if err != nil {
		panic(err)
	}
	db.Create(&models.Restaurant{Name: "Bistro", CreatedBy: "Ana", InviteCode: "ABCD1234"})
	return db
}

func setupProductRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	productCtrl := controllers.NewProductController(db)
	router.GET("/api/products", productCtrl.Dispatch)
	router.POST("/api/products", productCtrl.Dispatch)
	return router
}

func TestCatalogCrud(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForProducts()
	router := setupProductRouter(db)

	w := postJSON(router, "/api/products?action=create_category", map[string]interface{}{
		"restaurantId": 1,
		"name":         "Dairy",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	category := decodeBody(t, w)["category"].(map[string]interface{})
	categoryID := category["id"]

	w = postJSON(router, "/api/products?action=create_product", map[string]interface{}{
		"restaurantId": 1,
		"categoryId":   categoryID,
		"name":         "Milk",
		"unit":         "l",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// products come back joined to their category name
	w = getJSON(router, "/api/products?action=get_products&restaurantId=1")
	assert.Equal(t, http.StatusOK, w.Code)
	products := decodeBody(t, w)["products"].([]interface{})
	assert.Len(t, products, 1)
	product := products[0].(map[string]interface{})
	assert.Equal(t, "Milk", product["name"])
	assert.Equal(t, "l", product["unit"])
	assert.Equal(t, "Dairy", product["category_name"])

	w = postJSON(router, "/api/products?action=update_category", map[string]interface{}{
		"categoryId": categoryID,
		"name":       "Dairy & Eggs",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = getJSON(router, "/api/products?action=get_categories&restaurantId=1")
	categories := decodeBody(t, w)["categories"].([]interface{})
	assert.Len(t, categories, 1)
	assert.Equal(t, "Dairy & Eggs", categories[0].(map[string]interface{})["name"])
}

// Deleting a category removes its products first.
func TestDeleteCategoryCascades(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForProducts()
	router := setupProductRouter(db)

	category := models.ProductCategory{RestaurantID: 1, Name: "Dairy"}
	db.Create(&category)
	db.Create(&models.Product{RestaurantID: 1, CategoryID: category.ID, Name: "Milk", Unit: "l"})
	db.Create(&models.Product{RestaurantID: 1, CategoryID: category.ID, Name: "Butter", Unit: "kg"})

	w := postJSON(router, "/api/products?action=delete_category", map[string]interface{}{
		"categoryId": category.ID,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	var productCount int64
	db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount)
	assert.Equal(t, int64(0), productCount)
}

func TestOrderFlow(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForProducts()
	router := setupProductRouter(db)

	employee := models.Employee{Name: "Boris", Role: "cook", RestaurantID: 1}
	db.Create(&employee)
	category := models.ProductCategory{RestaurantID: 1, Name: "Dairy"}
	db.Create(&category)
	milk := models.Product{RestaurantID: 1, CategoryID: category.ID, Name: "Milk", Unit: "l"}
	db.Create(&milk)
	butter := models.Product{RestaurantID: 1, CategoryID: category.ID, Name: "Butter", Unit: "kg"}
	db.Create(&butter)

	w := postJSON(router, "/api/products?action=create_order", map[string]interface{}{
		"restaurantId": 1,
		"createdBy":    employee.ID,
		"items": []map[string]interface{}{
			{"productId": milk.ID, "status": "pending", "notes": "2 crates"},
			{"productId": butter.ID, "status": "pending", "notes": ""},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	order := decodeBody(t, w)["order"].(map[string]interface{})
	assert.Equal(t, "pending", order["status"])
	orderID := order["id"]

	w = getJSON(router, "/api/products?action=get_orders&restaurantId=1")
	assert.Equal(t, http.StatusOK, w.Code)
	orders := decodeBody(t, w)["orders"].([]interface{})
	assert.Len(t, orders, 1)

	loaded := orders[0].(map[string]interface{})
	assert.Equal(t, "Boris", loaded["creator_name"])
	assert.Equal(t, "cook", loaded["creator_role"])
	items := loaded["items"].([]interface{})
	assert.Len(t, items, 2)

	// items sorted by category then product name: Butter before Milk
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Butter", first["product_name"])
	assert.Equal(t, "kg", first["unit"])
	assert.Equal(t, "Dairy", first["category_name"])
	itemID := first["id"]

	w = postJSON(router, "/api/products?action=update_order_item", map[string]interface{}{
		"itemId": itemID,
		"status": "fulfilled",
		"notes":  "delivered",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	// item status moves independently of the order header
	w = getJSON(router, "/api/products?action=get_orders&restaurantId=1")
	loaded = decodeBody(t, w)["orders"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "pending", loaded["status"])
	first = loaded["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "fulfilled", first["status"])
	assert.Equal(t, "delivered", first["notes"])

	w = postJSON(router, "/api/products?action=update_order_status", map[string]interface{}{
		"orderId": orderID,
		"status":  "approved",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = getJSON(router, "/api/products?action=get_orders&restaurantId=1")
	loaded = decodeBody(t, w)["orders"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "approved", loaded["status"])
}

func TestDeleteProduct(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForProducts()
	router := setupProductRouter(db)

	category := models.ProductCategory{RestaurantID: 1, Name: "Dairy"}
	db.Create(&category)
	product := models.Product{RestaurantID: 1, CategoryID: category.ID, Name: "Milk", Unit: "l"}
	db.Create(&product)

	w := postJSON(router, "/api/products?action=delete_product", map[string]interface{}{
		"productId": product.ID,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

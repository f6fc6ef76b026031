package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chefassist/kitchen-backend/models"
	"github.com/chefassist/kitchen-backend/utils"
)

// ProductController owns the ordering matrix: the category/product catalog
// and purchase-order requests with per-item statuses.
type ProductController struct {
	DB     *gorm.DB
	routes map[route]gin.HandlerFunc
}

func NewProductController(db *gorm.DB) *ProductController {
	pc := &ProductController{DB: db}
	pc.routes = map[route]gin.HandlerFunc{
		{http.MethodGet, "get_categories"}:       pc.GetCategories,
		{http.MethodGet, "get_products"}:         pc.GetProducts,
		{http.MethodGet, "get_orders"}:           pc.GetOrders,
		{http.MethodPost, "create_category"}:     pc.CreateCategory,
		{http.MethodPost, "create_product"}:      pc.CreateProduct,
		{http.MethodPost, "create_order"}:        pc.CreateOrder,
		{http.MethodPost, "update_order_item"}:   pc.UpdateOrderItem,
		{http.MethodPost, "update_order_status"}: pc.UpdateOrderStatus,
		{http.MethodPost, "delete_category"}:     pc.DeleteCategory,
		{http.MethodPost, "delete_product"}:      pc.DeleteProduct,
		{http.MethodPost, "update_category"}:     pc.UpdateCategory,
	}
	return pc
}

func (pc *ProductController) Dispatch(c *gin.Context) {
	dispatch(pc.routes)(c)
}

func (pc *ProductController) GetCategories(c *gin.Context) {
	id, _ := strconv.Atoi(c.Query("restaurantId"))

	var categories []models.ProductCategory
	if err := pc.DB.Where("restaurant_id = ?", id).Order("name").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"categories": categories})
}

// productRow is a catalog product joined to its category name.
type productRow struct {
	ID           uint   `json:"id"`
	RestaurantID uint   `json:"restaurant_id"`
	CategoryID   uint   `json:"category_id"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	CategoryName string `json:"category_name"`
}

func (pc *ProductController) GetProducts(c *gin.Context) {
	id, _ := strconv.Atoi(c.Query("restaurantId"))

	var products []productRow
	err := pc.DB.Table("products").
		Select("products.*, product_categories.name AS category_name").
		Joins("JOIN product_categories ON product_categories.id = products.category_id").
		Where("products.restaurant_id = ?", id).
		Order("product_categories.name, products.name").
		Scan(&products).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"products": products})
}

type productOrderItemRow struct {
	ID           uint   `json:"id"`
	OrderID      uint   `json:"order_id"`
	ProductID    uint   `json:"product_id"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	ProductName  string `json:"product_name"`
	Unit         string `json:"unit"`
	CategoryName string `json:"category_name"`
}

type productOrderRow struct {
	ID           uint                  `json:"id"`
	RestaurantID uint                  `json:"restaurant_id"`
	CreatedBy    uint                  `json:"created_by"`
	Status       string                `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	CreatorName  string                `json:"creator_name"`
	CreatorRole  string                `json:"creator_role"`
	Items        []productOrderItemRow `gorm:"-" json:"items"`
}

// GetOrders -> purchase orders newest first, items joined to product and
// category names. One items query per order; order counts stay small.
func (pc *ProductController) GetOrders(c *gin.Context) {
	id, _ := strconv.Atoi(c.Query("restaurantId"))

	var orders []productOrderRow
	err := pc.DB.Table("product_orders").
		Select("product_orders.*, employees.name AS creator_name, employees.role AS creator_role").
		Joins("JOIN employees ON employees.id = product_orders.created_by").
		Where("product_orders.restaurant_id = ?", id).
		Order("product_orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for i := range orders {
		err := pc.DB.Table("product_order_items").
			Select("product_order_items.*, products.name AS product_name, products.unit, product_categories.name AS category_name").
			Joins("JOIN products ON products.id = product_order_items.product_id").
			Joins("JOIN product_categories ON product_categories.id = products.category_id").
			Where("product_order_items.order_id = ?", orders[i].ID).
			Order("product_categories.name, products.name").
			Scan(&orders[i].Items).Error
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"orders": orders})
}

func (pc *ProductController) CreateCategory(c *gin.Context) {
	var body struct {
		RestaurantID uint   `json:"restaurantId"`
		Name         string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	category := models.ProductCategory{
		RestaurantID: body.RestaurantID,
		Name:         body.Name,
	}
	if err := pc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"category": category})
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var body struct {
		RestaurantID uint   `json:"restaurantId"`
		CategoryID   uint   `json:"categoryId"`
		Name         string `json:"name"`
		Unit         string `json:"unit"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	product := models.Product{
		RestaurantID: body.RestaurantID,
		CategoryID:   body.CategoryID,
		Name:         body.Name,
		Unit:         body.Unit,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"product": product})
}

// CreateOrder -> header with status "pending" plus one row per requested
// item, all inside one transaction
func (pc *ProductController) CreateOrder(c *gin.Context) {
	var body struct {
		RestaurantID uint `json:"restaurantId"`
		CreatedBy    uint `json:"createdBy"`
		Items        []struct {
			ProductID uint   `json:"productId"`
			Status    string `json:"status"`
			Notes     string `json:"notes"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order := models.ProductOrder{
		RestaurantID: body.RestaurantID,
		CreatedBy:    body.CreatedBy,
		Status:       "pending",
	}
	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range body.Items {
			row := models.ProductOrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Status:    item.Status,
				Notes:     item.Notes,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Product order %d created for restaurant %d (%d items)", order.ID, order.RestaurantID, len(body.Items))
	utils.RespondJSON(c, http.StatusOK, gin.H{"order": order})
}

func (pc *ProductController) UpdateOrderItem(c *gin.Context) {
	var body struct {
		ItemID uint   `json:"itemId"`
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err := pc.DB.Model(&models.ProductOrderItem{}).
		Where("id = ?", body.ItemID).
		Updates(map[string]interface{}{"status": body.Status, "notes": body.Notes}).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

func (pc *ProductController) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		OrderID uint   `json:"orderId"`
		Status  string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Updates also refreshes updated_at via GORM's auto update time.
	err := pc.DB.Model(&models.ProductOrder{}).
		Where("id = ?", body.OrderID).
		Update("status", body.Status).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

// DeleteCategory -> products of the category go first, then the category
func (pc *ProductController) DeleteCategory(c *gin.Context) {
	var body struct {
		CategoryID uint `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", body.CategoryID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProductCategory{}, body.CategoryID).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	var body struct {
		ProductID uint `json:"productId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := pc.DB.Delete(&models.Product{}, body.ProductID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

func (pc *ProductController) UpdateCategory(c *gin.Context) {
	var body struct {
		CategoryID uint   `json:"categoryId"`
		Name       string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err := pc.DB.Model(&models.ProductCategory{}).
		Where("id = ?", body.CategoryID).
		Update("name", body.Name).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chefassist/kitchen-backend/models"
	"github.com/chefassist/kitchen-backend/utils"
)

var ErrInventoryNotFound = errors.New("Inventory not found")

// InventoryController manages count sessions. Unlike the other groups the
// dispatch here is on action alone, independent of the HTTP method.
type InventoryController struct {
	DB      *gorm.DB
	actions map[string]gin.HandlerFunc
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	ic := &InventoryController{DB: db}
	ic.actions = map[string]gin.HandlerFunc{
		"get_active_inventory":  ic.GetActiveInventory,
		"get_inventory_history": ic.GetInventoryHistory,
		"create_inventory":      ic.CreateInventory,
		"add_entry":             ic.AddEntry,
		"complete_inventory":    ic.CompleteInventory,
		"delete_inventory":      ic.DeleteInventory,
	}
	return ic
}

func (ic *InventoryController) Dispatch(c *gin.Context) {
	h, ok := ic.actions[c.Query("action")]
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, ErrUnknownAction)
		return
	}
	h(c)
}

// nested loads shared by the active and history reads: products in matrix
// order, entries oldest first so the latest observation is last
func (ic *InventoryController) withNested() *gorm.DB {
	return ic.DB.
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_order, name")
		}).
		Preload("Products.Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		})
}

// GetActiveInventory -> most recent in_progress session, or null
func (ic *InventoryController) GetActiveInventory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Query("restaurantId"))

	var inventory models.Inventory
	err := ic.withNested().
		Where("restaurant_id = ? AND status = ?", id, models.InventoryInProgress).
		Order("created_at DESC").
		First(&inventory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondJSON(c, http.StatusOK, gin.H{"inventory": nil})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"inventory": inventory})
}

// GetInventoryHistory -> last 20 completed sessions, newest completion first
func (ic *InventoryController) GetInventoryHistory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Query("restaurantId"))

	var inventories []models.Inventory
	err := ic.withNested().
		Where("restaurant_id = ? AND status = ?", id, models.InventoryCompleted).
		Order("completed_at DESC").
		Limit(20).
		Find(&inventories).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"inventories": inventories})
}

func (ic *InventoryController) CreateInventory(c *gin.Context) {
	var body struct {
		RestaurantID uint   `json:"restaurantId"`
		Name         string `json:"name"`
		Date         string `json:"date"`
		Responsible  string `json:"responsible"`
		Products     []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"products"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	inventory := models.Inventory{
		RestaurantID: body.RestaurantID,
		Name:         body.Name,
		Date:         body.Date,
		Responsible:  body.Responsible,
		Status:       models.InventoryInProgress,
	}
	err := ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inventory).Error; err != nil {
			return err
		}
		for idx, product := range body.Products {
			typ := product.Type
			if typ == "" {
				typ = "product"
			}
			row := models.InventoryProduct{
				InventoryID:  inventory.ID,
				Name:         product.Name,
				Type:         typ,
				ProductOrder: idx,
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

	utils.InfoLogger.Printf("Inventory %q started for restaurant %d (%d products)", inventory.Name, inventory.RestaurantID, len(body.Products))
	// Only the session header goes back; the client follows up with
	// get_active_inventory for the product matrix.
	utils.RespondJSON(c, http.StatusOK, gin.H{"inventory": gin.H{
		"id":            inventory.ID,
		"restaurant_id": inventory.RestaurantID,
		"name":          inventory.Name,
		"date":          inventory.Date,
		"responsible":   inventory.Responsible,
		"status":        inventory.Status,
		"created_at":    inventory.CreatedAt,
	}})
}

// AddEntry -> append one quantity observation. Entries are never updated
// or deleted; the caller derives the current count from the latest one.
func (ic *InventoryController) AddEntry(c *gin.Context) {
	var body struct {
		InventoryProductID uint    `json:"inventoryProductId"`
		UserName           string  `json:"userName"`
		Quantity           float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	entry := models.InventoryEntry{
		InventoryProductID: body.InventoryProductID,
		UserName:           body.UserName,
		Quantity:           body.Quantity,
	}
	if err := ic.DB.Create(&entry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"entry": entry})
}

func (ic *InventoryController) CompleteInventory(c *gin.Context) {
	var body struct {
		InventoryID uint `json:"inventoryId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var inventory models.Inventory
	if err := ic.DB.First(&inventory, body.InventoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrInventoryNotFound)
		return
	}

	now := time.Now()
	inventory.Status = models.InventoryCompleted
	inventory.CompletedAt = &now
	if err := ic.DB.Save(&inventory).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"inventory": inventory})
}

// DeleteInventory -> soft cancel. The conditional update only touches a
// session still in_progress; cancelling a completed or already cancelled
// one is a silent no-op, not an error.
func (ic *InventoryController) DeleteInventory(c *gin.Context) {
	var body struct {
		InventoryID uint `json:"inventoryId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err := ic.DB.Model(&models.Inventory{}).
		Where("id = ? AND status = ?", body.InventoryID, models.InventoryInProgress).
		Update("status", models.InventoryCancelled).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

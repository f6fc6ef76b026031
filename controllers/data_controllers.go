package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chefassist/kitchen-backend/models"
	"github.com/chefassist/kitchen-backend/utils"
)

var (
	ErrTTKNotFound       = errors.New("TTK not found")
	ErrChecklistNotFound = errors.New("Checklist not found")
	ErrItemNotFound      = errors.New("Item not found")
	ErrMissingID         = errors.New("Missing id")
)

// DataController serves the reference data: TTK recipe cards and
// checklists with their ordered items.
type DataController struct {
	DB     *gorm.DB
	routes map[route]gin.HandlerFunc
}

func NewDataController(db *gorm.DB) *DataController {
	dc := &DataController{DB: db}
	dc.routes = map[route]gin.HandlerFunc{
		{http.MethodGet, "get_ttk"}:                dc.GetTTK,
		{http.MethodGet, "get_checklists"}:         dc.GetChecklists,
		{http.MethodPost, "create_ttk"}:            dc.CreateTTK,
		{http.MethodPost, "update_ttk"}:            dc.UpdateTTK,
		{http.MethodPost, "delete_ttk"}:            dc.DeleteTTK,
		{http.MethodPost, "create_checklist"}:      dc.CreateChecklist,
		{http.MethodPost, "update_checklist"}:      dc.UpdateChecklist,
		{http.MethodPost, "delete_checklist"}:      dc.DeleteChecklist,
		{http.MethodPost, "update_checklist_item"}: dc.UpdateChecklistItem,
	}
	return dc
}

func (dc *DataController) Dispatch(c *gin.Context) {
	dispatch(dc.routes)(c)
}

// GetTTK -> recipe cards of a restaurant, newest first
func (dc *DataController) GetTTK(c *gin.Context) {
	idStr := c.Query("restaurantId")
	if idStr == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingRestaurant)
		return
	}
	id, _ := strconv.Atoi(idStr)

	var ttkList []models.TTK
	if err := dc.DB.Where("restaurant_id = ?", id).Order("created_at DESC").Find(&ttkList).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"ttk": ttkList})
}

type ttkRequest struct {
	ID           uint    `json:"id"`
	RestaurantID uint    `json:"restaurantId"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Output       float64 `json:"output"`
	Ingredients  string  `json:"ingredients"`
	Tech         string  `json:"tech"`
}

func (dc *DataController) CreateTTK(c *gin.Context) {
	var body ttkRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.RestaurantID == 0 || body.Name == "" || body.Category == "" || body.Ingredients == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	ttk := models.TTK{
		RestaurantID: body.RestaurantID,
		Name:         body.Name,
		Category:     body.Category,
		Output:       body.Output,
		Ingredients:  body.Ingredients,
		Tech:         body.Tech,
	}
	if err := dc.DB.Create(&ttk).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"ttk": ttk})
}

// UpdateTTK -> full replace of the mutable fields
func (dc *DataController) UpdateTTK(c *gin.Context) {
	var body ttkRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.ID == 0 || body.Name == "" || body.Category == "" || body.Ingredients == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	var ttk models.TTK
	if err := dc.DB.First(&ttk, body.ID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrTTKNotFound)
		return
	}

	ttk.Name = body.Name
	ttk.Category = body.Category
	ttk.Output = body.Output
	ttk.Ingredients = body.Ingredients
	ttk.Tech = body.Tech
	if err := dc.DB.Save(&ttk).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"ttk": ttk})
}

func (dc *DataController) DeleteTTK(c *gin.Context) {
	var body struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.ID == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingID)
		return
	}

	if err := dc.DB.Delete(&models.TTK{}, body.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

// GetChecklists -> checklists of a restaurant with nested ordered items
func (dc *DataController) GetChecklists(c *gin.Context) {
	idStr := c.Query("restaurantId")
	if idStr == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingRestaurant)
		return
	}
	id, _ := strconv.Atoi(idStr)

	var checklists []models.Checklist
	err := dc.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_order")
		}).
		Where("restaurant_id = ?", id).
		Order("created_at DESC").
		Find(&checklists).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"checklists": checklists})
}

type checklistItemRequest struct {
	Text      string  `json:"text"`
	Status    string  `json:"status"`
	Timestamp *string `json:"timestamp"`
}

type checklistRequest struct {
	ID           uint                   `json:"id"`
	RestaurantID uint                   `json:"restaurantId"`
	Name         string                 `json:"name"`
	Workshop     string                 `json:"workshop"`
	Responsible  string                 `json:"responsible"`
	Items        []checklistItemRequest `json:"items"`
}

func (dc *DataController) CreateChecklist(c *gin.Context) {
	var body checklistRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.RestaurantID == 0 || body.Name == "" || body.Workshop == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	checklist := models.Checklist{
		RestaurantID: body.RestaurantID,
		Name:         body.Name,
		Workshop:     body.Workshop,
		Responsible:  body.Responsible,
	}
	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&checklist).Error; err != nil {
			return err
		}
		for idx, item := range body.Items {
			row := models.ChecklistItem{
				ChecklistID: checklist.ID,
				Text:        item.Text,
				Status:      "pending",
				ItemOrder:   idx,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			checklist.Items = append(checklist.Items, row)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"checklist": checklist})
}

// UpdateChecklist -> scalar fields updated, item set replaced wholesale.
// Delete-then-reinsert inside one transaction: the caller's list is the
// new truth and old items do not survive, order indices start over at 0.
func (dc *DataController) UpdateChecklist(c *gin.Context) {
	var body checklistRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.ID == 0 || body.Name == "" || body.Workshop == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	var checklist models.Checklist
	if err := dc.DB.First(&checklist, body.ID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrChecklistNotFound)
		return
	}

	checklist.Name = body.Name
	checklist.Workshop = body.Workshop
	checklist.Responsible = body.Responsible
	checklist.Items = nil

	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&checklist).Error; err != nil {
			return err
		}
		if err := tx.Where("checklist_id = ?", checklist.ID).Delete(&models.ChecklistItem{}).Error; err != nil {
			return err
		}
		for idx, item := range body.Items {
			status := item.Status
			if status == "" {
				status = "pending"
			}
			row := models.ChecklistItem{
				ChecklistID: checklist.ID,
				Text:        item.Text,
				Status:      status,
				Timestamp:   item.Timestamp,
				ItemOrder:   idx,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			checklist.Items = append(checklist.Items, row)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"checklist": checklist})
}

// DeleteChecklist -> items first, then the checklist itself
func (dc *DataController) DeleteChecklist(c *gin.Context) {
	var body struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.ID == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingID)
		return
	}

	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("checklist_id = ?", body.ID).Delete(&models.ChecklistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Checklist{}, body.ID).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

// UpdateChecklistItem -> fast per-item status toggle, no full rewrite
func (dc *DataController) UpdateChecklistItem(c *gin.Context) {
	var body struct {
		ItemID    uint    `json:"itemId"`
		Status    string  `json:"status"`
		Timestamp *string `json:"timestamp"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.ItemID == 0 || body.Status == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	var item models.ChecklistItem
	if err := dc.DB.First(&item, body.ItemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrItemNotFound)
		return
	}

	item.Status = body.Status
	item.Timestamp = body.Timestamp
	if err := dc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"item": item})
}

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

func setupTestDBForData() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Restaurant{}, &models.TTK{}, &models.Checklist{}, &models.ChecklistItem{})
	if err != nil {
		panic(err)
	}
	db.Create(&models.Restaurant{Name: "Bistro", CreatedBy: "Ana", InviteCode: "ABCD1234"})
	return db
}

func setupDataRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	dataCtrl := controllers.NewDataController(db)
	router.GET("/api/data", dataCtrl.Dispatch)
	router.POST("/api/data", dataCtrl.Dispatch)
	return router
}

func TestCreateTTKMissingFields(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForData()
	router := setupDataRouter(db)

	w := postJSON(router, "/api/data?action=create_ttk", map[string]interface{}{
		"restaurantId": 1,
		"name":         "Borscht",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "Missing required fields", response["error"])
}

func TestTTKLifecycle(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForData()
	router := setupDataRouter(db)

	w := postJSON(router, "/api/data?action=create_ttk", map[string]interface{}{
		"restaurantId": 1,
		"name":         "Borscht",
		"category":     "Soups",
		"output":       350,
		"ingredients":  "beets 200g\ncabbage 150g",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	created := decodeBody(t, w)["ttk"].(map[string]interface{})
	assert.Equal(t, "Borscht", created["name"])
	assert.Equal(t, float64(350), created["output"])
	assert.Equal(t, "", created["tech"])
	ttkID := created["id"]

	w = postJSON(router, "/api/data?action=update_ttk", map[string]interface{}{
		"id":          ttkID,
		"name":        "Borscht",
		"category":    "Soups",
		"output":      400,
		"ingredients": "beets 250g\ncabbage 150g",
		"tech":        "Simmer 40 minutes",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)["ttk"].(map[string]interface{})
	assert.Equal(t, float64(400), updated["output"])
	assert.Equal(t, "Simmer 40 minutes", updated["tech"])

	w = getJSON(router, "/api/data?action=get_ttk&restaurantId=1")
	assert.Equal(t, http.StatusOK, w.Code)
	list := decodeBody(t, w)["ttk"].([]interface{})
	assert.Len(t, list, 1)

	w = postJSON(router, "/api/data?action=delete_ttk", map[string]interface{}{"id": ttkID})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = getJSON(router, "/api/data?action=get_ttk&restaurantId=1")
	list = decodeBody(t, w)["ttk"].([]interface{})
	assert.Len(t, list, 0)
}

func TestUpdateTTKNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForData()
	router := setupDataRouter(db)

	w := postJSON(router, "/api/data?action=update_ttk", map[string]interface{}{
		"id":          424242,
		"name":        "Ghost",
		"category":    "Soups",
		"ingredients": "nothing",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TTK not found", decodeBody(t, w)["error"])
}

func TestCreateChecklist(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForData()
	router := setupDataRouter(db)

	w := postJSON(router, "/api/data?action=create_checklist", map[string]interface{}{
		"restaurantId": 1,
		"name":         "Opening",
		"workshop":     "hot",
		"responsible":  "Boris",
		"items": []map[string]interface{}{
			{"text": "Turn on ovens"},
			{"text": "Check fridge temps"},
			{"text": "Prep stations"},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	checklist := decodeBody(t, w)["checklist"].(map[string]interface{})
	// Completion dates are derived client-side from item statuses; the
	// checklist row carries no completion column.
	assert.NotContains(t, checklist, "completed_date")
	items := checklist["items"].([]interface{})
	assert.Len(t, items, 3)
	for idx, raw := range items {
		item := raw.(map[string]interface{})
		assert.Equal(t, float64(idx), item["item_order"])
		assert.Equal(t, "pending", item["status"])
	}
}

// Updating a checklist replaces its item set wholesale: old items must not
// survive and order indices restart at zero.
func TestUpdateChecklistReplacesItems(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForData()
	router := setupDataRouter(db)

	w := postJSON(router, "/api/data?action=create_checklist", map[string]interface{}{
		"restaurantId": 1,
		"name":         "Closing",
		"workshop":     "cold",
		"items": []map[string]interface{}{
			{"text": "Old one"},
			{"text": "Old two"},
			{"text": "Old three"},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	checklistID := decodeBody(t, w)["checklist"].(map[string]interface{})["id"]

	w = postJSON(router, "/api/data?action=update_checklist", map[string]interface{}{
		"id":       checklistID,
		"name":     "Closing v2",
		"workshop": "cold",
		"items": []map[string]interface{}{
			{"text": "New one", "status": "done", "timestamp": "2026-08-28T10:00:00Z"},
			{"text": "New two"},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = getJSON(router, "/api/data?action=get_checklists&restaurantId=1")
	assert.Equal(t, http.StatusOK, w.Code)
	checklists := decodeBody(t, w)["checklists"].([]interface{})
	assert.Len(t, checklists, 1)

	checklist := checklists[0].(map[string]interface{})
	assert.Equal(t, "Closing v2", checklist["name"])
	items := checklist["items"].([]interface{})
	assert.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	second := items[1].(map[string]interface{})
	assert.Equal(t, "New one", first["text"])
	assert.Equal(t, "done", first["status"])
	assert.Equal(t, float64(0), first["item_order"])
	assert.Equal(t, "New two", second["text"])
	assert.Equal(t, "pending", second["status"])
	assert.Equal(t, float64(1), second["item_order"])
}

func TestUpdateChecklistItem(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForData()
	router := setupDataRouter(db)

	checklist := models.Checklist{RestaurantID: 1, Name: "Opening", Workshop: "hot"}
	db.Create(&checklist)
	item := models.ChecklistItem{ChecklistID: checklist.ID, Text: "Turn on ovens", Status: "pending", ItemOrder: 0}
	db.Create(&item)

	w := postJSON(router, "/api/data?action=update_checklist_item", map[string]interface{}{
		"itemId":    item.ID,
		"status":    "done",
		"timestamp": "2026-08-28T10:00:00Z",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)["item"].(map[string]interface{})
	assert.Equal(t, "done", updated["status"])
	assert.Equal(t, "2026-08-28T10:00:00Z", updated["timestamp"])
}

func TestUpdateChecklistItemNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForData()
	router := setupDataRouter(db)

	w := postJSON(router, "/api/data?action=update_checklist_item", map[string]interface{}{
		"itemId": 424242,
		"status": "done",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found", decodeBody(t, w)["error"])
}

func TestDeleteChecklist(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForData()
	router := setupDataRouter(db)

	checklist := models.Checklist{RestaurantID: 1, Name: "Opening", Workshop: "hot"}
	db.Create(&checklist)
	db.Create(&models.ChecklistItem{ChecklistID: checklist.ID, Text: "Turn on ovens", Status: "pending", ItemOrder: 0})

	w := postJSON(router, "/api/data?action=delete_checklist", map[string]interface{}{"id": checklist.ID})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	var itemCount int64
	db.Model(&models.ChecklistItem{}).Where("checklist_id = ?", checklist.ID).Count(&itemCount)
	assert.Equal(t, int64(0), itemCount)
}

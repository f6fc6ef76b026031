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

var (
	ErrInvalidInviteCode     = errors.New("Invalid invite code")
	ErrRestaurantNotFound    = errors.New("Restaurant not found")
	ErrEmployeeNotFound      = errors.New("Employee not found")
	ErrEmployeeNotInRestaur  = errors.New("Employee not found in this restaurant")
	ErrMissingEmployeeID     = errors.New("Missing employee_id")
	ErrMissingRestaurantBody = errors.New("Missing restaurant_id")
)

type AuthController struct {
	DB     *gorm.DB
	routes map[route]gin.HandlerFunc
}

func NewAuthController(db *gorm.DB) *AuthController {
	ac := &AuthController{DB: db}
	ac.routes = map[route]gin.HandlerFunc{
		{http.MethodGet, "get_restaurant"}:        ac.GetRestaurantInfo,
		{http.MethodPost, "create_restaurant"}:    ac.CreateRestaurant,
		{http.MethodPost, "join_restaurant"}:      ac.JoinRestaurant,
		{http.MethodPost, "login_existing"}:       ac.LoginExisting,
		{http.MethodPost, "get_employees"}:        ac.GetEmployees,
		{http.MethodPost, "update_employee_role"}: ac.UpdateEmployeeRole,
		{http.MethodPost, "remove_employee"}:      ac.RemoveEmployee,
		{http.MethodPost, "update_online_status"}: ac.UpdateOnlineStatus,
	}
	return ac
}

func (ac *AuthController) Dispatch(c *gin.Context) {
	dispatch(ac.routes)(c)
}

// CreateRestaurant -> new restaurant plus its chef, one transaction
func (ac *AuthController) CreateRestaurant(c *gin.Context) {
	var body struct {
		ChefName       string `json:"chefName"`
		RestaurantName string `json:"restaurantName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.ChefName == "" || body.RestaurantName == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	restaurant := models.Restaurant{
		Name:       body.RestaurantName,
		CreatedBy:  body.ChefName,
		InviteCode: utils.GenerateInviteCode(),
	}
	employee := models.Employee{
		Name: body.ChefName,
		Role: "chef",
	}

	// Either both rows land or neither: a restaurant must never be
	// joinable without its chef.
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}
		employee.RestaurantID = restaurant.ID
		return tx.Create(&employee).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant %q created by %s (invite %s)", restaurant.Name, body.ChefName, restaurant.InviteCode)
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"restaurant": restaurant,
		"employee":   employee,
	})
}

// JoinRestaurant -> resolve invite code, reuse the employee row when the
// same name already joined this restaurant
func (ac *AuthController) JoinRestaurant(c *gin.Context) {
	var body struct {
		Name       string `json:"name"`
		Role       string `json:"role"`
		InviteCode string `json:"inviteCode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.Name == "" || body.Role == "" || body.InviteCode == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	var restaurant models.Restaurant
	if err := ac.DB.Where("invite_code = ?", body.InviteCode).First(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrInvalidInviteCode)
		return
	}

	var employee models.Employee
	err := ac.DB.Where("restaurant_id = ? AND name = ?", restaurant.ID, body.Name).First(&employee).Error
	if err == nil {
		utils.RespondJSON(c, http.StatusOK, gin.H{
			"restaurant": restaurant,
			"employee":   employee,
			"isExisting": true,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	employee = models.Employee{
		Name:         body.Name,
		Role:         body.Role,
		RestaurantID: restaurant.ID,
	}
	if err := ac.DB.Create(&employee).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Employee %s joined restaurant %d as %s", employee.Name, restaurant.ID, employee.Role)
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"restaurant": restaurant,
		"employee":   employee,
		"isExisting": false,
	})
}

// LoginExisting -> invite code + name must already resolve to an employee
func (ac *AuthController) LoginExisting(c *gin.Context) {
	var body struct {
		Name       string `json:"name"`
		InviteCode string `json:"inviteCode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.Name == "" || body.InviteCode == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	var restaurant models.Restaurant
	if err := ac.DB.Where("invite_code = ?", body.InviteCode).First(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrInvalidInviteCode)
		return
	}

	var employee models.Employee
	if err := ac.DB.Where("restaurant_id = ? AND name = ?", restaurant.ID, body.Name).First(&employee).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrEmployeeNotInRestaur)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"restaurant": restaurant,
		"employee":   employee,
	})
}

// GetRestaurantInfo -> restaurant by id (query parameter)
func (ac *AuthController) GetRestaurantInfo(c *gin.Context) {
	idStr := c.Query("restaurantId")
	if idStr == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingRestaurant)
		return
	}
	id, _ := strconv.Atoi(idStr)

	var restaurant models.Restaurant
	if err := ac.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetEmployees -> roster ordered by join time
func (ac *AuthController) GetEmployees(c *gin.Context) {
	var body struct {
		RestaurantID uint `json:"restaurantId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.RestaurantID == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingRestaurantBody)
		return
	}

	var employees []models.Employee
	if err := ac.DB.Where("restaurant_id = ?", body.RestaurantID).Order("joined_at").Find(&employees).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"employees": employees})
}

func (ac *AuthController) UpdateEmployeeRole(c *gin.Context) {
	var body struct {
		EmployeeID uint   `json:"employeeId"`
		NewRole    string `json:"newRole"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.EmployeeID == 0 || body.NewRole == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	var employee models.Employee
	if err := ac.DB.First(&employee, body.EmployeeID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrEmployeeNotFound)
		return
	}

	employee.Role = body.NewRole
	if err := ac.DB.Save(&employee).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"employee": employee})
}

func (ac *AuthController) RemoveEmployee(c *gin.Context) {
	var body struct {
		EmployeeID uint `json:"employeeId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.EmployeeID == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingEmployeeID)
		return
	}

	if err := ac.DB.Delete(&models.Employee{}, body.EmployeeID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

// UpdateOnlineStatus -> flips the online flag and refreshes last_seen
func (ac *AuthController) UpdateOnlineStatus(c *gin.Context) {
	var body struct {
		EmployeeID uint  `json:"employeeId"`
		IsOnline   *bool `json:"isOnline"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if body.EmployeeID == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingEmployeeID)
		return
	}

	isOnline := true
	if body.IsOnline != nil {
		isOnline = *body.IsOnline
	}

	var employee models.Employee
	if err := ac.DB.First(&employee, body.EmployeeID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrEmployeeNotFound)
		return
	}

	now := time.Now()
	employee.IsOnline = isOnline
	employee.LastSeen = &now
	if err := ac.DB.Save(&employee).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"employee": employee})
}

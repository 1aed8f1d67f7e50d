package authController

import (
	"log"

	"pcl-backend/config"
	"pcl-backend/middleware"
	"pcl-backend/models"
	authValidator "pcl-backend/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Controller struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewController(db *gorm.DB, cfg *config.Config) *Controller {
	return &Controller{DB: db, Cfg: cfg}
}

// Login checks the admin's credentials and issues a bearer token. Unknown
// username and wrong password produce the same response to avoid enumeration.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Username and password required")
	}

	var admin models.Admin
	err := ctl.DB.Where("username = ? AND is_active = ?", reqData.Username, true).First(&admin).Error
	if err != nil {
		return middleware.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := middleware.GenerateJWT(ctl.Cfg.JWTKey, admin.ID, admin.Username)
	if err != nil {
		log.Printf("Error signing token for admin %d: %v", admin.ID, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to process login")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{
		"access_token": token,
		"admin": fiber.Map{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

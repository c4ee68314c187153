package user

import (
	"strings"

	"betpix/database"
	"betpix/helpers"
	"betpix/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CPF          string `json:"cpf"`
	Password     string `json:"password"`
	ReferralCode string `json:"referral_code"`
}

// Register creates the user together with their wallet, and when a valid
// referral code is given, the pending CPA history row for the referrer.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	errs := map[string]string{}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		errs["email"] = "a valid email is required"
	}
	if len(req.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}
	if len(errs) > 0 {
		return helpers.JSONValidation(c, errs)
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "EMAIL_ALREADY_REGISTERED")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_HASH_PASSWORD")
	}

	var setting models.Setting
	_ = database.DB.First(&setting).Error

	var inviter models.User
	hasInviter := false
	if req.ReferralCode != "" {
		if err := database.DB.Where("referral_code = ?", req.ReferralCode).First(&inviter).Error; err == nil {
			hasInviter = true
		}
	}

	newUser := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        helpers.OnlyDigits(req.Phone),
		CPF:          helpers.OnlyDigits(req.CPF),
		Password:     string(hash),
		ApiToken:     uuid.New().String(),
		RoleID:       models.RoleUser,
		ReferralCode: strings.Split(uuid.New().String(), "-")[0],
		IsActive:     true,
	}
	if hasInviter {
		newUser.Inviter = inviter.ID
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		wallet := models.Wallet{
			UserID:   newUser.ID,
			Currency: setting.CurrencyCode,
			Symbol:   setting.Prefix,
			Active:   true,
		}
		if err := tx.Create(&wallet).Error; err != nil {
			return err
		}

		if hasInviter {
			hist := models.AffiliateHistory{
				UserID:         newUser.ID,
				Inviter:        inviter.ID,
				CommissionType: models.CommissionCPA,
				Status:         models.StatusPending,
			}
			if err := tx.Create(&hist).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_CREATE_USER")
	}

	return helpers.JSONSuccess(c, "User registered successfully", fiber.Map{
		"user_id":       newUser.ID,
		"api_token":     newUser.ApiToken,
		"referral_code": newUser.ReferralCode,
	})
}

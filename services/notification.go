package services

import (
	"encoding/json"

	"betpix/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notifier writes database notifications to every admin user.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) NewDeposit(tx *gorm.DB, userName string, amount float64) error {
	return n.notifyAdmins(tx, models.NotificationNewDeposit, map[string]any{
		"user":   userName,
		"amount": amount,
	})
}

func (n *Notifier) NewWithdrawal(tx *gorm.DB, userName string, amount float64, reference string) error {
	return n.notifyAdmins(tx, models.NotificationNewWithdrawal, map[string]any{
		"user":      userName,
		"amount":    amount,
		"reference": reference,
	})
}

func (n *Notifier) notifyAdmins(tx *gorm.DB, kind string, data map[string]any) error {
	var admins []models.User
	if err := tx.Where("role_id = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		return err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	for _, admin := range admins {
		note := models.Notification{
			UserID: admin.ID,
			Type:   kind,
			Data:   datatypes.JSON(payload),
		}
		if err := tx.Create(&note).Error; err != nil {
			return err
		}
	}
	return nil
}

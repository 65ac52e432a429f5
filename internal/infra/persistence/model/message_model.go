package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
type MessageModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SenderUserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_messages_pair"`
	RecipientUserID uuid.UUID  `gorm:"type:uuid;not null;index:idx_messages_pair"`
	Sender          *UserModel `gorm:"foreignKey:SenderUserID"`
	Recipient       *UserModel `gorm:"foreignKey:RecipientUserID"`
	Message         string     `gorm:"type:text;not null"`
	CreatedAt       time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

// AllModels lists every table in migration order.
func AllModels() []any {
	return []any{
		&RoleModel{},
		&UserModel{},
		&CountryModel{},
		&StateModel{},
		&CityModel{},
		&DistrictModel{},
		&BusinessCategoryModel{},
		&CategoryModel{},
		&AddressModel{},
		&SubscriptionModel{},
		&SubscriptionItemModel{},
		&VendorModel{},
		&VendorSubscriptionModel{},
		&ProductModel{},
		&LeadModel{},
		&MessageModel{},
	}
}

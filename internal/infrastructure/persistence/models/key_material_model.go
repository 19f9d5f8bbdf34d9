package models

import "time"

// KeyMaterialModel stores the PEM encoded key bytes behind a CryptoKeyModel
type KeyMaterialModel struct {
	KeyID           string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	Type            string    `gorm:"not null;type:varchar(20)"`
	Data            []byte    `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyMaterialModel) TableName() string {
	return "key_materials"
}

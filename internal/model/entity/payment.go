package entity

import (
	"time"
)

// PaymentChannelType 支付渠道类型
const (
	PaymentTypeBankTransfer = "BANK_TRANSFER"
	PaymentTypePromptPay    = "PROMPTPAY"
	PaymentTypeCash         = "CASH"
)

// PaymentChannel 支付渠道配置
type PaymentChannel struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name          string     `json:"name" gorm:"size:100;not null"`
	Type          string     `json:"type" gorm:"size:20;not null;default:BANK_TRANSFER"`
	BankName      string     `json:"bank_name" gorm:"size:100"`
	AccountName   string     `json:"account_name" gorm:"size:100"`
	AccountNumber string     `json:"account_number" gorm:"size:50"`
	QRCodeURL     string     `json:"qr_code_url" gorm:"size:512"`
	IsDefault     bool       `json:"is_default" gorm:"default:false"`
	Status        string     `json:"status" gorm:"size:16;not null;default:ACTIVE"`
	SortOrder     int        `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at" gorm:"index"`
}

func (PaymentChannel) TableName() string {
	return "payment_channels"
}

package repository

import (
	"context"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*entity.PaymentChannel, error) {
	var channel entity.PaymentChannel
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&channel).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]entity.PaymentChannel, error) {
	var channels []entity.PaymentChannel
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("sort_order ASC, created_at ASC").
		Find(&channels).Error
	return channels, err
}

func (r *PaymentRepository) Create(ctx context.Context, channel *entity.PaymentChannel) error {
	return r.db.WithContext(ctx).Create(channel).Error
}

func (r *PaymentRepository) Update(ctx context.Context, channel *entity.PaymentChannel) error {
	return r.db.WithContext(ctx).Save(channel).Error
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entity.PaymentChannel{}).
		Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

// ClearDefault 清除其它渠道的默认标记（设置新默认渠道前调用）
func (r *PaymentRepository) ClearDefault(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&entity.PaymentChannel{}).
		Where("is_default = true").
		Update("is_default", false).Error
}

package service

import (
	"context"
	"fmt"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
)

// PaymentService 支付渠道服务
type PaymentService struct {
	repo *repository.PaymentRepository
}

// NewPaymentService 创建支付渠道服务
func NewPaymentService(repo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

// List 支付渠道列表
func (s *PaymentService) List(ctx context.Context) ([]entity.PaymentChannel, error) {
	return s.repo.List(ctx)
}

// CreateChannelRequest 创建支付渠道请求
type CreateChannelRequest struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=BANK_TRANSFER PROMPTPAY CASH"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	QRCodeURL     string `json:"qr_code_url"`
	IsDefault     bool   `json:"is_default"`
	SortOrder     int    `json:"sort_order"`
}

// Create 创建支付渠道。设为默认时清掉旧默认。
func (s *PaymentService) Create(ctx context.Context, req *CreateChannelRequest) (*entity.PaymentChannel, error) {
	if req.IsDefault {
		if err := s.repo.ClearDefault(ctx); err != nil {
			return nil, fmt.Errorf("clear default channel: %w", err)
		}
	}
	channel := &entity.PaymentChannel{
		Name:          req.Name,
		Type:          req.Type,
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		QRCodeURL:     req.QRCodeURL,
		IsDefault:     req.IsDefault,
		SortOrder:     req.SortOrder,
		Status:        entity.ProductStatusActive,
	}
	if err := s.repo.Create(ctx, channel); err != nil {
		return nil, fmt.Errorf("create payment channel: %w", err)
	}
	return channel, nil
}

// UpdateChannelRequest 更新支付渠道请求
type UpdateChannelRequest struct {
	Name          *string `json:"name"`
	BankName      *string `json:"bank_name"`
	AccountName   *string `json:"account_name"`
	AccountNumber *string `json:"account_number"`
	QRCodeURL     *string `json:"qr_code_url"`
	IsDefault     *bool   `json:"is_default"`
	SortOrder     *int    `json:"sort_order"`
	Status        *string `json:"status"`
}

// Update 更新支付渠道
func (s *PaymentService) Update(ctx context.Context, id string, req *UpdateChannelRequest) (*entity.PaymentChannel, error) {
	channel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsDefault != nil && *req.IsDefault && !channel.IsDefault {
		if err := s.repo.ClearDefault(ctx); err != nil {
			return nil, fmt.Errorf("clear default channel: %w", err)
		}
	}

	if req.Name != nil {
		channel.Name = *req.Name
	}
	if req.BankName != nil {
		channel.BankName = *req.BankName
	}
	if req.AccountName != nil {
		channel.AccountName = *req.AccountName
	}
	if req.AccountNumber != nil {
		channel.AccountNumber = *req.AccountNumber
	}
	if req.QRCodeURL != nil {
		channel.QRCodeURL = *req.QRCodeURL
	}
	if req.IsDefault != nil {
		channel.IsDefault = *req.IsDefault
	}
	if req.SortOrder != nil {
		channel.SortOrder = *req.SortOrder
	}
	if req.Status != nil {
		channel.Status = *req.Status
	}

	if err := s.repo.Update(ctx, channel); err != nil {
		return nil, fmt.Errorf("update payment channel: %w", err)
	}
	return channel, nil
}

// Delete 删除支付渠道（软删除）
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

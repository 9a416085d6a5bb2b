package service

import (
	"context"
	"fmt"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
)

// CustomerService 客户服务
type CustomerService struct {
	repo *repository.CustomerRepository
}

// NewCustomerService 创建客户服务
func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Get 获取客户详情
func (s *CustomerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// List 客户列表
func (s *CustomerService) List(ctx context.Context, params repository.CustomerListParams) (map[string]interface{}, error) {
	customers, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"customers": customers,
		"total":     total,
	}, nil
}

// CreateCustomerRequest 创建客户请求
type CreateCustomerRequest struct {
	CustomerCode string  `json:"customer_code" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type" binding:"omitempty,oneof=RETAIL WHOLESALE CAFE"`
	ContactName  string  `json:"contact_name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	CreditLimit  float64 `json:"credit_limit"`
	Notes        string  `json:"notes"`
}

// Create 创建客户
func (s *CustomerService) Create(ctx context.Context, userID string, req *CreateCustomerRequest) (*entity.Customer, error) {
	custType := req.Type
	if custType == "" {
		custType = entity.CustomerTypeRetail
	}
	customer := &entity.Customer{
		CustomerCode: req.CustomerCode,
		Name:         req.Name,
		Type:         custType,
		ContactName:  req.ContactName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		CreditLimit:  req.CreditLimit,
		Status:       entity.CustomerStatusActive,
		Notes:        req.Notes,
		CreatedBy:    userID,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

// UpdateCustomerRequest 更新客户请求
type UpdateCustomerRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	ContactName *string  `json:"contact_name"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Address     *string  `json:"address"`
	CreditLimit *float64 `json:"credit_limit"`
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
}

// Update 更新客户
func (s *CustomerService) Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Type != nil {
		customer.Type = *req.Type
	}
	if req.ContactName != nil {
		customer.ContactName = *req.ContactName
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.CreditLimit != nil {
		customer.CreditLimit = *req.CreditLimit
	}
	if req.Status != nil {
		customer.Status = *req.Status
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Delete 删除客户（软删除）
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

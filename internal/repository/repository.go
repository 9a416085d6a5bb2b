package repository

import (
	"gorm.io/gorm"
)

// Repositories 数据访问层集合
type Repositories struct {
	Product   *ProductRepository
	Recipe    *RecipeRepository
	Inventory *InventoryRepository
	Order     *OrderRepository
	Customer  *CustomerRepository
	User      *UserRepository
	Payment   *PaymentRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Product:   NewProductRepository(db),
		Recipe:    NewRecipeRepository(db),
		Inventory: NewInventoryRepository(db),
		Order:     NewOrderRepository(db),
		Customer:  NewCustomerRepository(db),
		User:      NewUserRepository(db),
		Payment:   NewPaymentRepository(db),
	}
}

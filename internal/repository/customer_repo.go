package repository

import (
	"gorm.io/gorm"

	"erp-reporting-backend/internal/models"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByID(id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "cu_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) GetByAccountID(accountID int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "cu_acc_id = ?", accountID).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

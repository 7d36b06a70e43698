package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"erp-reporting-backend/internal/models"
)

// UserRepository is the auth-database store. It also satisfies
// tenant.UserStore and auth.UserStore.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier looks a user up by username or email, the login form
// accepts either.
func (r *UserRepository) FindByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ? OR email = ?", identifier, identifier).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Update(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *UserRepository) ListByCompany(companyID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("company_id = ?", companyID).Find(&users).Error
	return users, err
}

func (r *UserRepository) ListByRole(role string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Find(&users).Error
	return users, err
}

// TenantDatabaseNames lists the tenant databases on the server. ERP tenant
// databases follow the legacy naming convention of an X or R prefix.
func (r *UserRepository) TenantDatabaseNames() ([]string, error) {
	var names []string
	err := r.db.Raw(`
		SELECT datname FROM pg_database
		WHERE datistemplate = false
			AND (datname LIKE 'X%' OR datname LIKE 'R%')
		ORDER BY datname`).Scan(&names).Error
	return names, err
}

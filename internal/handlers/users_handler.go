package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"erp-reporting-backend/internal/auth"
	"erp-reporting-backend/internal/models"
	"erp-reporting-backend/internal/repository"
)

type UsersHandler struct {
	users *repository.UserRepository
}

func NewUsersHandler(users *repository.UserRepository) *UsersHandler {
	return &UsersHandler{users: users}
}

// List returns the users visible to the caller. Business owners only see
// their own employees; admins and supervisors see everyone plus the tenant
// database names and the business-owner list for the assignment form.
func (h *UsersHandler) List(c *gin.Context) {
	current := auth.CurrentUser(c)

	if current.Role == models.RoleBusinessOwner {
		users, err := h.users.ListByCompany(current.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
		return
	}

	users, err := h.users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	owners, err := h.users.ListByRole(models.RoleBusinessOwner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	databases, err := h.users.TenantDatabaseNames()
	if err != nil {
		log.Warn().Err(err).Msg("failed to list tenant databases")
		databases = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"users":          users,
		"businessOwners": owners,
		"databases":      databases,
	})
}

// Update changes a user's role, database, company link, status or expiration
// date. Business owners may only touch their own employees and only the
// status field; the rest is admin territory.
func (h *UsersHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var payload struct {
		Role                  *string `json:"role"`
		Database              *string `json:"database"`
		CompanyID             *string `json:"company_id"`
		Status                *string `json:"status"`
		Permissions           *string `json:"permissions"`
		AccountExpirationDate *string `json:"account_expiration_date"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	target, err := h.users.FindByID(id)
	if err != nil || target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	current := auth.CurrentUser(c)
	fields := map[string]interface{}{}

	switch current.Role {
	case models.RoleAdmin, models.RoleSupervisor:
		if payload.Role != nil {
			fields["role"] = *payload.Role
		}
		if payload.Database != nil {
			fields["database"] = *payload.Database
		}
		if payload.CompanyID != nil {
			if *payload.CompanyID == "" {
				fields["company_id"] = nil
			} else {
				companyID, err := uuid.Parse(*payload.CompanyID)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
					return
				}
				fields["company_id"] = companyID
			}
		}
		if payload.Status != nil {
			fields["status"] = *payload.Status
		}
		if payload.Permissions != nil {
			fields["permissions"] = *payload.Permissions
		}
		if payload.AccountExpirationDate != nil {
			fields["account_expiration_date"] = *payload.AccountExpirationDate
		}
	case models.RoleBusinessOwner:
		if target.CompanyID == nil || *target.CompanyID != current.ID {
			c.JSON(http.StatusUnauthorized, gin.H{"error_msg": "You are not authorized to view this page"})
			return
		}
		if payload.Status != nil {
			fields["status"] = *payload.Status
		}
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error_msg": "You are not authorized to view this page"})
		return
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	if err := h.users.Update(id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

func (h *UsersHandler) ChangePassword(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var payload struct {
		Password string `json:"password"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(payload.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	hashed, err := auth.HashPassword(payload.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.users.Update(id, map[string]interface{}{"password": hashed}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	if err := h.users.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// Employees lists the caller's own employees.
func (h *UsersHandler) Employees(c *gin.Context) {
	current := auth.CurrentUser(c)
	users, err := h.users.ListByCompany(current.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": users})
}

// AddEmployee creates an employee account under the calling business owner.
// The employee inherits the owner's tenant database.
func (h *UsersHandler) AddEmployee(c *gin.Context) {
	current := auth.CurrentUser(c)

	var payload struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		FullName    string `json:"full_name"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Username == "" || payload.Email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter all fields"})
		return
	}
	if len(payload.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	exists, err := h.users.ExistsByUsernameOrEmail(payload.Username, payload.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or Email already exists"})
		return
	}

	hashed, err := auth.HashPassword(payload.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	companyID := current.ID
	employee := &models.User{
		ID:                    uuid.New(),
		Username:              payload.Username,
		Email:                 payload.Email,
		Password:              hashed,
		Role:                  models.RoleEmployee,
		CompanyID:             &companyID,
		Database:              current.Database,
		FullName:              payload.FullName,
		PhoneNumber:           payload.PhoneNumber,
		AccountExpirationDate: current.AccountExpirationDate,
	}
	if err := h.users.Create(employee); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Info().Str("username", employee.Username).Str("company", current.Username).Msg("employee added")
	c.JSON(http.StatusCreated, gin.H{"message": "employee added", "employee": employee})
}

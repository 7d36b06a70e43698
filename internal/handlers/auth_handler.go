package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"erp-reporting-backend/internal/auth"
	"erp-reporting-backend/internal/models"
	"erp-reporting-backend/internal/repository"
)

type AuthHandler struct {
	users    *repository.UserRepository
	sessions *auth.Sessions
}

func NewAuthHandler(users *repository.UserRepository, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// registrationErrors validates the register form the way the login site
// expects: all messages at once, not just the first failure.
func registrationErrors(username, email, password, password2, fullName string) []string {
	var errs []string
	if username == "" || email == "" || password == "" || password2 == "" || fullName == "" {
		errs = append(errs, "Please enter all fields")
	}
	if password != password2 {
		errs = append(errs, "Passwords do not match")
	}
	if len(password) < 6 {
		errs = append(errs, "Password must be at least 6 characters")
	}
	return errs
}

// Register creates a user account. New accounts start with no permissions
// until an admin assigns a role.
func (h *AuthHandler) Register(c *gin.Context) {
	var payload struct {
		Username              string `json:"username"`
		Email                 string `json:"email"`
		Password              string `json:"password"`
		Password2             string `json:"password2"`
		FullName              string `json:"full_name"`
		PhoneNumber           string `json:"phone_number"`
		CompanyName           string `json:"company_name"`
		Country               string `json:"country"`
		City                  string `json:"city"`
		Address               string `json:"address"`
		AccountExpirationDate string `json:"account_expiration_date"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	messages := registrationErrors(payload.Username, payload.Email, payload.Password, payload.Password2, payload.FullName)

	var expiration *time.Time
	if payload.AccountExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", payload.AccountExpirationDate)
		if err != nil {
			messages = append(messages, "Invalid expiration date, expected YYYY-MM-DD")
		} else {
			expiration = &parsed
		}
	}

	if len(messages) > 0 {
		errs := make([]gin.H, 0, len(messages))
		for _, msg := range messages {
			errs = append(errs, gin.H{"msg": msg})
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	exists, err := h.users.ExistsByUsernameOrEmail(payload.Username, payload.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"msg": "Username or Email already exists"}}})
		return
	}

	hashed, err := auth.HashPassword(payload.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:                    uuid.New(),
		Username:              payload.Username,
		Email:                 payload.Email,
		Password:              hashed,
		Role:                  models.RoleNoPermission,
		Permissions:           datatypes.JSON([]byte("[]")),
		FullName:              payload.FullName,
		PhoneNumber:           payload.PhoneNumber,
		CompanyName:           payload.CompanyName,
		Country:               payload.Country,
		City:                  payload.City,
		Address:               payload.Address,
		AccountExpirationDate: expiration,
	}
	if err := h.users.Create(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	c.JSON(http.StatusCreated, gin.H{"message": "You are now registered and can log in"})
}

// Login accepts a username or an email as identifier.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user, err := h.users.FindByIdentifier(payload.Identifier)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error_msg": "That username or email is not registered"})
		return
	}
	if !auth.CheckPassword(user.Password, payload.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error_msg": "Password incorrect"})
		return
	}

	if err := h.sessions.Issue(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	if err := h.users.Update(user.ID, map[string]interface{}{"last_login": now}); err != nil {
		log.Warn().Err(err).Str("username", user.Username).Msg("failed to record last login")
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged in", "user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "You are logged out"})
}

// Current returns the session user.
func (h *AuthHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": auth.CurrentUser(c)})
}

// DatabaseByCompany resolves a company user's tenant database name, used by
// employees during setup.
func (h *AuthHandler) DatabaseByCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	company, err := h.users.FindByID(id)
	if err != nil || company == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"database": company.Database})
}

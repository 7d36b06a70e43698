package tenant

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"erp-reporting-backend/internal/config"
	"erp-reporting-backend/internal/models"
)

var (
	// ErrDatabaseNotConfigured means neither the user nor its employer
	// carries a tenant database name.
	ErrDatabaseNotConfigured = errors.New("database name is not defined for this user")
	// ErrEmployerNotFound means an employee references a missing employer record.
	ErrEmployerNotFound = errors.New("employer not found for the employee")
)

type UserStore interface {
	FindByID(id uuid.UUID) (*models.User, error)
}

// Pool lazily opens one gorm connection per tenant database name and reuses
// it for the lifetime of the process.
type Pool struct {
	cfg   config.Config
	mu    sync.Mutex
	conns map[string]*gorm.DB
}

func NewPool(cfg config.Config) *Pool {
	return &Pool{cfg: cfg, conns: make(map[string]*gorm.DB)}
}

func (p *Pool) Get(name string) (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if db, ok := p.conns[name]; ok {
		return db, nil
	}

	db, err := gorm.Open(postgres.Open(p.cfg.DSN(name)), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	// The ERP tables already exist in every tenant database; only the tables
	// this service owns are migrated here.
	if err := db.AutoMigrate(&models.AccountBalance{}, &models.SentMessage{}, &models.SentInvoice{}); err != nil {
		return nil, err
	}
	log.Info().Str("tenant", name).Msg("opened tenant database connection")
	p.conns[name] = db
	return db, nil
}

// Resolver maps an authenticated user to its tenant database. An employee's
// requests resolve to the employer's database; every other role uses its own
// assigned name. Pure lookup, no side effects.
type Resolver struct {
	users UserStore
	pool  *Pool
}

func NewResolver(users UserStore, pool *Pool) *Resolver {
	return &Resolver{users: users, pool: pool}
}

func (r *Resolver) Resolve(user *models.User) (string, error) {
	var databaseName string
	if user.Role == models.RoleEmployee {
		if user.CompanyID == nil {
			return "", ErrEmployerNotFound
		}
		employer, err := r.users.FindByID(*user.CompanyID)
		if err != nil || employer == nil {
			return "", ErrEmployerNotFound
		}
		databaseName = employer.Database
	} else {
		databaseName = user.Database
	}

	if databaseName == "" {
		return "", ErrDatabaseNotConfigured
	}
	return databaseName, nil
}

// DB resolves the tenant database name and returns a pooled connection to it.
func (r *Resolver) DB(user *models.User) (*gorm.DB, error) {
	name, err := r.Resolve(user)
	if err != nil {
		return nil, err
	}
	return r.pool.Get(name)
}

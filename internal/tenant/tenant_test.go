package tenant

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"erp-reporting-backend/internal/models"
)

type mockUserStore struct {
	users map[uuid.UUID]*models.User
}

func (m *mockUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func TestResolve(t *testing.T) {
	employerID := uuid.New()
	missingID := uuid.New()

	store := &mockUserStore{users: map[uuid.UUID]*models.User{
		employerID: {ID: employerID, Role: models.RoleBusinessOwner, Database: "X_ACME"},
	}}
	r := NewResolver(store, nil)

	tests := []struct {
		name    string
		user    *models.User
		want    string
		wantErr error
	}{
		{
			name: "business owner uses own database",
			user: &models.User{Role: models.RoleBusinessOwner, Database: "X_ACME"},
			want: "X_ACME",
		},
		{
			name: "admin uses own database",
			user: &models.User{Role: models.RoleAdmin, Database: "admin_db"},
			want: "admin_db",
		},
		{
			name: "employee inherits employer database",
			user: &models.User{Role: models.RoleEmployee, CompanyID: &employerID},
			want: "X_ACME",
		},
		{
			name:    "employee with missing employer",
			user:    &models.User{Role: models.RoleEmployee, CompanyID: &missingID},
			wantErr: ErrEmployerNotFound,
		},
		{
			name:    "employee without company reference",
			user:    &models.User{Role: models.RoleEmployee},
			wantErr: ErrEmployerNotFound,
		},
		{
			name:    "owner without database name",
			user:    &models.User{Role: models.RoleBusinessOwner},
			wantErr: ErrDatabaseNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.user)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveEmployerWithoutDatabase(t *testing.T) {
	employerID := uuid.New()
	store := &mockUserStore{users: map[uuid.UUID]*models.User{
		employerID: {ID: employerID, Role: models.RoleBusinessOwner},
	}}
	r := NewResolver(store, nil)

	_, err := r.Resolve(&models.User{Role: models.RoleEmployee, CompanyID: &employerID})
	if !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("Resolve() error = %v, want ErrDatabaseNotConfigured", err)
	}
}

package handler

import (
	"reflect"
	"testing"
)

func TestRegistrationErrors(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		email     string
		password  string
		password2 string
		fullName  string
		want      []string
	}{
		{
			name:     "valid form",
			username: "sara", email: "sara@example.com",
			password: "secret1", password2: "secret1", fullName: "Sara Ali",
			want: nil,
		},
		{
			name:     "missing full name",
			username: "sara", email: "sara@example.com",
			password: "secret1", password2: "secret1", fullName: "",
			want: []string{"Please enter all fields"},
		},
		{
			name:     "password mismatch",
			username: "sara", email: "sara@example.com",
			password: "secret1", password2: "secret2", fullName: "Sara Ali",
			want: []string{"Passwords do not match"},
		},
		{
			name:     "short password",
			username: "sara", email: "sara@example.com",
			password: "abc", password2: "abc", fullName: "Sara Ali",
			want: []string{"Password must be at least 6 characters"},
		},
		{
			name:     "empty form reports everything at once",
			username: "", email: "",
			password: "", password2: "", fullName: "",
			want: []string{"Please enter all fields", "Password must be at least 6 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := registrationErrors(tt.username, tt.email, tt.password, tt.password2, tt.fullName)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("registrationErrors = %v, want %v", got, tt.want)
			}
		})
	}
}

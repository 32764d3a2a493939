package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Strict(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		pass    string
		wantErr bool
	}{
		{"strong password", "a@x.com", "very-strong-password", false},
		{"weak password", "a@x.com", "password", true},
		{"short password", "a@x.com", "pw123", true},
		{"empty email", "", "very-strong-password", true},
		{"everything empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RegisterRequest{Email: tt.email, Password: tt.pass}
			err := r.Strict()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

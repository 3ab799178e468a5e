package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetrent/internal/errors"
	"fleetrent/internal/model"
)

func TestUserService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		role          model.Role
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful signup",
			email: "new@example.com",
			role:  model.RoleCustomer,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "unknown role is rejected before any lookup",
			email:         "weird@example.com",
			role:          model.Role("admin"),
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidRole,
		},
		{
			name:  "duplicate key on insert conflicts",
			email: "racer@example.com",
			role:  model.RoleCustomer,
			setupMock: func(m *MockUserRepository) {
				// a concurrent signup won the unique index between the
				// email check and the insert
				m.On("FindByEmail", mock.Anything, "racer@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name:  "duplicate email conflicts",
			email: "taken@example.com",
			role:  model.RoleOwner,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.Signup(context.Background(), "Test User", tt.email, "password123", tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.role, user.Role)
				// stored password is a usable bcrypt hash, not the plaintext
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-api/internal/config"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const password = "Senha@Forte1"

func newConfig() *config.Config {
	return &config.Config{SecretKey: "jwt-secret"}
}

func activeUser(t *testing.T) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@loja.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleSeller,
	}
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(*mocks.MockUserRepository)
		expectedErr error
		code        string
	}{
		{
			name:     "login com email normalizado",
			email:    " Ana@Loja.com ",
			password: password,
			setup: func(users *mocks.MockUserRepository) {
				users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(activeUser(t), nil)
			},
		},
		{
			name:     "senha incorreta",
			email:    "ana@loja.com",
			password: "errada",
			setup: func(users *mocks.MockUserRepository) {
				users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(activeUser(t), nil)
			},
			expectedErr: ErrInvalidCredentials,
			code:        apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "usuário desativado",
			email:    "ana@loja.com",
			password: password,
			setup: func(users *mocks.MockUserRepository) {
				user := activeUser(t)
				user.Active = false
				users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(user, nil)
			},
			expectedErr: ErrUserDisabled,
			code:        apiErrors.ErrUserDisabled,
		},
		{
			name:     "usuário inexistente",
			email:    "nao@existe.com",
			password: password,
			setup: func(users *mocks.MockUserRepository) {
				users.EXPECT().GetUserByEmail(gomock.Any(), "nao@existe.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
			code:        apiErrors.ErrUserNotFound,
		},
		{
			name:        "campos vazios",
			setup:       func(*mocks.MockUserRepository) {},
			expectedErr: ErrMissingRequiredData,
			code:        apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mocks.NewMockUserRepository(ctrl)
			tt.setup(users)

			service := NewService(users, newConfig())

			token, err := service.LoginUser(context.Background(), tt.email, tt.password)
			if tt.expectedErr == nil {
				require.NoError(t, err)

				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, 7, claims.UserID)
				assert.Equal(t, domain.RoleSeller, claims.UserRoleID)
				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.code, authErr.Code)
		})
	}
}

func TestValidateToken(t *testing.T) {
	service := NewService(nil, newConfig())

	expired, err := generateJWT(activeUser(t), "jwt-secret", time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = service.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)

	otherKey, err := generateJWT(activeUser(t), "outro-segredo", time.Now())
	require.NoError(t, err)
	_, err = service.ValidateToken(otherKey)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("nao-e-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateUser(t *testing.T) {
	t.Run("administrador não pode ser cadastrado publicamente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)

		users.EXPECT().GetUserByEmail(gomock.Any(), "novo@loja.com").Return(nil, nil)
		users.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, domain.RoleCustomer, user.RoleID)
				assert.True(t, user.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
				user.ID = 10
				return user, nil
			})

		service := NewService(users, newConfig())

		user, err := service.CreateUser(context.Background(), &domain.User{
			Name:         "Novo",
			Lastname:     "Cliente",
			Email:        "Novo@Loja.com",
			PasswordHash: password,
			RoleID:       domain.RoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("email já cadastrado por corrida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)

		users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(nil, nil)
		users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, repository.ErrEmailTaken)

		service := NewService(users, newConfig())

		_, err := service.CreateUser(context.Background(), &domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana@loja.com",
			PasswordHash: password,
			RoleID:       domain.RoleSeller,
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("senha fraca", func(t *testing.T) {
		service := NewService(mocks.NewMockUserRepository(gomock.NewController(t)), newConfig())

		_, err := service.CreateUser(context.Background(), &domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana@loja.com",
			PasswordHash: "123456",
		})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestGenerateStrongPassword(t *testing.T) {
	service := NewService(nil, newConfig())

	for i := 0; i < 20; i++ {
		generated, err := generateStrongPassword(12)
		require.NoError(t, err)
		assert.Len(t, generated, 12)
		assert.NoError(t, service.ValidatePasswordStrength(generated))
	}
}

func TestGenerateStrongPassword_OnlyAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().GetUserByID(gomock.Any(), 7).Return(activeUser(t), nil)

	service := NewService(users, newConfig())

	_, err := service.GenerateStrongPassword(context.Background(), 7, 8)
	assert.ErrorIs(t, err, ErrNoAdminPrivileges)
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().GetUserByID(gomock.Any(), 7).Return(activeUser(t), nil)
	users.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova#Senha2")))
			return nil
		})

	service := NewService(users, newConfig())

	require.NoError(t, service.ChangePassword(context.Background(), 7, password, "Nova#Senha2"))
}

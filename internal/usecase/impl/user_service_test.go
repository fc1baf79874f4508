package impl

import (
	"context"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	mockRepo "zembil/internal/mocks/repository"
	mockSvc "zembil/internal/mocks/service"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service     usecase.UserUsecase
	userRepo    *mockRepo.MockUserRepository
	shopRepo    *mockRepo.MockShopRepository
	productRepo *mockRepo.MockProductRepository
	adRepo      *mockRepo.MockAdvertisementRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		userRepo:    mockRepo.NewMockUserRepository(t),
		shopRepo:    mockRepo.NewMockShopRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		adRepo:      mockRepo.NewMockAdvertisementRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
	}

	f.service = NewUserService(UserServiceParams{
		UserRepo:    f.userRepo,
		ShopRepo:    f.shopRepo,
		ProductRepo: f.productRepo,
		AdRepo:      f.adRepo,
		Hasher:      f.hasher,
		Logger:      testLogger(),
	})

	return f
}

func registerInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Name:     "Selam Tesfaye",
		Username: "selam",
		Email:    "selam@example.com",
		Password: "s3cret-pass",
		Phone:    "+251911000000",
	}
}

func TestUserService_RegisterUser(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().UsernameExists(ctx, "selam").Return(false, nil)
	f.userRepo.EXPECT().EmailExists(ctx, "selam@example.com").Return(false, nil)
	f.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	f.userRepo.EXPECT().
		CreateUser(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.PasswordHash == "hashed" && user.Role == entity.RoleUser
		})).
		Run(func(_ context.Context, user *entity.User) { user.ID = 1 }).
		Return(nil)

	user, err := f.service.RegisterUser(ctx, registerInput())
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "selam", user.Username)
}

func TestUserService_RegisterAdmin_SetsRole(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().UsernameExists(ctx, "selam").Return(false, nil)
	f.userRepo.EXPECT().EmailExists(ctx, "selam@example.com").Return(false, nil)
	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	f.userRepo.EXPECT().
		CreateUser(ctx, mock.MatchedBy(func(user *entity.User) bool { return user.Role == entity.RoleAdmin })).
		Return(nil)

	user, err := f.service.RegisterAdmin(ctx, registerInput())
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestUserService_RegisterUser_IdentityTaken(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		usernameTaken bool
		emailTaken    bool
		wantFields    map[string]string
	}{
		{
			name:          "username",
			usernameTaken: true,
			wantFields:    map[string]string{"username": "A user with that username already exists."},
		},
		{
			name:       "email",
			emailTaken: true,
			wantFields: map[string]string{"email": "A user with that email already exists."},
		},
		{
			name:          "both",
			usernameTaken: true,
			emailTaken:    true,
			wantFields: map[string]string{
				"username": "A user with that username already exists.",
				"email":    "A user with that email already exists.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t)
			f.userRepo.EXPECT().UsernameExists(ctx, "selam").Return(tt.usernameTaken, nil)
			f.userRepo.EXPECT().EmailExists(ctx, "selam@example.com").Return(tt.emailTaken, nil)

			user, err := f.service.RegisterUser(ctx, registerInput())
			assert.Nil(t, user)

			var fieldErr *domainerrors.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantFields, fieldErr.Fields())
		})
	}
}

func TestUserService_RegisterUser_RaceOnInsert(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().UsernameExists(ctx, "selam").Return(false, nil)
	f.userRepo.EXPECT().EmailExists(ctx, "selam@example.com").Return(false, nil)
	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	f.userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(repository.ErrUserAlreadyExists)

	_, err := f.service.RegisterUser(ctx, registerInput())

	var fieldErr *domainerrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Len(t, fieldErr.Fields(), 2)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().UsernameExists(ctx, "selam").Return(false, nil)
	f.userRepo.EXPECT().EmailExists(ctx, "selam@example.com").Return(false, nil)
	f.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("cost too high"))

	_, err := f.service.RegisterUser(ctx, registerInput())
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("admin sees everyone", func(t *testing.T) {
		f := createTestUserService(t)
		users := []*entity.User{{ID: 1}, {ID: 2}}
		f.userRepo.EXPECT().ListUsers(ctx).Return(users, nil)

		got, err := f.service.ListUsers(ctx, 1, entity.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("user sees only themselves", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindUserByID(ctx, uint(2)).Return(&entity.User{ID: 2}, nil)

		got, err := f.service.ListUsers(ctx, 2, entity.RoleUser)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].ID)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch", func(t *testing.T) {
		f := createTestUserService(t)

		_, err := f.service.UpdateUser(ctx, 1, 1, &usecase.UpdateUserInput{})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyPatch)
	})

	t.Run("unknown user is reported before ownership", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindUserByID(ctx, uint(5)).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.UpdateUser(ctx, 1, 5, &usecase.UpdateUserInput{Name: strPtr("x")})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("someone else's account", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindUserByID(ctx, uint(5)).Return(&entity.User{ID: 5}, nil)

		_, err := f.service.UpdateUser(ctx, 1, 5, &usecase.UpdateUserInput{Name: strPtr("x")})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unchanged username is not rechecked", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindUserByID(ctx, uint(1)).Return(&entity.User{ID: 1, Username: "selam"}, nil)
		f.userRepo.EXPECT().UpdateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := f.service.UpdateUser(ctx, 1, 1, &usecase.UpdateUserInput{Username: strPtr("selam"), Name: strPtr("Selam T")})
		require.NoError(t, err)
		assert.Equal(t, "Selam T", user.Name)
	})

	t.Run("taken email", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindUserByID(ctx, uint(1)).Return(&entity.User{ID: 1, Email: "a@example.com"}, nil)
		f.userRepo.EXPECT().EmailExists(ctx, "b@example.com").Return(true, nil)

		_, err := f.service.UpdateUser(ctx, 1, 1, &usecase.UpdateUserInput{Email: strPtr("b@example.com")})

		var fieldErr *domainerrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "email")
	})

	t.Run("password is rehashed", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindUserByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
		f.userRepo.EXPECT().UpdateUser(ctx, mock.Anything).Return(nil)
		f.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
		f.userRepo.EXPECT().UpdatePassword(ctx, uint(1), "new-hash").Return(nil)

		user, err := f.service.UpdateUser(ctx, 1, 1, &usecase.UpdateUserInput{Password: strPtr("new-password")})
		require.NoError(t, err)
		assert.Equal(t, "new-hash", user.PasswordHash)
	})
}

func TestUserService_GetStats(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().CountProducts(ctx).Return(int64(12), nil)
	f.userRepo.EXPECT().CountUsers(ctx).Return(int64(5), nil)
	f.adRepo.EXPECT().CountAdvertisements(ctx).Return(int64(2), nil)
	f.shopRepo.EXPECT().CountShops(ctx).Return(int64(3), nil)

	stats, err := f.service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.Stats{Products: 12, Users: 5, Ads: 2, Shops: 3}, stats)
}

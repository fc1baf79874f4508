// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "zembil/internal/delivery/context"
	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/domain/service"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgUsernameTaken = "A user with that username already exists."
	msgEmailTaken    = "A user with that email already exists."
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	adRepo      repository.AdvertisementRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	AdRepo      repository.AdvertisementRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:    params.UserRepo,
		shopRepo:    params.ShopRepo,
		productRepo: params.ProductRepo,
		adRepo:      params.AdRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an account with the user role.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	return srv.register(ctx, input, entity.RoleUser)
}

// RegisterAdmin creates an account with the admin role.
func (srv *userService) RegisterAdmin(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	return srv.register(ctx, input, entity.RoleAdmin)
}

func (srv *userService) register(ctx context.Context, input *usecase.RegisterUserInput, role entity.Role) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("username", input.Username))

	if err := srv.checkIdentityFree(ctx, &input.Username, &input.Email); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        input.Phone,
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, identityTakenError()
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Uint64("userID", uint64(user.ID)))

	return user, nil
}

// checkIdentityFree reports taken usernames and emails as field errors. Nil arguments are skipped.
func (srv *userService) checkIdentityFree(ctx context.Context, username, email *string) error {
	fields := make(map[string]string)

	if username != nil {
		exists, err := srv.userRepo.UsernameExists(ctx, *username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if exists {
			fields["username"] = msgUsernameTaken
		}
	}

	if email != nil {
		exists, err := srv.userRepo.EmailExists(ctx, *email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			fields["email"] = msgEmailTaken
		}
	}

	if len(fields) > 0 {
		return domainerrors.NewFieldError(fields)
	}

	return nil
}

// identityTakenError covers a unique violation raised by the database after the pre-check passed.
func identityTakenError() error {
	return domainerrors.NewFieldError(map[string]string{
		"username": msgUsernameTaken,
		"email":    msgEmailTaken,
	})
}

// GetUser returns one account.
func (srv *userService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListUsers returns all accounts for administrators and the caller's account otherwise.
func (srv *userService) ListUsers(ctx context.Context, callerID uint, callerRole entity.Role) ([]*entity.User, error) {
	if !callerRole.IsAdmin() {
		user, err := srv.GetUser(ctx, callerID)
		if err != nil {
			return nil, err
		}

		return []*entity.User{user}, nil
	}

	users, err := srv.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser applies a partial update to the caller's own account.
func (srv *userService) UpdateUser(ctx context.Context, callerID, id uint, input *usecase.UpdateUserInput) (*entity.User, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.ID != callerID {
		return nil, domainerrors.ErrForbidden.WrapMessage("users can only update their own account")
	}

	var username, email *string
	if input.Username != nil && *input.Username != user.Username {
		username = input.Username
	}
	if input.Email != nil && *input.Email != user.Email {
		email = input.Email
	}
	if err := srv.checkIdentityFree(ctx, username, email); err != nil {
		return nil, err
	}

	applyUserPatch(user, input)

	if err := srv.userRepo.UpdateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserAlreadyExists):
			return nil, identityTakenError()
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		default:
			return nil, errors.Wrap(err, "failed to update user")
		}
	}

	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}
		if err := srv.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
			return nil, errors.Wrap(err, "failed to update password")
		}
		user.PasswordHash = hash
	}

	return user, nil
}

func applyUserPatch(user *entity.User, input *usecase.UpdateUserInput) {
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
}

// GetStats returns the admin dashboard counters.
func (srv *userService) GetStats(ctx context.Context) (*entity.Stats, error) {
	var (
		stats entity.Stats
		err   error
	)

	if stats.Products, err = srv.productRepo.CountProducts(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}
	if stats.Users, err = srv.userRepo.CountUsers(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if stats.Ads, err = srv.adRepo.CountAdvertisements(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count advertisements")
	}
	if stats.Shops, err = srv.shopRepo.CountShops(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count shops")
	}

	return &stats, nil
}

package travel

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

// PasswordHasher stores passwords as salted one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserInput is the write shape of a user. Nil fields are left untouched on
// update. Password is write-only.
type UserInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Password    *string
}

type UserService interface {
	Create(ctx context.Context, in UserInput) (UserOutput, error)
	Get(ctx context.Context, id string) (UserOutput, error)
	List(ctx context.Context, q ListQuery) (Page[UserOutput], error)
	Update(ctx context.Context, id string, in UserInput) (UserOutput, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo   domain.UserRepository
	hasher PasswordHasher
	opts   options
}

func NewUserService(repo domain.UserRepository, hasher PasswordHasher, opts ...Option) UserService {
	return &userService{repo: repo, hasher: hasher, opts: buildOptions(opts)}
}

func (s *userService) Create(ctx context.Context, in UserInput) (UserOutput, error) {
	u, err := domain.NewUser(s.opts.newID(), domain.UserParams{
		FirstName:   deref(in.FirstName),
		LastName:    deref(in.LastName),
		Email:       deref(in.Email),
		PhoneNumber: deref(in.PhoneNumber),
	}, s.opts.now())
	if err != nil {
		return UserOutput{}, err
	}

	if err := s.setPassword(&u, in.Password); err != nil {
		return UserOutput{}, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return UserOutput{}, storageError(err, domain.ErrUserNotFound, ErrUserNotFound, ErrUserStorage)
	}

	return newUserOutput(u), nil
}

func (s *userService) Get(ctx context.Context, id string) (UserOutput, error) {
	u, err := s.load(ctx, id)
	if err != nil {
		return UserOutput{}, err
	}
	return newUserOutput(*u), nil
}

func (s *userService) List(ctx context.Context, q ListQuery) (Page[UserOutput], error) {
	q.ListingID = ""
	filter, page, size, err := q.filter()
	if err != nil {
		return Page[UserOutput]{}, err
	}

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return Page[UserOutput]{}, storageError(err, domain.ErrUserNotFound, ErrUserNotFound, ErrUserStorage)
	}

	return Page[UserOutput]{
		Count:    total,
		Page:     page,
		PageSize: size,
		Results:  mapOutputs(users, newUserOutput),
	}, nil
}

func (s *userService) Update(ctx context.Context, id string, in UserInput) (UserOutput, error) {
	existing, err := s.load(ctx, id)
	if err != nil {
		return UserOutput{}, err
	}

	u := *existing
	setString(&u.FirstName, in.FirstName)
	setString(&u.LastName, in.LastName)
	setString(&u.Email, in.Email)
	setString(&u.PhoneNumber, in.PhoneNumber)
	if err := u.Validate(); err != nil {
		return UserOutput{}, err
	}
	if err := s.setPassword(&u, in.Password); err != nil {
		return UserOutput{}, err
	}
	u.Touch(s.opts.now())

	if err := s.repo.Update(ctx, u); err != nil {
		return UserOutput{}, storageError(err, domain.ErrUserNotFound, ErrUserNotFound, ErrUserStorage)
	}

	return newUserOutput(u), nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	userID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return storageError(err, domain.ErrUserNotFound, ErrUserNotFound, ErrUserStorage)
	}
	return nil
}

func (s *userService) load(ctx context.Context, id string) (*domain.User, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, storageError(err, domain.ErrUserNotFound, ErrUserNotFound, ErrUserStorage)
	}
	return u, nil
}

func (s *userService) setPassword(u *domain.User, password *string) error {
	if password == nil || *password == "" {
		return nil
	}
	if _, err := domain.ValidatePassword(*password); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(*password)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHashPassword, err)
	}
	u.PasswordHash = hash
	return nil
}

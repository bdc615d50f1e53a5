package user

import (
	"context"

	"github.com/workforce360/workforce-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(repo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: repo,
	}
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.ListUsersFilter) (user.ListUsersResponse, error) {
	users, total, err := s.List(ctx, filter)
	if err != nil {
		return user.ListUsersResponse{}, err
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}

	return user.ListUsersResponse{
		Users:      responses,
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return u.ToResponse(), nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if _, err := s.GetByID(ctx, req.ID); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return updated.ToResponse(), nil
}

// DeleteUser implements user.UserService. The seeded default admin can never
// be deleted.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if u.IsDefaultAdmin {
		return user.ErrCannotDeleteDefaultAdmin
	}

	return s.Delete(ctx, id)
}

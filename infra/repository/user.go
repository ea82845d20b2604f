package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/user"
)

type userRepository struct {
	uow *UnitOfWork
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var m User
	if err := r.uow.session().WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, user.ErrUserNotFound)
		}
		return nil, err
	}
	return toDomainUser(&m), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var m User
	if err := r.uow.session().WithContext(ctx).First(&m, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", username, user.ErrUserNotFound)
		}
		return nil, err
	}
	return toDomainUser(&m), nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	var ms []User
	if err := r.uow.session().WithContext(ctx).Order("created_at").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*user.User, 0, len(ms))
	for i := range ms {
		out = append(out, toDomainUser(&ms[i]))
	}
	return out, nil
}

func (r *userRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	m := User{
		ID:       uuid.NewString(),
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	}
	if err := r.uow.session().WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	r.uow.writes++
	return toDomainUser(&m), nil
}

func (r *userRepository) Update(ctx context.Context, u *user.User) (bool, error) {
	res := r.uow.session().WithContext(ctx).
		Model(&User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"username": u.Username,
			"email":    u.Email,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	r.uow.writes++
	return true, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.uow.session().WithContext(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	r.uow.writes++
	return true, nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := r.uow.session().WithContext(ctx).
		Model(&User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func toDomainUser(m *User) *user.User {
	return &user.User{
		ID:       m.ID,
		Username: m.Username,
		Email:    m.Email,
		Password: m.Password,
	}
}

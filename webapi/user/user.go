// Package user exposes the user-management endpoints.
package user

import (
	"github.com/gofiber/fiber/v2"

	domain "github.com/veneS-Sudo/MiniBank/pkg/domain/user"
	usersvc "github.com/veneS-Sudo/MiniBank/pkg/service/user"
	"github.com/veneS-Sudo/MiniBank/webapi/common"
)

// CreateUserRequest carries the fields of a new user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest carries the mutable user fields.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
}

// UserResponse is the caller-facing user shape; the password hash never
// leaves the service.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Routes registers the user endpoints behind the given auth middleware.
// Registration itself is open.
func Routes(app *fiber.App, svc *usersvc.Service, protected fiber.Handler) {
	app.Post("/users", CreateUser(svc))
	app.Get("/users", protected, ListUsers(svc))
	app.Get("/users/:id", protected, GetUser(svc))
	app.Put("/users/:id", protected, UpdateUser(svc))
	app.Delete("/users/:id", protected, DeleteUser(svc))
}

// CreateUser registers a new user.
func CreateUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateUserRequest](c)
		if input == nil {
			return err
		}
		u, err := svc.Create(c.UserContext(), input.Username, input.Email, input.Password)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "user created", toResponse(u))
	}
}

// GetUser returns a single user.
func GetUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.GetByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "user found", toResponse(u))
	}
}

// ListUsers returns every user.
func ListUsers(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.GetAll(c.UserContext())
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		out := make([]UserResponse, 0, len(users))
		for _, u := range users {
			out = append(out, toResponse(u))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "users listed", out)
	}
}

// UpdateUser changes a user's username and email.
func UpdateUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateUserRequest](c)
		if input == nil {
			return err
		}
		updated, err := svc.Update(c.UserContext(), &domain.User{
			ID:       c.Params("id"),
			Username: input.Username,
			Email:    input.Email,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "user updated", fiber.Map{"updated": updated})
	}
}

// DeleteUser removes a user without bank accounts.
func DeleteUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deleted, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "user deleted", fiber.Map{"deleted": deleted})
	}
}

func toResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

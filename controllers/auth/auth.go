package authControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/middleware"
	"github.com/hearthware/store-api/services"
)

type RegisterInput struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /register
func Register(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Validation errors", helpers.ValidationErrors(err))
			return
		}

		user, token, err := users.Register(input.Name, input.Email, input.Password)
		if err == services.ErrEmailTaken {
			helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Validation errors", gin.H{
				"email": []string{"The email has already been taken"},
			})
			return
		}
		if err != nil {
			log.Printf("register failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to register user", nil)
			return
		}

		helpers.SuccessRes(c, http.StatusOK, "User registered successfully", gin.H{
			"user":  user,
			"token": token,
		})
	}
}

// POST /login
func Login(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Validation errors", helpers.ValidationErrors(err))
			return
		}

		user, token, err := users.Login(input.Email, input.Password)
		if err == services.ErrNotFound {
			helpers.ErrorRes(c, http.StatusUnauthorized, "Email not found.", nil)
			return
		}
		if err == services.ErrBadCredential {
			helpers.ErrorRes(c, http.StatusUnauthorized, "The provided credentials are incorrect.", nil)
			return
		}
		if err != nil {
			log.Printf("login failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to log in", nil)
			return
		}

		helpers.SuccessRes(c, http.StatusOK, "Login successful", gin.H{
			"user":  user,
			"role":  user.Role,
			"token": token,
		})
	}
}

// POST /logout
func Logout(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := users.Logout(middleware.UserID(c)); err != nil {
			log.Printf("logout failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to log out", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "Logged out successfully", nil)
	}
}

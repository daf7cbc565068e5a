package userControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearthware/store-api/helpers"
	"github.com/hearthware/store-api/middleware"
	"github.com/hearthware/store-api/services"
)

type PasswordUpdateInput struct {
	CurrentPassword         string `json:"current_password" binding:"required"`
	NewPassword             string `json:"new_password" binding:"required,min=8"`
	NewPasswordConfirmation string `json:"new_password_confirmation" binding:"required,eqfield=NewPassword"`
}

// GET /user-details
func UserDetails(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.Details(middleware.UserID(c))
		if err == services.ErrNotFound {
			helpers.ErrorRes(c, http.StatusNotFound, "User not found", nil)
			return
		}
		if err != nil {
			log.Printf("user details failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to fetch user", nil)
			return
		}
		helpers.SuccessRes(c, http.StatusOK, "User Details", user)
	}
}

// POST /password-update
func PasswordUpdate(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PasswordUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helpers.ErrorRes(c, http.StatusUnprocessableEntity, "Validation failed", helpers.ValidationErrors(err))
			return
		}

		user, token, err := users.UpdatePassword(middleware.UserID(c), input.CurrentPassword, input.NewPassword)
		if err == services.ErrBadCredential {
			helpers.ErrorRes(c, http.StatusUnprocessableEntity, "The current password is incorrect", gin.H{
				"current_password": []string{"The provided password does not match our records."},
			})
			return
		}
		if err != nil {
			log.Printf("password update failed: %v", err)
			helpers.ErrorRes(c, http.StatusInternalServerError, "Failed to update password", nil)
			return
		}

		helpers.SuccessRes(c, http.StatusOK, "Password updated successfully", gin.H{
			"user":  user,
			"token": token,
		})
	}
}

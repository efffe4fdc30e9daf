package users

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/database"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/routes/auth"
)

func CreateUserAPI(c *fiber.Ctx) error {
	type CreateUserRequest struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		UserName      string `json:"user_name"`
		Password      string `json:"password"`
		Age           int    `json:"age"`
		Address       string `json:"address"`
		CnicNo        int64  `json:"cnic_no"`
		DepartmentID  string `json:"department_id"`
		DesignationID string `json:"designation_id"`
		RoleID        string `json:"role_id"`
		JoiningDate   string `json:"joining_date"`
		ProfilePic    string `json:"profile_pic"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	missing := []string{}
	for field, value := range map[string]string{
		"name": req.Name, "email": req.Email, "user_name": req.UserName,
		"password": req.Password, "department_id": req.DepartmentID,
		"designation_id": req.DesignationID, "role_id": req.RoleID,
		"joining_date": req.JoiningDate,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields", "fields": missing})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}

	db := config.GetDB()

	if taken, err := database.EmailTaken(db, req.Email, ""); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	} else if taken {
		return c.Status(409).JSON(fiber.Map{"error": "Email already in use"})
	}
	if taken, err := database.UserNameTaken(db, req.UserName, ""); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	} else if taken {
		return c.Status(409).JSON(fiber.Map{"error": "Username already in use"})
	}

	// Referenced department, designation and role must all exist.
	var exists bool
	db.QueryRow(`SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, req.DepartmentID).Scan(&exists)
	if !exists {
		return c.Status(400).JSON(fiber.Map{"error": "Department not found"})
	}
	db.QueryRow(`SELECT EXISTS(SELECT 1 FROM designations WHERE id = $1 AND department_id = $2)`, req.DesignationID, req.DepartmentID).Scan(&exists)
	if !exists {
		return c.Status(400).JSON(fiber.Map{"error": "Designation not found in department"})
	}
	db.QueryRow(`SELECT EXISTS(SELECT 1 FROM roles WHERE id = $1)`, req.RoleID).Scan(&exists)
	if !exists {
		return c.Status(400).JSON(fiber.Map{"error": "Role not found"})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		UserName:      req.UserName,
		Password:      hashedPassword,
		Age:           req.Age,
		Address:       req.Address,
		CnicNo:        req.CnicNo,
		DepartmentID:  &req.DepartmentID,
		DesignationID: &req.DesignationID,
		JoiningDate:   req.JoiningDate,
	}
	if req.ProfilePic != "" {
		user.ProfilePic = &req.ProfilePic
	}

	if err := database.CreateUser(db, user, req.RoleID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

func GetUsersAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	users, err := database.GetAllUsers(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	for _, u := range users {
		if roles, err := database.GetUserRoles(db, u.ID); err == nil {
			u.Roles = roles
		}
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

func GetUserAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}
	db := config.GetDB()

	user, err := database.GetUserByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	return c.JSON(fiber.Map{"user": user})
}

func UpdateUserAPI(c *fiber.Ctx) error {
	type UpdateUserRequest struct {
		Name          *string `json:"name"`
		Email         *string `json:"email"`
		Age           *int    `json:"age"`
		Address       *string `json:"address"`
		CnicNo        *int64  `json:"cnic_no"`
		DepartmentID  *string `json:"department_id"`
		DesignationID *string `json:"designation_id"`
		ProfilePic    *string `json:"profile_pic"`
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}
	db := config.GetDB()

	user, err := database.GetUserByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	if req.Email != nil && *req.Email != user.Email {
		if taken, err := database.EmailTaken(db, *req.Email, id); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		} else if taken {
			return c.Status(409).JSON(fiber.Map{"error": "Email already in use"})
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.CnicNo != nil {
		user.CnicNo = *req.CnicNo
	}
	if req.DepartmentID != nil {
		var exists bool
		db.QueryRow(`SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, *req.DepartmentID).Scan(&exists)
		if !exists {
			return c.Status(400).JSON(fiber.Map{"error": "Department not found"})
		}
		user.DepartmentID = req.DepartmentID
	}
	if req.DesignationID != nil {
		var exists bool
		db.QueryRow(`SELECT EXISTS(SELECT 1 FROM designations WHERE id = $1)`, *req.DesignationID).Scan(&exists)
		if !exists {
			return c.Status(400).JSON(fiber.Map{"error": "Designation not found"})
		}
		user.DesignationID = req.DesignationID
	}
	if req.ProfilePic != nil {
		user.ProfilePic = req.ProfilePic
	}

	query := `UPDATE users SET name = $1, email = $2, age = $3, address = $4, cnic_no = $5,
			department_id = $6, designation_id = $7, profile_pic = $8, updated_at = NOW()
		WHERE id = $9`

	if _, err := db.Exec(query, user.Name, user.Email, user.Age, user.Address, user.CnicNo,
		user.DepartmentID, user.DesignationID, user.ProfilePic, id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	updated, err := database.GetUserByID(db, id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    updated,
	})
}

func DeleteUserAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}
	db := config.GetDB()

	if err := database.DeleteUser(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

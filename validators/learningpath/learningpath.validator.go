package learningPathValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateLearningPathRequest is the validated payload for path creation.
type CreateLearningPathRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CourseIDs   []uint `json:"course_ids"`
}

// AssignLearningPathRequest is the validated payload for path assignment.
type AssignLearningPathRequest struct {
	EmployeeIDs     []uint `json:"employee_ids"`
	LearningPathIDs []uint `json:"learning_path_ids"`
}

// CreateLearningPath validates the learning path creation request
func CreateLearningPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLearningPathRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if len(reqData.CourseIDs) == 0 {
			errors["course_ids"] = "At least one course is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLearningPath", reqData)
		return c.Next()
	}
}

// AssignLearningPath validates the learning path assignment request
func AssignLearningPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignLearningPathRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.EmployeeIDs) == 0 {
			errors["employee_ids"] = "At least one employee is required!"
		}

		if len(reqData.LearningPathIDs) == 0 {
			errors["learning_path_ids"] = "At least one learning path is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPathAssign", reqData)
		return c.Next()
	}
}

// EmployeeIDParam validates the :employeeId path parameter
func EmployeeIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeIDStr := strings.TrimSpace(c.Params("employeeId"))
		if employeeIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Employee ID is required!", nil)
		}

		employeeID, err := strconv.Atoi(employeeIDStr)
		if err != nil || employeeID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Employee ID!", nil)
		}

		c.Locals("employeeID", employeeID)
		return c.Next()
	}
}

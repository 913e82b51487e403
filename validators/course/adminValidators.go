package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// ============ Course Validators ============

// CreateCourse validates admin course creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Tag         string `json:"tag"`
			Duration    int64  `json:"duration"`
			ImageURL    string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Tag = strings.TrimSpace(reqData.Tag)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Tag == "" {
			errors["tag"] = "Tag is required!"
		} else if !courseModels.IsValidTag(reqData.Tag) {
			errors["tag"] = "Tag is not a valid course category!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseIDParam validates the :courseId path parameter
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
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

// ============ Module Validators ============

// AddModule validates module creation request
func AddModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title    string `json:"title"`
			Content  string `json:"content"`
			Duration int64  `json:"duration"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Content = strings.TrimSpace(reqData.Content)

		if reqData.Title == "" {
			errors["title"] = "Module title is required!"
		}

		if reqData.Content == "" {
			errors["content"] = "Module content is required!"
		}

		if reqData.Duration <= 0 {
			errors["duration"] = "Module duration must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// ============ Assignment Validators ============

// AssignCourse validates the course assignment request
func AssignCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			EmployeeIDs []uint `json:"employee_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.EmployeeIDs) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"employee_ids": "At least one employee ID is required!",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedAssign", reqData)
		return c.Next()
	}
}

// ============ Quiz Validators ============

// QuizRequest is the validated payload for quiz creation.
type QuizRequest struct {
	Questions []struct {
		QuestionText string `json:"question_text"`
		Options      []struct {
			OptionText string `json:"option_text"`
			IsCorrect  bool   `json:"is_correct"`
		} `json:"options"`
	} `json:"questions"`
}

// CreateQuiz validates quiz creation: every question needs at least two
// options with exactly one marked correct
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(QuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}

		for i, q := range reqData.Questions {
			if strings.TrimSpace(q.QuestionText) == "" {
				errors["questions"] = "Question text is required!"
				break
			}
			if len(q.Options) < 2 {
				errors["questions"] = "Every question needs at least two options!"
				break
			}
			correctCount := 0
			for _, opt := range q.Options {
				if strings.TrimSpace(opt.OptionText) == "" {
					errors["questions"] = "Option text is required!"
				}
				if opt.IsCorrect {
					correctCount++
				}
			}
			if correctCount != 1 {
				errors["questions"] = "Question " + strconv.Itoa(i+1) + " must have exactly one correct option!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

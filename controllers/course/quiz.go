package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateQuiz creates a quiz with its questions and options for a course
func AdminCreateQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// One quiz per course in the observed flows
	var existingQuiz courseModels.Quiz
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).First(&existingQuiz).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz already exists for this course!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*courseValidator.QuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tx := database.Database.Db.Begin()

	quiz := courseModels.Quiz{CourseID: uint(courseID)}
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	for qi, q := range reqData.Questions {
		question := courseModels.QuizQuestion{
			QuizID:       quiz.ID,
			QuestionText: q.QuestionText,
			OrderIndex:   qi,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
		}

		for oi, opt := range q.Options {
			option := courseModels.QuizOption{
				QuestionID: question.ID,
				OptionText: opt.OptionText,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: oi,
			}
			if err := tx.Create(&option).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
			}
		}
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// GetQuiz fetches the quiz for a course with correct-answer flags stripped
func GetQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found for this course!", nil)
	}

	type QuestionWithOptions struct {
		courseModels.QuizQuestion
		Options []courseModels.QuizOption `json:"options"`
	}

	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("quiz_id = ?", quiz.ID).Order("order_index asc").Find(&questions)

	result := make([]QuestionWithOptions, len(questions))
	for i, q := range questions {
		var options []courseModels.QuizOption
		database.Database.Db.Where("question_id = ?", q.ID).Order("order_index asc").Find(&options)
		// Hide correct flags from employees
		for j := range options {
			options[j].IsCorrect = false
		}
		result[i] = QuestionWithOptions{QuizQuestion: q, Options: options}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": result,
	})
}

// SubmitQuiz scores a submitted answer set against the quiz answer key and
// records the attempt. Answers map 0-indexed question positions to the
// submitted option's display text; matching is exact, with no case folding
// or trimming. A score strictly greater than 50 passes.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found for this course!", nil)
	}

	reqData, ok := c.Locals("validatedQuizSubmission").(*struct {
		Answers map[string]string `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var questions []courseModels.QuizQuestion
	if err := database.Database.Db.Where("quiz_id = ?", quiz.ID).Order("order_index asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quiz questions!", nil)
	}

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz has no questions!", nil)
	}

	rawScore := 0
	for position, question := range questions {
		var correct courseModels.QuizOption
		if err := database.Database.Db.Where("question_id = ? AND is_correct = ?", question.ID, true).First(&correct).Error; err != nil {
			continue
		}
		if reqData.Answers[strconv.Itoa(position)] == correct.OptionText {
			rawScore++
		}
	}

	percentageScore := float64(rawScore) / float64(len(questions)) * 100
	isPassed := percentageScore > 50

	answersJSON, _ := json.Marshal(reqData.Answers)

	// Every submission is kept as its own historical record
	attempt := courseModels.QuizProgress{
		EmployeeID:  userID,
		CourseID:    uint(courseID),
		QuizID:      quiz.ID,
		Score:       percentageScore,
		IsPassed:    isPassed,
		Answers:     datatypes.JSON(answersJSON),
		CompletedAt: time.Now(),
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", fiber.Map{
		"score":     percentageScore,
		"is_passed": isPassed,
	})
}

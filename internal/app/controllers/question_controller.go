package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/app/services"
	"github.com/yigit/examport/internal/middleware"
)

// QuestionController handles question and answer option operations
type QuestionController struct {
	questionService *services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService *services.QuestionService) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// CreateQuestion handles question creation
// @Summary Create a new question
// @Description Adds a question to an existing exam
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuestionRequest true "Question information"
// @Success 201 {object} dto.APIResponse{data=models.Question} "Question created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	question, err := c.questionService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      question,
		Timestamp: time.Now(),
	})
}

// GetQuestionByID retrieves a question by ID
// @Summary Get question by ID
// @Description Retrieves a question without its answer options
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=models.Question} "Question retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestionByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx, "id")
		return
	}

	question, err := c.questionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      question,
		Timestamp: time.Now(),
	})
}

// GetQuestionWithOptions retrieves a question with its options
// @Summary Get question with options
// @Description Retrieves a question together with its answer options in display order
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=models.Question} "Question retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{id}/with-options [get]
func (c *QuestionController) GetQuestionWithOptions(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx, "id")
		return
	}

	question, err := c.questionService.GetWithOptions(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      question,
		Timestamp: time.Now(),
	})
}

// GetQuestionsByExam retrieves the questions of an exam
// @Summary List exam questions
// @Description Retrieves the questions of an exam in display order, without options
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param examId path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Question} "Questions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/exam/{examId} [get]
func (c *QuestionController) GetQuestionsByExam(ctx *gin.Context) {
	examID, err := strconv.ParseInt(ctx.Param("examId"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx, "examId")
		return
	}

	questions, err := c.questionService.GetByExam(ctx, examID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      questions,
		Timestamp: time.Now(),
	})
}

// GetQuestionsByExamWithOptions retrieves exam questions with their options
// @Summary List exam questions with options
// @Description Retrieves the questions of an exam together with their answer options
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param examId path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Question} "Questions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/exam/{examId}/with-options [get]
func (c *QuestionController) GetQuestionsByExamWithOptions(ctx *gin.Context) {
	examID, err := strconv.ParseInt(ctx.Param("examId"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx, "examId")
		return
	}

	questions, err := c.questionService.GetByExamWithOptions(ctx, examID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      questions,
		Timestamp: time.Now(),
	})
}

// UpdateQuestion updates an existing question
// @Summary Update a question
// @Description Applies a partial update to an existing question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Question} "Question updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx, "id")
		return
	}

	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	question, err := c.questionService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      question,
		Timestamp: time.Now(),
	})
}

// DeleteQuestion deletes a question and its options
// @Summary Delete a question
// @Description Removes the question together with all of its answer options
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Question deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx, "id")
		return
	}

	if err := c.questionService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Question deleted successfully"},
		Timestamp: time.Now(),
	})
}

// AddOption adds an answer option to a question
// @Summary Add an answer option
// @Description Adds an answer option to an existing question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body dto.CreateOptionRequest true "Option information"
// @Success 201 {object} dto.APIResponse{data=models.QuestionOption} "Option added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{id}/options [post]
func (c *QuestionController) AddOption(ctx *gin.Context) {
	questionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx, "id")
		return
	}

	var req dto.CreateOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	option, err := c.questionService.AddOption(ctx, questionID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      option,
		Timestamp: time.Now(),
	})
}

// UpdateOption updates an answer option
// @Summary Update an answer option
// @Description Applies a partial update to an existing answer option
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Option ID"
// @Param request body dto.UpdateOptionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.QuestionOption} "Option updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Option not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /options/{id} [put]
func (c *QuestionController) UpdateOption(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx, "id")
		return
	}

	var req dto.UpdateOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	option, err := c.questionService.UpdateOption(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      option,
		Timestamp: time.Now(),
	})
}

// DeleteOption deletes an answer option
// @Summary Delete an answer option
// @Description Removes a single answer option from its question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Option ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Option deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid option ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Option not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /options/{id} [delete]
func (c *QuestionController) DeleteOption(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx, "id")
		return
	}

	if err := c.questionService.DeleteOption(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Option deleted successfully"},
		Timestamp: time.Now(),
	})
}

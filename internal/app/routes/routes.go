package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examport/internal/app/controllers"
	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/middleware"
)

// SetupRouter configures all application routes. Everything under /api
// except user registration requires a valid token; mutation routes on
// courses, exams and questions additionally require the admin or teacher
// role.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	examController *controllers.ExamController,
	questionController *controllers.QuestionController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/request-reset", authController.RequestPasswordReset)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	staffRequired := authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleTeacher))

	api := router.Group("/api")

	// Registration stays open; everything else under /api needs a token
	api.POST("/users", userController.CreateUser)

	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/change-password", authController.ChangePassword)

		users := authenticated.Group("/users")
		{
			users.GET("/:id", userController.GetUserByID)
			users.PUT("/:id", userController.UpdateUser)
			users.POST("/:id/change-password", authController.ChangeUserPassword)

			usersAdmin := users.Group("")
			usersAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				usersAdmin.GET("", userController.GetAllUsers)
				usersAdmin.DELETE("/:id", userController.DeleteUser)
			}
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.GET("/instructor/:userId", courseController.GetCoursesByInstructor)
			courses.GET("/student/:userId", courseController.GetEnrolledCourses)

			coursesStaff := courses.Group("")
			coursesStaff.Use(staffRequired)
			{
				coursesStaff.POST("", courseController.CreateCourse)
				coursesStaff.PUT("/:id", courseController.UpdateCourse)
				coursesStaff.DELETE("/:id", courseController.DeleteCourse)
				coursesStaff.POST("/:id/enroll", courseController.EnrollStudent)
			}
		}

		exams := authenticated.Group("/exams")
		{
			exams.GET("/:id", examController.GetExamByID)
			exams.GET("/course/:courseId", examController.GetExamsByCourse)
			exams.GET("/creator/:userId", examController.GetExamsByCreator)

			examsStaff := exams.Group("")
			examsStaff.Use(staffRequired)
			{
				examsStaff.POST("", examController.CreateExam)
				examsStaff.PUT("/:id", examController.UpdateExam)
				examsStaff.DELETE("/:id", examController.DeleteExam)
				examsStaff.POST("/:id/publish", examController.PublishExam)
			}
		}

		questions := authenticated.Group("/questions")
		{
			questions.GET("/:id", questionController.GetQuestionByID)
			questions.GET("/:id/with-options", questionController.GetQuestionWithOptions)
			questions.GET("/exam/:examId", questionController.GetQuestionsByExam)
			questions.GET("/exam/:examId/with-options", questionController.GetQuestionsByExamWithOptions)

			questionsStaff := questions.Group("")
			questionsStaff.Use(staffRequired)
			{
				questionsStaff.POST("", questionController.CreateQuestion)
				questionsStaff.PUT("/:id", questionController.UpdateQuestion)
				questionsStaff.DELETE("/:id", questionController.DeleteQuestion)
				questionsStaff.POST("/:id/options", questionController.AddOption)
			}
		}

		options := authenticated.Group("/options")
		options.Use(staffRequired)
		{
			options.PUT("/:id", questionController.UpdateOption)
			options.DELETE("/:id", questionController.DeleteOption)
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy"})
	})
}

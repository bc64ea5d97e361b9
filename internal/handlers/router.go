package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hirestream/hirestream/internal/auth"
	"github.com/hirestream/hirestream/internal/config"
	"github.com/hirestream/hirestream/internal/models"
	"github.com/hirestream/hirestream/internal/services"
	"github.com/hirestream/hirestream/internal/storage"
)

// Deps collects everything the route tree needs.
type Deps struct {
	Cfg          config.Config
	Users        *services.UserService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Interviews   *services.InterviewService
	Resume       *services.ResumeService
	Uploader     storage.Uploader
}

// NewRouter builds the full route tree. Role gates mirror the route table:
// job posting is recruiter-only, the admin verification toggles admin-only,
// apply student-only; the public job listings carry no guard at all.
func NewRouter(deps Deps) *gin.Engine {
	userHandler := NewUserHandler(deps.Users, deps.Cfg)
	studentHandler := NewStudentHandler(deps.Users, deps.Jobs, deps.Applications, deps.Interviews, deps.Resume, deps.Uploader)
	recruiterHandler := NewRecruiterHandler(deps.Jobs, deps.Applications)
	interviewHandler := NewInterviewHandler(deps.Interviews)
	adminHandler := NewAdminHandler(deps.Jobs, deps.Users, deps.Applications)
	applicationHandler := NewApplicationHandler(deps.Applications)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authed := auth.Middleware(deps.Cfg.JWTSecret)

	r.GET("/", HealthCheck)

	user := r.Group("/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)
	}

	student := r.Group("/student", authed)
	{
		student.GET("/profile", studentHandler.GetProfile)
		student.PUT("/profile", studentHandler.UpdateProfile)
		student.GET("/jobs", studentHandler.VerifiedJobs)
		student.GET("/jobs/:id", studentHandler.VerifiedJobByID)
		student.GET("/applications/status", studentHandler.StatusCounts)
		student.GET("/interviews", studentHandler.MyInterviews)
		student.POST("/parse-resume", studentHandler.ParseResume)
	}

	recruiter := r.Group("/recruiter")
	{
		recruiter.POST("/jobs", authed, auth.RequireRole(models.RoleRecruiter), recruiterHandler.CreateJob)
		recruiter.GET("/jobs", recruiterHandler.ListJobs)
		recruiter.GET("/jobs/active", recruiterHandler.ActiveJobs)
		recruiter.GET("/applications", authed, recruiterHandler.AllApplications)
		recruiter.GET("/applicationsbystatus", authed, recruiterHandler.ApplicationsByStatus)
		recruiter.GET("/candidates/:id", authed, recruiterHandler.Candidate)
		recruiter.PUT("/applications/:applicationId/status", authed, recruiterHandler.UpdateApplicationStatus)
		recruiter.POST("/interviews", authed, interviewHandler.Create)
		recruiter.PUT("/interviews/:id", authed, interviewHandler.Update)
		recruiter.GET("/interviews", authed, interviewHandler.List)
		recruiter.DELETE("/interviews/:id", authed, interviewHandler.Delete)
		recruiter.PUT("/updateinterviews/:id", authed, interviewHandler.UpdateStatus)
	}

	admin := r.Group("/admin", authed)
	{
		admin.GET("/jobs", auth.RequireRole(models.RoleAdmin), adminHandler.AllJobs)
		admin.PUT("/jobs/verify", auth.RequireRole(models.RoleAdmin), adminHandler.VerifyJob)
		admin.PUT("/students/:id/verify", auth.RequireRole(models.RoleAdmin), adminHandler.VerifyStudent)
		admin.GET("/students", adminHandler.Students)
		admin.GET("/pendingverifications", adminHandler.PendingVerifications)
		admin.GET("/recruiters", adminHandler.Recruiters)
		admin.GET("/applications", adminHandler.AllApplications)
	}

	applications := r.Group("/applications", authed)
	{
		applications.POST("/apply", auth.RequireRole(models.RoleStudent), applicationHandler.Apply)
		applications.GET("/myapplication", applicationHandler.MyApplications)
		applications.GET("/:id", applicationHandler.Status)
	}

	return r
}

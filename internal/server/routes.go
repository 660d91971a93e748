// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "jobcrm-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jobcrm-backend/internal/controller"
	"jobcrm-backend/internal/middleware"
	"jobcrm-backend/internal/repository"
	"jobcrm-backend/internal/utilities"
)

// RegisterRoutes will register each http endpoint routes to bound MyServer instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	ctrl := controller.New(repository.New(s.DB))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader(), middleware.RequestID(), middleware.EnvRateLimitMiddleware())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		companyRoute := v1.Group("/company")
		{
			companyRoute.POST("", middleware.SizeLimit(1<<20), ctrl.Company.CreateCompany)
			companyRoute.GET("", ctrl.Company.GetCompanies)
			companyRoute.GET(":id", ctrl.Company.GetCompanyByID)
		}

		applicationRoute := v1.Group("/application")
		{
			applicationRoute.POST("", middleware.SizeLimit(1<<20), ctrl.Application.CreateApplication)
			applicationRoute.PATCH(":id", middleware.SizeLimit(1<<20), ctrl.Application.UpdateApplication)
			applicationRoute.GET("", ctrl.Application.GetApplications)
		}

		contactRoute := v1.Group("/contact")
		{
			contactRoute.POST("", middleware.SizeLimit(1<<20), ctrl.Contact.CreateContact)
			contactRoute.GET("", ctrl.Contact.GetContacts)
		}

		dashboardRoute := v1.Group("/dashboard")
		{
			dashboardRoute.GET("metrics", ctrl.Dashboard.GetMetrics)
			dashboardRoute.GET("actions", ctrl.Dashboard.GetActionItems)
			dashboardRoute.GET("funnel", ctrl.Dashboard.GetFunnel)
		}

		emailRoute := v1.Group("/email")
		{
			emailRoute.GET("followup/:id", ctrl.Email.GetFollowUp)
			emailRoute.GET("thankyou/:id", ctrl.Email.GetThankYou)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Hello World"})
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}

package router

import (
	"time"

	"billtracker/api"
	"billtracker/config"
	_ "billtracker/docs"
	"billtracker/middleware"
	"billtracker/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	loginMaxAttempts = 10
	loginWindow      = time.Minute
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())
	r.Use(middleware.RequestID())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		auth.Use(middleware.LoginRateLimit(loginMaxAttempts, loginWindow))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)

			// 收入来源
			incomeSourceHandler := api.NewIncomeSourceHandler()
			sources := authorized.Group("/income-sources")
			{
				sources.POST("", incomeSourceHandler.Create)
				sources.GET("", incomeSourceHandler.List)
				sources.PUT("/:id", incomeSourceHandler.Update)
				sources.DELETE("/:id", incomeSourceHandler.Delete)
				sources.POST("/:id/periods", incomeSourceHandler.RegisterPeriod)
			}
			authorized.GET("/income-periods", incomeSourceHandler.ListPeriods)

			// 账单
			billHandler := api.NewBillHandler(service.NewEmailService(&cfg.Email))
			bills := authorized.Group("/bills")
			{
				bills.POST("", billHandler.Allocate)
				bills.GET("/unpaid", billHandler.ListUnpaid)
				bills.GET("/balance", billHandler.Balance)
				bills.POST("/remind", billHandler.Remind)
				bills.GET("/paid/:month/:year", billHandler.PaidForMonth)
				bills.GET("/unpaid/:month/:year", billHandler.UnpaidForMonth)
				bills.PUT("/:id/pay", billHandler.MarkPaid)
				bills.PATCH("/:id", billHandler.UpdatePaid)
				bills.DELETE("/:id", billHandler.Delete)
			}

			// 投资测算
			investmentHandler := api.NewInvestmentHandler()
			investments := authorized.Group("/investments")
			{
				investments.POST("/projections", investmentHandler.Project)
				investments.GET("", investmentHandler.List)
			}

			// 导出
			exportHandler := api.NewExportHandler()
			authorized.GET("/export/bills", exportHandler.ExportBills)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

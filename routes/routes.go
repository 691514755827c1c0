package routes

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yad-anakin/diva/config"
	"github.com/yad-anakin/diva/controllers"
	"github.com/yad-anakin/diva/utils"
)

// Deps carries everything the router wires into handlers. Stores are
// interfaces so tests can swap in fakes.
type Deps struct {
	Cfg          config.Config
	Log          *zap.Logger
	Sessions     *utils.SessionManager
	Services     controllers.ServiceStore
	Employees    controllers.EmployeeStore
	Appointments controllers.AppointmentStore
	History      controllers.HistoryStore
	DB           controllers.DBPinger
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestLogger(d.Log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// The gate runs before every handler; /login and /api/login are the only
	// non-static paths it lets through unauthenticated.
	r.Use(utils.SessionGate(d.Sessions))

	auth := &controllers.AuthController{Cfg: d.Cfg, Sessions: d.Sessions, Log: d.Log}
	health := &controllers.HealthController{DB: d.DB, Cfg: d.Cfg, Log: d.Log}
	serviceController := &controllers.ServiceController{Store: d.Services, Log: d.Log}
	employeeController := &controllers.EmployeeController{Store: d.Employees, Log: d.Log}
	appointmentController := &controllers.AppointmentController{Store: d.Appointments, Log: d.Log}
	historyController := &controllers.HistoryController{Store: d.History, Log: d.Log}

	api := r.Group("/api")
	api.Use(utils.NoStore())
	{
		api.POST("/login", auth.Login)
		api.POST("/logout", auth.Logout)
		api.GET("/health", health.Health)

		services := api.Group("/services")
		{
			services.GET("", serviceController.List)
			services.POST("", serviceController.Create)
			services.PUT("/:id", serviceController.Update)
			services.DELETE("/:id", serviceController.Delete)
			services.DELETE("", serviceController.DeleteAll)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", employeeController.List)
			employees.POST("", employeeController.Create)
			employees.PUT("/:id", employeeController.Update)
			employees.DELETE("/:id", employeeController.Delete)
			employees.DELETE("", employeeController.DeleteAll)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentController.List)
			appointments.POST("", appointmentController.Create)
			appointments.PUT("/:id", appointmentController.Update)
			appointments.DELETE("/:id", appointmentController.Delete)
			appointments.DELETE("", appointmentController.DeleteAll)
			appointments.POST("/:id/complete", appointmentController.Complete)
		}

		history := api.Group("/history")
		{
			history.GET("", historyController.List)
			history.POST("", historyController.Create)
			history.PATCH("/:id", historyController.Patch)
			history.DELETE("/:id", historyController.Delete)
			history.DELETE("", historyController.DeleteAll)
		}
	}

	if dir := d.Cfg.StaticDir; dir != "" {
		r.Static("/assets", filepath.Join(dir, "assets"))
		r.StaticFile("/", filepath.Join(dir, "index.html"))
		r.StaticFile("/login", filepath.Join(dir, "login.html"))
	}

	return r
}

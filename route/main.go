package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amazing-thailand/photo-service/controller"
	middlewares "github.com/amazing-thailand/photo-service/middleware"
	"github.com/amazing-thailand/photo-service/utils"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	if ctrl.Config.EnvConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.SetProductionMode(ctrl.Config.EnvConfig.IsProduction())

	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)
	r.Use(middles.AuthMiddleware)

	r.GET("/", ctrl.Root)
	r.GET("/healthz", ctrl.Healthz)

	apiRoutes := r.Group("/api")
	{
		userRoutes := apiRoutes.Group("/users")
		{
			userRoutes.POST("/register", ctrl.RegisterUser)
			userRoutes.POST("/login", ctrl.Login)
			userRoutes.GET("/:userId", ctrl.GetUser)
			userRoutes.PUT("/:userId", ctrl.UpdateUser)
		}

		photoRoutes := apiRoutes.Group("/photos")
		{
			photoRoutes.GET("/", ctrl.ListPhotos)
			photoRoutes.GET("/:photoId", ctrl.GetPhotoDetails)
			photoRoutes.POST("/", ctrl.CreatePhoto)
			photoRoutes.PUT("/:photoId", ctrl.EditPhoto)
			photoRoutes.DELETE("/:photoId", ctrl.DeletePhoto)
		}

		commentRoutes := apiRoutes.Group("/comments")
		{
			commentRoutes.POST("/", ctrl.CreateComment)
			commentRoutes.GET("/photos/:photoId", ctrl.GetCommentsForPhoto)
			commentRoutes.PUT("/:commentId", ctrl.EditComment)
			commentRoutes.DELETE("/:commentId", ctrl.DeleteComment)
		}
	}

	return r
}

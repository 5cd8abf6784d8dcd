package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cinelog/media-catalog/internal/handler/http/middleware"
	"github.com/cinelog/media-catalog/internal/usecase"
)

type Router struct {
	mediaHandler    *MediaHandler
	genreHandler    *GenreHandler
	directorHandler *DirectorHandler
	producerHandler *ProducerHandler
	typeHandler     *MediaTypeHandler
	rateLimit       float64
}

func NewRouter(
	mediaUsecase usecase.IMediaUsecase,
	genreUsecase usecase.IGenreUsecase,
	directorUsecase usecase.IDirectorUsecase,
	producerUsecase usecase.IProducerUsecase,
	typeUsecase usecase.IMediaTypeUsecase,
	rateLimit float64,
) *Router {
	return &Router{
		mediaHandler:    NewMediaHandler(mediaUsecase),
		genreHandler:    NewGenreHandler(genreUsecase),
		directorHandler: NewDirectorHandler(directorUsecase),
		producerHandler: NewProducerHandler(producerUsecase),
		typeHandler:     NewMediaTypeHandler(typeUsecase),
		rateLimit:       rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	media := v1.Group("/media")
	{
		media.GET("", r.mediaHandler.GetMediaHandler)
		media.GET("/:id", r.mediaHandler.GetMediaByIDHandler)
		media.POST("", r.mediaHandler.CreateMediaHandler)
		media.PUT("/:id", r.mediaHandler.UpdateMediaHandler)
		media.DELETE("/:id", r.mediaHandler.DeleteMediaHandler)
	}

	genres := v1.Group("/genres")
	{
		genres.GET("", r.genreHandler.GetGenresHandler)
		genres.GET("/:id", r.genreHandler.GetGenreByIDHandler)
		genres.POST("", r.genreHandler.CreateGenreHandler)
		genres.PUT("/:id", r.genreHandler.UpdateGenreHandler)
		genres.DELETE("/:id", r.genreHandler.DeleteGenreHandler)
	}

	directors := v1.Group("/directors")
	{
		directors.GET("", r.directorHandler.GetDirectorsHandler)
		directors.GET("/:id", r.directorHandler.GetDirectorByIDHandler)
		directors.POST("", r.directorHandler.CreateDirectorHandler)
		directors.PUT("/:id", r.directorHandler.UpdateDirectorHandler)
		directors.DELETE("/:id", r.directorHandler.DeleteDirectorHandler)
	}

	producers := v1.Group("/producers")
	{
		producers.GET("", r.producerHandler.GetProducersHandler)
		producers.GET("/:id", r.producerHandler.GetProducerByIDHandler)
		producers.POST("", r.producerHandler.CreateProducerHandler)
		producers.PUT("/:id", r.producerHandler.UpdateProducerHandler)
		producers.DELETE("/:id", r.producerHandler.DeleteProducerHandler)
	}

	types := v1.Group("/types")
	{
		types.GET("", r.typeHandler.GetMediaTypesHandler)
		types.GET("/:id", r.typeHandler.GetMediaTypeByIDHandler)
		types.POST("", r.typeHandler.CreateMediaTypeHandler)
		types.PUT("/:id", r.typeHandler.UpdateMediaTypeHandler)
		types.DELETE("/:id", r.typeHandler.DeleteMediaTypeHandler)
	}
}

package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelops/internal/config"
	"hotelops/internal/database"
	"hotelops/internal/modules/auth"
	"hotelops/internal/modules/catalog"
	"hotelops/internal/modules/document"
	"hotelops/internal/modules/groups"
	jwtsvc "hotelops/internal/pkg/jwt"
	"hotelops/internal/pkg/response"
	"hotelops/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	groupRepo := repository.NewGroupRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	clientRepo := repository.NewClientRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(cfg.OperatorName, cfg.OperatorPasswordHash, j)
	authHandler := auth.NewHandler(authService)

	groupService := groups.NewService(groupRepo, catalogRepo)
	groupHandler := groups.NewHandler(groupService)

	documentService := document.NewService(groupRepo, clientRepo, cfg.Business)
	documentHandler := document.NewHandler(documentService)

	catalogService := catalog.NewService(catalogRepo, venueRepo, clientRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			groupHandler.RegisterRoutes(protected)
			documentHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortFail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortFail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			return
		}

		c.Set("operator", claims.Operator)

		c.Next()
	}
}

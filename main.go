package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/benluxnails/salon-web/cms"
	"github.com/benluxnails/salon-web/config"
	"github.com/benluxnails/salon-web/controllers"
	"github.com/benluxnails/salon-web/cron"
	"github.com/benluxnails/salon-web/middleware"
	"github.com/benluxnails/salon-web/roles"
	"github.com/benluxnails/salon-web/routes"
	"github.com/benluxnails/salon-web/session"
	"github.com/benluxnails/salon-web/views"
)

func main() {
	cfg := config.Load()
	client := cms.New(cfg.BackendURL)

	var sessionStore, roleStore session.Store
	var sweepers []*session.MemoryStore
	if cfg.RedisAddr != "" {
		rs, err := session.NewRedisStore(cfg.RedisAddr, "session")
		if err != nil {
			log.Fatal("Failed to connect to Redis: ", err)
		}
		sessionStore = rs
		roleStore = rs.WithPrefix("role")
		log.Println("Session store backed by Redis")
	} else {
		ms, rs := session.NewMemoryStore(), session.NewMemoryStore()
		sessionStore, roleStore = ms, rs
		sweepers = append(sweepers, ms, rs)
		log.Println("REDIS_ADDR not set, using in-memory session store")
	}

	sessions := session.NewManager(client, sessionStore, cfg.SessionTTL)
	resolver := roles.New(client, roleStore, cfg.RoleCacheTTL)

	app := fiber.New(fiber.Config{
		Views: views.Engine(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(middleware.LoadSession(sessions, cfg.SessionCookie))

	routes.SetupPageRoutes(app, &controllers.PagesController{CMS: client, Resolver: resolver})
	routes.SetupAuthRoutes(app, &controllers.AuthController{
		Sessions: sessions,
		Resolver: resolver,
		Cookie:   cfg.SessionCookie,
		TTL:      cfg.SessionTTL,
	})
	routes.SetupBookingRoutes(app, &controllers.BookingController{CMS: client})
	routes.SetupDashboardRoutes(app, &controllers.DashboardController{CMS: client})
	routes.SetupAdminRoutes(app, &controllers.AdminController{CMS: client}, resolver)

	cron.StartCronJobs(sweepers...)

	log.Fatal(app.Listen(":" + cfg.Port))
}

package routes

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/api/handlers"
	"Digital-Menu-Builder/internal/middleware"
	"Digital-Menu-Builder/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	CatalogHandler handlers.CatalogHandler
	OfferHandler   handlers.OfferHandler
	StyleHandler   handlers.StyleHandler
	MenuHandler    handlers.MenuHandler
	AuthHandler    handlers.AuthHandler
	PublishHandler handlers.PublishHandler
	UploadHandler  handlers.UploadHandler
	ShareHandler   handlers.ShareHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Menu()
	c.Basket()
	c.Auth()
	c.Admin()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/api/v1/published/latest", c.PublishHandler.GetLatest)
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu")
	// diner routes
	{
		menu.Get("", c.MenuHandler.GetDinerMenu)
		menu.Get("/categories", c.CatalogHandler.GetCategories)
		menu.Get("/items", c.CatalogHandler.GetMenuItems)
		menu.Get("/offers", c.OfferHandler.GetOffers)
		menu.Get("/styles", c.StyleHandler.GetStyles)
	}
}

func (c *Config) Basket() {
	basket := c.App.Group("/api/v1/basket")
	basket.Get("", c.CatalogHandler.GetBasket)
	basket.Post("/toggle", c.CatalogHandler.ToggleBasketItem)
	basket.Delete("", c.CatalogHandler.ClearBasket)
}

func (c *Config) Auth() {
	c.App.Post("/api/v1/auth/login", c.AuthHandler.Login)
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyAllow(domain.RoleAdmin),
	)

	// catalog
	admin.Post("/categories", c.CatalogHandler.AddCategory)
	admin.Post("/items", c.CatalogHandler.AddMenuItem)
	admin.Get("/categories/:id/next-order-number", c.CatalogHandler.NextOrderNumber)

	// offers
	admin.Get("/offers/status", c.OfferHandler.GetOfferStatuses)
	admin.Post("/offers", c.OfferHandler.AddOffer)
	admin.Patch("/offers/:id", c.OfferHandler.UpdateOffer)
	admin.Delete("/offers/:id", c.OfferHandler.DeleteOffer)
	admin.Post("/offers/:id/categories", c.OfferHandler.AddCategoryToOffer)
	admin.Post("/offers/:id/items", c.OfferHandler.AddMenuItemToOffer)
	admin.Get("/offers/:id/categories/:categoryId/next-order-number", c.OfferHandler.NextOfferOrderNumber)

	// styles
	admin.Get("/styles/presets", c.StyleHandler.GetPresets)
	admin.Patch("/styles/menu", c.StyleHandler.UpdateMenuStyle)
	admin.Delete("/styles/menu", c.StyleHandler.RestoreMenuStyle)
	admin.Patch("/styles/qr-card", c.StyleHandler.UpdateQRCardStyle)
	admin.Delete("/styles/qr-card", c.StyleHandler.RestoreQRCardStyle)
	admin.Put("/styles/qr-card/size", c.StyleHandler.SelectCardSize)
	admin.Put("/styles/qr-card/aspect-ratio", c.StyleHandler.SelectAspectRatio)
	admin.Put("/styles/qr-card/width", c.StyleHandler.SetWidth)

	// whole menu
	admin.Post("/menu/sample", c.MenuHandler.LoadSampleData)
	admin.Delete("/menu/catalog", c.MenuHandler.ClearCatalog)
	admin.Delete("/menu", c.MenuHandler.ClearEverything)

	// publishing and integrations
	admin.Post("/publish", c.PublishHandler.Publish)
	admin.Get("/published", c.PublishHandler.GetPublished)
	admin.Post("/uploads/image", c.UploadHandler.UploadImage)
	admin.Post("/share", c.ShareHandler.ShareMenu)
}

// Package httpapi wires the route table: public auth and metadata endpoints,
// then a token-guarded group for everything that touches a brand workspace.
package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// NewRouter assembles the full route table. lookup may be nil when no GeoIP
// database is configured.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(app.Logger))
	r.Use(middleware.CORS(app.Config.AllowedOrigins))
	r.Use(middleware.I18N(lookup))
	r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/signup", app.Signup)
		r.Post("/login", app.Login)
	})

	r.Route("/v1/meta", func(r chi.Router) {
		r.Get("/languages", app.Languages)
		r.Get("/palette-styles", app.PaletteStyles)
		r.Get("/fonts", app.FontCatalog)
		r.Get("/logo-types", app.LogoTypes)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.Config.JWTSecret))

		r.Route("/v1/brand", func(r chi.Router) {
			r.Get("/", app.GetBrand)
			r.Delete("/", app.ResetBrand)
			r.Post("/names", app.GenerateNames)
			r.Post("/names/select", app.SelectName)
			r.Post("/taglines", app.GenerateTaglines)
			r.Post("/story", app.GenerateStory)
			r.Put("/story", app.UpdateStory)
			r.Post("/marketing", app.GenerateMarketing)
			r.Post("/palette", app.GeneratePalette)
			r.Put("/palette/color", app.SetColor)
			r.Post("/fonts/suggest", app.SuggestFonts)
			r.Put("/fonts", app.SetFonts)
			r.Get("/sentiment", app.AnalyzeStory)
			r.Post("/logo", app.GenerateLogo)
			r.Get("/logo", app.GetLogo)
			r.Get("/logo/preview", app.GetLogoPreview)
			r.Post("/logo/regenerate", app.RegenerateLogo)
			r.Post("/logo/customize", app.CustomizeLogo)
		})

		r.Route("/v1/copy", func(r chi.Router) {
			r.Post("/analyze", app.AnalyzeText)
			r.Post("/rewrite", app.RewriteForTone)
			r.Post("/summarize", app.Summarize)
		})

		r.Route("/v1/consultant", func(r chi.Router) {
			r.Post("/", app.Consult)
			r.Get("/", app.ConsultHistory)
		})

		r.Route("/v1/export", func(r chi.Router) {
			r.Get("/json", app.ExportJSON)
			r.Get("/txt", app.ExportText)
			r.Get("/pdf", app.ExportPDF)
			r.Get("/bundle", app.ExportBundle)
		})

		r.Route("/v1/projects", func(r chi.Router) {
			r.Post("/", app.SaveProject)
			r.Get("/", app.ListProjects)
			r.Get("/{id}", app.GetProject)
			r.Delete("/{id}", app.DeleteProject)
		})
	})

	return r
}

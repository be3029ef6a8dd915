package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"dealer-contracts/internal/domain/staff"
	"dealer-contracts/internal/handler/api"
	"dealer-contracts/internal/handler/middleware"
	"dealer-contracts/internal/infra/storage"
	"dealer-contracts/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Health         *api.HealthHandler
	Contracts      *api.ContractHandler
	Signatures     *api.SignatureHandler
	Signing        *api.SigningHandler
	EmailTemplates *api.EmailTemplateHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine, auth := p.Engine, p.AuthMiddleware

	engine.GET("/health", p.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// public: the token in the path is the credential
	sign := engine.Group("/contract/sign")
	addRoutes(sign, []route{
		{Method: http.MethodGet, Path: "/:token", Handler: p.Signing.Show},
		{Method: http.MethodPost, Path: "/:token", Handler: p.Signing.Sign},
	})

	viewer := auth.RequireRoleAtLeast(staff.RoleViewer)
	sales := auth.RequireRoleAtLeast(staff.RoleSales)
	admin := auth.RequireRoleAtLeast(staff.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(auth.RequireAuth())
	{
		contracts := apiGroup.Group("/contracts")
		addRoutes(contracts, []route{
			{Method: http.MethodPost, Path: "/pricing", Handler: p.Contracts.Pricing, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodPost, Path: "/preview", Handler: p.Contracts.Preview, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodGet, Path: "/:id/download", Handler: p.Contracts.Download, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Contracts.Delete, Mw: []gin.HandlerFunc{sales}},
		})

		vehicles := apiGroup.Group("/vehicles/:vehicleId")
		addRoutes(vehicles, []route{
			{Method: http.MethodGet, Path: "/contracts", Handler: p.Contracts.List, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodGet, Path: "/contracts/latest", Handler: p.Contracts.Latest, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodPost, Path: "/contracts", Handler: p.Contracts.Save, Mw: []gin.HandlerFunc{sales}},
			{Method: http.MethodGet, Path: "/signature-sessions", Handler: p.Signatures.List, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodPost, Path: "/signature-sessions", Handler: p.Signatures.Create, Mw: []gin.HandlerFunc{sales}},
		})

		sessions := apiGroup.Group("/signature-sessions")
		addRoutes(sessions, []route{
			{Method: http.MethodPost, Path: "/:id/revoke", Handler: p.Signatures.Revoke, Mw: []gin.HandlerFunc{sales}},
		})

		templates := apiGroup.Group("/email-templates")
		addRoutes(templates, []route{
			{Method: http.MethodGet, Path: "", Handler: p.EmailTemplates.List, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodGet, Path: "/:key", Handler: p.EmailTemplates.Get, Mw: []gin.HandlerFunc{viewer}},
			{Method: http.MethodPut, Path: "/:key", Handler: p.EmailTemplates.Upsert, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:key", Handler: p.EmailTemplates.Delete, Mw: []gin.HandlerFunc{admin}},
		})
	}

	// local blobs are served to staff only; GCS hands out signed URLs instead
	if p.Config.Storage.Driver == storage.DriverLocal {
		files := engine.Group("/files")
		files.Use(auth.RequireAuth(), viewer)
		files.Static("/", p.Config.Storage.LocalDir)
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

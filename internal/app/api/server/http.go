package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pslmedia/backoffice/docs"
	"github.com/pslmedia/backoffice/internal/app/api/handlers"
	"github.com/pslmedia/backoffice/internal/app/service/auth"
	"github.com/pslmedia/backoffice/internal/app/service/billing"
	"github.com/pslmedia/backoffice/internal/app/service/catalog"
	"github.com/pslmedia/backoffice/internal/app/service/employee"
	"github.com/pslmedia/backoffice/internal/app/service/message"
	"github.com/pslmedia/backoffice/internal/app/service/subscriber"
	"github.com/pslmedia/backoffice/internal/platform/mail"
	cfgpkg "github.com/pslmedia/backoffice/pkg/config"
	"github.com/pslmedia/backoffice/pkg/token"

	mw "github.com/pslmedia/backoffice/internal/app/api/middleware"

	metrics "github.com/pslmedia/backoffice/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	r.LoadHTMLGlob("web/templates/*.html")
	return r
}

type routeDeps struct {
	fx.In

	Log        *zap.SugaredLogger
	Cfg        *cfgpkg.Config
	Issuer     *token.Issuer
	Mailer     mail.Mailer
	Auth       *auth.Service
	Subscriber *subscriber.Service
	Employee   *employee.Service
	Catalog    *catalog.Service
	Billing    *billing.Service
	Message    *message.Service
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Prometheus metrics
	if d.Cfg != nil && d.Cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: d.Log,
		})
		p.SetListenAddress(d.Cfg.MetricsAddr)
		p.Use(r)

		d.Log.Infow("metrics started", "addr", d.Cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	handlers.RegisterWebsiteRoutes(pub, d.Catalog, d.Message)

	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMW := mw.AuthMiddleware(d.Issuer)

	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())

	handlers.RegisterAuthRoutes(apiV1.Group("/auth"), d.Auth, authMW)

	admin := apiV1.Group("/admin")
	admin.Use(authMW)
	handlers.RegisterSubscriberRoutes(admin, d.Subscriber, d.Mailer)
	handlers.RegisterEmployeeRoutes(admin, d.Employee)
	handlers.RegisterCatalogRoutes(admin, d.Catalog)
	handlers.RegisterPaymentRoutes(admin, d.Billing)
	handlers.RegisterDashboardRoutes(admin, d.Billing)
	handlers.RegisterMessageRoutes(admin, d.Message)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)

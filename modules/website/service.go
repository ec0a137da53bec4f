package website

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/telsite/handler"
	"github.com/dmitrymomot/telsite/pkg/binder"
	"github.com/dmitrymomot/telsite/pkg/clientip"
	"github.com/dmitrymomot/telsite/pkg/content"
	"github.com/dmitrymomot/telsite/pkg/cookie"
	"github.com/dmitrymomot/telsite/pkg/environment"
	"github.com/dmitrymomot/telsite/pkg/httpserver"
	"github.com/dmitrymomot/telsite/pkg/i18n"
	"github.com/dmitrymomot/telsite/pkg/logger"
	"github.com/dmitrymomot/telsite/pkg/requestid"
	"github.com/dmitrymomot/telsite/pkg/skin"
)

// Service serves the pages of the site.
type Service struct {
	cfg          Config
	log          *slog.Logger
	env          environment.Environment
	source       content.Source
	resolver     *content.Resolver
	translator   *i18n.Translator
	negotiator   *i18n.Negotiator
	skins        *skin.Registry
	cookies      *cookie.Manager
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService validates cfg and loads the bundled translations.
// Pages are read from source.
func NewService(ctx context.Context, cfg Config, source content.Source, log *slog.Logger) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("website: no content source")
	}
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("website config: %w", err)
	}

	skins, err := skin.NewRegistry(cfg.DefaultSkin, skin.Classic, skin.Modern)
	if err != nil {
		return nil, err
	}

	env := environment.Parse(cfg.AppEnv)
	translator, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), Translations(), ".").WithAdapterLogger(log),
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithFallbackToKey(true),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(env != environment.Production),
	)
	if err != nil {
		return nil, fmt.Errorf("website translations: %w", err)
	}

	s := &Service{
		cfg:        cfg,
		log:        log.With(logger.Component("website")),
		env:        env,
		source:     source,
		resolver:   content.NewResolver(source, content.DefaultTable()),
		translator: translator,
		negotiator: i18n.NewNegotiator(cfg.Languages, cfg.DefaultLanguage, cfg.StrictLanguage),
		skins:      skins,
		cookies:    cookie.NewFromConfig(cfg.Cookie),
	}
	s.errorHandler = handler.NewErrorHandler(s.log, s.errorView)
	return s, nil
}

// Handle returns the router of the site.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Use(
		requestid.Middleware,
		clientip.Middleware(s.cfg.TrustedProxyHeaders...),
		s.requestLogger,
		middleware.Recoverer,
		middleware.StripSlashes,
		environment.Middleware(s.env),
		i18n.Middleware(i18n.DefaultLangExtractor(
			i18n.WithSupportedLanguages(s.cfg.Languages...),
			i18n.WithFallbackLanguage(s.cfg.DefaultLanguage),
			i18n.WithStrictMatching(s.cfg.StrictLanguage),
			i18n.WithCookieName(s.cfg.LangCookie),
		)),
		skin.Middleware(s.skins.Extractor(skin.WithCookieName(s.cfg.SkinCookie))),
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(s.log, s.cfg.ReadinessTimeout,
		httpserver.Check{Name: "content", Fn: s.source.Ping},
	))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(Static())))

	pageHandler := handler.Wrap(s.page,
		handler.WithBinders[handler.Context, PageRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	)
	r.Get("/", pageHandler)
	// index.php links of the old site keep working
	r.Get("/index.php", pageHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	return r
}

package website

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/telsite/handler"
	"github.com/dmitrymomot/telsite/pkg/i18n"
	"github.com/dmitrymomot/telsite/pkg/logger"
	"github.com/dmitrymomot/telsite/pkg/skin"
)

// PageRequest is the query of a page request.
type PageRequest struct {
	To   string `query:"to"`
	Lang string `query:"lang"`
	Skin string `query:"skin"`
}

func (s *Service) page(ctx handler.Context, req PageRequest) handler.Response {
	lang := i18n.GetLocale(ctx)
	sk := skin.FromContext(ctx)

	// An explicit valid choice is remembered for the next visits
	if l, ok := s.negotiator.Supports(req.Lang); ok {
		s.remember(ctx, s.cfg.LangCookie, l)
	}
	if chosen, ok := s.skins.Lookup(req.Skin); ok {
		s.remember(ctx, s.cfg.SkinCookie, chosen.Name)
	}

	page, err := s.resolver.Resolve(ctx, lang, req.To)
	if err != nil {
		return handler.Error(fmt.Errorf("resolve page %q in %s: %w", req.To, lang, err))
	}

	status := http.StatusOK
	if !page.Found {
		status = http.StatusNotFound
		s.log.LogAttrs(ctx, slog.LevelDebug, "page not found",
			logger.Page(page.Key),
			logger.Language(lang),
			logger.Skin(sk.Name),
		)
	}
	return handler.TemplWithStatus(s.pageView(lang, sk, page), status)
}

func (s *Service) remember(ctx handler.Context, name, value string) {
	if err := s.cookies.Set(ctx.ResponseWriter(), name, value); err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "failed to set preference cookie",
			slog.String("cookie", name),
			logger.Error(err),
		)
	}
}

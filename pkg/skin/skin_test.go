package skin_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/telsite/pkg/skin"
)

func newRegistry(t *testing.T) *skin.Registry {
	t.Helper()
	r, err := skin.NewRegistry("classic", skin.Classic, skin.Modern)
	require.NoError(t, err)
	return r
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		def     string
		skins   []skin.Skin
		wantErr error
	}{
		{name: "no skins", def: "classic", wantErr: skin.ErrNoSkins},
		{name: "unknown default", def: "retro", skins: []skin.Skin{skin.Classic}, wantErr: skin.ErrUnknownDefault},
		{name: "duplicate", def: "classic", skins: []skin.Skin{skin.Classic, {Name: "CLASSIC", Stylesheet: "/x.css"}}, wantErr: skin.ErrDuplicateSkin},
		{name: "missing stylesheet", def: "plain", skins: []skin.Skin{{Name: "plain"}}, wantErr: skin.ErrInvalidSkin},
		{name: "default ignores case", def: "Modern", skins: []skin.Skin{skin.Classic, skin.Modern}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := skin.NewRegistry(tt.def, tt.skins...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, skin.Modern, r.Default())
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	s, ok := r.Lookup(" MoDeRn ")
	assert.True(t, ok)
	assert.Equal(t, skin.Modern, s)

	_, ok = r.Lookup("retro")
	assert.False(t, ok)
	_, ok = r.Lookup("")
	assert.False(t, ok)

	all := r.All()
	assert.Equal(t, []skin.Skin{skin.Classic, skin.Modern}, all)
	all[0] = skin.Skin{}
	assert.Equal(t, skin.Classic, r.All()[0], "All returns a copy")

	custom, err := skin.NewRegistry("plain", skin.Skin{Name: "Plain", Stylesheet: "/static/plain.css"})
	require.NoError(t, err)
	assert.Equal(t, "plain", custom.Default().Name)
	assert.Equal(t, "plain", custom.Default().Title)
}

func TestRegistry_Extractor(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	extract := r.Extractor()

	tests := []struct {
		name   string
		target string
		cookie string
		want   skin.Skin
	}{
		{name: "default", target: "/", want: skin.Classic},
		{name: "query", target: "/?skin=modern", want: skin.Modern},
		{name: "cookie", target: "/", cookie: "modern", want: skin.Modern},
		{name: "query wins over cookie", target: "/?skin=classic", cookie: "modern", want: skin.Classic},
		{name: "unknown query falls back to cookie", target: "/?skin=retro", cookie: "modern", want: skin.Modern},
		{name: "unknown cookie", target: "/", cookie: "retro", want: skin.Classic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "skin", Value: tt.cookie})
			}
			assert.Equal(t, tt.want, extract(req))
		})
	}

	t.Run("custom names", func(t *testing.T) {
		t.Parallel()
		extract := r.Extractor(skin.WithQueryParamName("theme"), skin.WithCookieName("theme"))
		req := httptest.NewRequest(http.MethodGet, "/?skin=modern", nil)
		assert.Equal(t, skin.Classic, extract(req))

		req = httptest.NewRequest(http.MethodGet, "/?theme=modern", nil)
		assert.Equal(t, skin.Modern, extract(req))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	var got skin.Skin
	h := skin.Middleware(r.Extractor())(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		got = skin.FromContext(req.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?skin=modern", nil))
	assert.Equal(t, skin.Modern, got)

	assert.Equal(t, skin.Classic, skin.FromContext(t.Context()))
}

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Run("query param wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=pt-BR", nil)
		req.Header.Set("Accept-Language", "en")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag != language.BrazilianPortuguese {
			t.Fatalf("expected pt-BR, got %s", tag.String())
		}
		if !persist {
			t.Fatalf("expected persist to be true")
		}
	})

	t.Run("cookie wins over accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag != language.AmericanEnglish {
			t.Fatalf("expected en-US, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})

	t.Run("accept-language fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR, en;q=0.9")

		tag, persist := ResolveTag(req)
		if tag != language.BrazilianPortuguese {
			t.Fatalf("expected pt-BR, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})

	t.Run("default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		if tag, _ := ResolveTag(req); tag != Default() {
			t.Fatalf("expected default, got %s", tag.String())
		}
	})
}

func TestResolveTagInvalidQueryFallsBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=!!", nil)
	req.Header.Set("Accept-Language", "pt-BR")

	tag, persist := ResolveTag(req)
	if tag != language.BrazilianPortuguese {
		t.Fatalf("expected pt-BR, got %s", tag.String())
	}
	if persist {
		t.Fatal("invalid query values must not be persisted")
	}
}

func TestPrinterUsesRegisteredMessages(t *testing.T) {
	if got := Printer(language.BrazilianPortuguese).Sprintf("smf.column.weight"); got != "Peso" {
		t.Fatalf("pt-BR weight = %q", got)
	}
	if got := Printer(language.AmericanEnglish).Sprintf("smf.column.weight"); got != "Weight" {
		t.Fatalf("en-US weight = %q", got)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.BrazilianPortuguese)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %+v", cookies)
	}
}

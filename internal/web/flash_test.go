package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	SetFlash(rec, FlashSuccess, "Book added")

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("SetFlash did not set a cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()

	flash := PopFlash(rec, req)
	if flash == nil {
		t.Fatalf("PopFlash returned nil")
	}
	if flash.Level != FlashSuccess || flash.Message != "Book added" {
		t.Fatalf("unexpected flash: %+v", flash)
	}

	// Reading the flash clears the cookie.
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("PopFlash must clear the cookie")
	}
}

func TestPopFlashWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if flash := PopFlash(httptest.NewRecorder(), req); flash != nil {
		t.Fatalf("want nil, got %+v", flash)
	}
}

func TestPopFlashGarbageCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "not-base64!"})
	if flash := PopFlash(httptest.NewRecorder(), req); flash != nil {
		t.Fatalf("want nil for a malformed cookie, got %+v", flash)
	}
}

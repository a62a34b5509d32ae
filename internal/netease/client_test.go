package netease_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracksort/internal/netease"
)

func TestPlaylistTitlesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "12345" {
			t.Fatalf("expected id query parameter, got %q", r.URL.RawQuery)
		}
		if got := r.URL.Query().Get("n"); got != "100000" {
			t.Fatalf("expected n=100000, got %q", got)
		}
		if got := r.Header.Get("Cookie"); got != "appver=2.0.2" {
			t.Fatalf("expected default cookie, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"result":{"tracks":[
			{"name":"Song One","artists":[{"name":"Artist A"},{"name":"Artist B"}]},
			{"name":"Instrumental","artists":[]}
		]}}`))
	}))
	t.Cleanup(server.Close)

	client := netease.New(server.URL)
	titles, err := client.PlaylistTitles(context.Background(), "12345")
	if err != nil {
		t.Fatalf("PlaylistTitles returned error: %v", err)
	}
	want := []string{"Artist A / Artist B - Song One", "Instrumental"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestPlaylistTracksLoginRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":20001}`))
	}))
	t.Cleanup(server.Close)

	client := netease.New(server.URL)
	_, err := client.PlaylistTracks(context.Background(), "12345")
	if !errors.Is(err, netease.ErrLoginRequired) {
		t.Fatalf("err = %v, want ErrLoginRequired", err)
	}
}

func TestPlaylistTracksHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	client := netease.New(server.URL)
	if _, err := client.PlaylistTracks(context.Background(), "12345"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestPlaylistTracksEmptyID(t *testing.T) {
	client := netease.New("https://example.com")
	if _, err := client.PlaylistTracks(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty playlist id")
	}
}

func TestCustomCookie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Cookie"); got != "MUSIC_U=abc" {
			t.Fatalf("cookie = %q, want custom value", got)
		}
		_, _ = w.Write([]byte(`{"code":200,"result":{"tracks":[]}}`))
	}))
	t.Cleanup(server.Close)

	client := netease.New(server.URL, netease.WithCookie("MUSIC_U=abc"))
	if _, err := client.PlaylistTracks(context.Background(), "1"); err != nil {
		t.Fatalf("PlaylistTracks returned error: %v", err)
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"api url", "https://music.163.com/api/playlist/detail?id=987654321", "987654321", false},
		{"bare id", "987654321", "987654321", false},
		{"empty", "   ", "", true},
		{"trailing equals", "https://music.163.com/api/playlist/detail?id=", "", true},
		{"non numeric", "https://music.163.com/#/playlist?id=abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := netease.ExtractPlaylistID(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractPlaylistID(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractPlaylistID(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExtractPlaylistID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

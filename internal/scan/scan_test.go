package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadRecord(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		wantClean  string
		wantArtist string
	}{
		{
			name:       "index then artist and title",
			filename:   "01 - Artist - Song B.flac",
			wantClean:  "song b",
			wantArtist: "Artist",
		},
		{
			name:       "underscore index prefix",
			filename:   "123_Lonely Night.mp3",
			wantClean:  "lonely night",
			wantArtist: "",
		},
		{
			name:      "not-found marker is stripped",
			filename:  "（未找到）Some Tune.mp3",
			wantClean: "some tune",
		},
		{
			name:      "english not-matched marker",
			filename:  "[Not Matched]Other Tune.flac",
			wantClean: "other tune",
		},
		{
			name:      "bare title",
			filename:  "moon river.mp3",
			wantClean: "moon river",
		},
		{
			name:       "en dash separator",
			filename:   "歌手 – 曲名.flac",
			wantClean:  "曲名",
			wantArtist: "歌手",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ReadRecord(filepath.Join("music", tt.filename))
			if rec.CleanTitle != tt.wantClean {
				t.Errorf("CleanTitle = %q, want %q", rec.CleanTitle, tt.wantClean)
			}
			if tt.wantArtist != "" && rec.Artist != tt.wantArtist {
				t.Errorf("Artist = %q, want %q", rec.Artist, tt.wantArtist)
			}
			if rec.OriginalFilename != tt.filename {
				t.Errorf("OriginalFilename = %q", rec.OriginalFilename)
			}
		})
	}
}

func TestDirFiltersAndOrders(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.flac", "notes.txt", "c.M4A"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0o755); err != nil {
		t.Fatal(err)
	}

	records, err := Dir(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, rec := range records {
		got = append(got, rec.OriginalFilename)
	}
	want := []string{"a.flac", "b.mp3", "c.M4A"}
	if len(got) != len(want) {
		t.Fatalf("records = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("records[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDirMissing(t *testing.T) {
	if _, err := Dir(filepath.Join(t.TempDir(), "absent"), nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestHasAudioExtension(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"song.flac", true},
		{"song.FLAC", true},
		{"song.fla", true},
		{"song.txt", false},
		{"song", false},
	}
	for _, tt := range tests {
		if got := HasAudioExtension(tt.name, DefaultExtensions); got != tt.want {
			t.Errorf("HasAudioExtension(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

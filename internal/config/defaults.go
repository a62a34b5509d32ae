package config

const (
	defaultMusicDir              = "."
	defaultPlaylistFile          = "playlist.txt"
	defaultLogDir                = "~/.local/share/tracksort/logs"
	defaultMatchThreshold        = 0.68
	defaultUnmatchedMarker       = "（未匹配）"
	defaultNetEaseBaseURL        = "https://music.163.com/api"
	defaultNetEaseRequestTimeout = 10
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

func defaultExtensions() []string {
	return []string{".flac", ".mp3", ".m4a", ".wav", ".ogg", ".fla"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MusicDir:     defaultMusicDir,
			PlaylistFile: defaultPlaylistFile,
			LogDir:       defaultLogDir,
		},
		Matching: Matching{
			Threshold:  defaultMatchThreshold,
			Extensions: defaultExtensions(),
		},
		Rename: Rename{
			UnmatchedMarker: defaultUnmatchedMarker,
		},
		NetEase: NetEase{
			BaseURL:        defaultNetEaseBaseURL,
			RequestTimeout: defaultNetEaseRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

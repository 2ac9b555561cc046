package config

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
	PathPrefix       string
}

var UploadContexts = map[string]UploadConfig{
	"device_photo": {
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/webp"},
		MaxSizeMB:        10,
		PathPrefix:       "devices",
	},
}

package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var configEnvVars = []string{
	"PRACTICUM_TOKEN",
	"TELEGRAM_TOKEN",
	"TELEGRAM_CHAT_ID",
	"HOMEWORK_ENDPOINT",
	"POLL_INTERVAL",
	"REQUEST_TIMEOUT",
	"LOG_LEVEL",
	"LOG_FILE",
	"ENVIRONMENT",
}

func TestLoad(t *testing.T) {
	required := map[string]string{
		"PRACTICUM_TOKEN":  "api-token",
		"TELEGRAM_TOKEN":   "bot-token",
		"TELEGRAM_CHAT_ID": "123456",
	}

	tests := []struct {
		name    string
		env     map[string]string
		want    *AppConfig
		wantErr bool
	}{
		{
			name:    "missing practicum token",
			env:     map[string]string{"TELEGRAM_TOKEN": "t", "TELEGRAM_CHAT_ID": "1"},
			wantErr: true,
		},
		{
			name:    "missing telegram token",
			env:     map[string]string{"PRACTICUM_TOKEN": "p", "TELEGRAM_CHAT_ID": "1"},
			wantErr: true,
		},
		{
			name:    "missing chat id",
			env:     map[string]string{"PRACTICUM_TOKEN": "p", "TELEGRAM_TOKEN": "t"},
			wantErr: true,
		},
		{
			name: "credentials only, defaults applied",
			env:  required,
			want: &AppConfig{
				PracticumToken: "api-token",
				TelegramToken:  "bot-token",
				TelegramChatID: 123456,
				Endpoint:       defaultEndpoint,
				PollInterval:   10 * time.Minute,
				RequestTimeout: 30 * time.Second,
				LogLevel:       "info",
				LogFile:        "main.log",
				Environment:    "development",
			},
		},
		{
			name: "all values set",
			env: map[string]string{
				"PRACTICUM_TOKEN":   "p",
				"TELEGRAM_TOKEN":    "t",
				"TELEGRAM_CHAT_ID":  "-100200",
				"HOMEWORK_ENDPOINT": "https://example.com/api/",
				"POLL_INTERVAL":     "90s",
				"REQUEST_TIMEOUT":   "5s",
				"LOG_LEVEL":         "DEBUG",
				"LOG_FILE":          "/tmp/bot.log",
				"ENVIRONMENT":       "Production",
			},
			want: &AppConfig{
				PracticumToken: "p",
				TelegramToken:  "t",
				TelegramChatID: -100200,
				Endpoint:       "https://example.com/api/",
				PollInterval:   90 * time.Second,
				RequestTimeout: 5 * time.Second,
				LogLevel:       "debug",
				LogFile:        "/tmp/bot.log",
				Environment:    "production",
			},
		},
		{
			name:    "invalid chat id",
			env:     mergeEnv(required, map[string]string{"TELEGRAM_CHAT_ID": "not-a-number"}),
			wantErr: true,
		},
		{
			name:    "invalid poll interval",
			env:     mergeEnv(required, map[string]string{"POLL_INTERVAL": "often"}),
			wantErr: true,
		},
		{
			name:    "negative poll interval",
			env:     mergeEnv(required, map[string]string{"POLL_INTERVAL": "-5m"}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear relevant env vars
			for _, key := range configEnvVars {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func mergeEnv(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

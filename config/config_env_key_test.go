package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"secretKey":  "",
			"bcryptCost": 12,
		},
		"assets": map[string]any{
			"publicBaseUrl": "",
			"projectUserId": "",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AUTH_SECRETKEY", want: "auth.secretKey"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "ASSETS_PUBLICBASEURL", want: "assets.publicBaseUrl"},
		{envKey: "ASSETS_PROJECTUSERID", want: "assets.projectUserId"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

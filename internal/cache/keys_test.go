package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "session",
			objectType:  "quiz",
			identifier:  "user-1",
			paramsKey:   nil,
			expectedKey: "notequiz:session:quiz:user-1",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "session",
			objectType:  "quiz",
			identifier:  "user-1",
			paramsKey:   []string{},
			expectedKey: "notequiz:session:quiz:user-1",
		},
		{
			name:        "with one paramsKey",
			serviceName: "anonymous",
			objectType:  "result",
			identifier:  "abc",
			paramsKey:   []string{"latest"},
			expectedKey: "notequiz:anonymous:result:abc:latest",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "generation",
			objectType:  "quiz",
			identifier:  "xyz",
			paramsKey:   []string{"medium", "10"},
			expectedKey: "notequiz:generation:quiz:xyz:medium_10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

package domain

import "testing"

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		origin string
		want   string
	}{
		{
			name:   "absolute https unchanged",
			path:   "https://x/y.pdf",
			origin: "https://host",
			want:   "https://x/y.pdf",
		},
		{
			name:   "absolute http unchanged",
			path:   "http://x/y.pdf",
			origin: "https://host",
			want:   "http://x/y.pdf",
		},
		{
			name:   "relative path prefixed with origin",
			path:   "/y.pdf",
			origin: "https://host",
			want:   "https://host/y.pdf",
		},
		{
			name:   "empty path stays empty",
			path:   "",
			origin: "https://host",
			want:   "",
		},
		{
			name:   "no slash normalization",
			path:   "//BO/y.pdf",
			origin: "https://host/",
			want:   "https://host///BO/y.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsoluteURL(tt.path, tt.origin); got != tt.want {
				t.Errorf("AbsoluteURL(%q, %q) = %q, want %q", tt.path, tt.origin, got, tt.want)
			}
		})
	}
}

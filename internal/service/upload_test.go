package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
)

func TestValidateUploadHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		mimeType string
		size     int64
		wantExt  string
		wantErr  bool
	}{
		{"valid png", "portrait.png", "image/png", 1 << 20, "png", false},
		{"valid jpeg with jpg ext", "tav.jpg", "image/jpeg", 512, "jpg", false},
		{"uppercase extension normalized", "KARLACH.PNG", "image/png", 1024, "png", false},
		{"exactly at size cap", "edge.webp", "image/webp", 2 << 20, "webp", false},
		{"too large", "huge.png", "image/png", 3 << 20, "", true},
		{"disallowed mime", "doc.png", "application/pdf", 1024, "", true},
		{"disallowed extension", "shady.svg", "image/png", 1024, "", true},
		{"no extension", "noext", "image/png", 1024, "", true},
		{"empty filename", "", "image/png", 1024, "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ext, err := service.ValidateUploadHeader(tt.filename, tt.mimeType, tt.size)
			if tt.wantErr {
				require.Error(t, err)

				e, ok := err.(*pgerr.PlannerError)
				require.True(t, ok)
				assert.Equal(t, pgerr.CodeInvalidRequest, e.ErrorCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

package oci

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"oras.land/oras-go/v2/registry/remote/errcode"

	apperrors "github.com/funcx-faas/fx-deploy/pkg/errors"
)

func TestPushErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.ErrorCode
	}{
		{
			name: "unauthorized response",
			err:  &errcode.ErrorResponse{StatusCode: http.StatusUnauthorized},
			want: apperrors.ErrCodeUnauthorized,
		},
		{
			name: "forbidden response",
			err:  &errcode.ErrorResponse{StatusCode: http.StatusForbidden},
			want: apperrors.ErrCodeUnauthorized,
		},
		{
			name: "wrapped unauthorized response",
			err:  fmt.Errorf("copy failed: %w", &errcode.ErrorResponse{StatusCode: http.StatusUnauthorized}),
			want: apperrors.ErrCodeUnauthorized,
		},
		{
			name: "server error response",
			err:  &errcode.ErrorResponse{StatusCode: http.StatusInternalServerError},
			want: apperrors.ErrCodeInternal,
		},
		{
			name: "plain error",
			err:  stderrors.New("connection refused"),
			want: apperrors.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pushErrorCode(tt.err); got != tt.want {
				t.Errorf("pushErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

package usecase_test

import (
	"testing"

	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// usecaseのエラーはHTTPErrorで返る約束。ステータスまで見る。
func assertHTTPError(t *testing.T, err error, wantStatus int) {
	t.Helper()

	assert.Error(t, err)

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "error should be *usecase.HTTPError, got %v", err) {
		assert.Equal(t, wantStatus, he.Status)
	}
}

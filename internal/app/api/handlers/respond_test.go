package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pslmedia/backoffice/internal/app/service/auth"
	"github.com/pslmedia/backoffice/internal/app/service/subscriber"
	"github.com/pslmedia/backoffice/pkg/response"
)

func failCode(t *testing.T, err error) response.APIResponseCode {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	fail(c, err)

	var body struct {
		Code response.APIResponseCode `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestFail_MapsNotFound(t *testing.T) {
	require.Equal(t, response.APIResponseCodeNotFound, failCode(t, subscriber.ErrNotFound))
}

func TestFail_MapsConflict(t *testing.T) {
	require.Equal(t, response.APIResponseCodeConflict, failCode(t, subscriber.ErrActivePackage))
}

func TestFail_MapsBadRequest(t *testing.T) {
	require.Equal(t, response.APIResponseCodeBadRequest, failCode(t, auth.ErrTokenExpired))
}

func TestFail_MapsWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("assign: %w", subscriber.ErrActivePackage)
	require.Equal(t, response.APIResponseCodeConflict, failCode(t, wrapped))
}

func TestFail_UnknownErrorIsOpaque(t *testing.T) {
	require.Equal(t, response.APIResponseCodeError, failCode(t, errors.New("boom")))
}

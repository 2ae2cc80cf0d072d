package helper

import (
	"testing"

	"github.com/LerianStudio/dweb-gateway/model"
	"github.com/stretchr/testify/assert"
)

// AssertResponse checks status and body of a buffered response
func AssertResponse(t *testing.T, res *model.Response, expectedStatus int, expectedBody string) {
	t.Helper()

	if !assert.NotNil(t, res, "response is nil") {
		return
	}

	assert.Equal(t, expectedStatus, res.StatusCode, "status code mismatch")
	assert.Equal(t, expectedBody, string(res.Body), "body mismatch")
}

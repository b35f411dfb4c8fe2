package view

import (
	"testing"

	"github.com/MKhiriev/cf-error-page/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderText(t *testing.T) {
	params := models.DefaultParams()
	params.CloudflareStatus.Location = "LHR"

	out := RenderText(NewPage(params, RequestInfo{Host: "example.com", Now: fixedNow, RayID: "0123456789abcdef"}))

	assert.Contains(t, out, "Internal server error")
	assert.Contains(t, out, "Error code 500")
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "LHR")
	assert.Contains(t, out, "There is an internal server error on Cloudflare's network.")
	assert.Contains(t, out, "Ray ID: 0123456789abcdef")
	assert.NotContains(t, out, "<p>")
}

func TestRenderText_HiddenMoreInformation(t *testing.T) {
	out := RenderText(NewPage(models.WorkingParams(), RequestInfo{Now: fixedNow}))

	assert.NotContains(t, out, "for more information")
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: "<p>Hello</p>", want: "Hello"},
		{in: "<p>a</p><p>b</p>", want: "a b"},
		{in: "<a href=\"x\">link</a>  text", want: "link text"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, stripMarkup(tt.in))
		})
	}
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "-", valueOrDash("  "))
	assert.Equal(t, "x", valueOrDash("x"))
}

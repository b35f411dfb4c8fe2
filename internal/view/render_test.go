package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/cf-error-page/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, params models.Params) string {
	t.Helper()

	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, NewPage(params, RequestInfo{Host: "example.com", Now: fixedNow, RayID: "0123456789abcdef"})))
	return buf.String()
}

func TestRenderer_Render_Default(t *testing.T) {
	html := renderPage(t, models.DefaultParams())

	assert.Contains(t, html, "<title>example.com | 500: Internal server error</title>")
	assert.Contains(t, html, "Error code 500")
	assert.Contains(t, html, "2026-03-14 08:26:53 UTC")
	assert.Contains(t, html, "<strong>0123456789abcdef</strong>")
	assert.Contains(t, html, "Your IP: 127.0.0.1")
	assert.Contains(t, html, `href="https://www.cloudflare.com"`)
	assert.Contains(t, html, `cf-error-source" data-source="cloudflare"`)
}

func TestRenderer_Render_MarkupBlocksUnescaped(t *testing.T) {
	html := renderPage(t, models.DefaultParams())

	assert.Contains(t, html, "<p>Please try again in a few minutes.</p>")
	assert.Contains(t, html, "<p>There is an internal server error on Cloudflare's network.</p>")
}

func TestRenderer_Render_TextEscaped(t *testing.T) {
	params := models.DefaultParams()
	params.Title = `<script>alert("x")</script>`

	html := renderPage(t, params)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderer_Render_HiddenMoreInformation(t *testing.T) {
	html := renderPage(t, models.WorkingParams())

	assert.NotContains(t, html, "for more information")
	assert.Contains(t, html, "Error code 200")
	assert.Contains(t, html, `cf-error-source" data-source="host"`)
}

func TestRenderer_Render_LocationOptional(t *testing.T) {
	html := renderPage(t, models.DefaultParams())
	assert.Equal(t, 1, strings.Count(html, `<div class="location">`), "only the browser column has a location by default")

	params := models.DefaultParams()
	params.CloudflareStatus.Location = "LHR"
	html = renderPage(t, params)
	assert.Contains(t, html, `<div class="location">LHR</div>`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderer_Render_WriteError(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	err = r.Render(failingWriter{}, NewPage(models.DefaultParams(), RequestInfo{}))
	assert.Error(t, err)
}

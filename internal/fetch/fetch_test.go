package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html>
<head><title>Acme Jobs</title><script>trackUser();</script></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
<h1>Senior Threat Researcher</h1>
<p>We need deep malware analysis and ransomware expertise.</p>
</div>
<footer>Copyright Acme</footer>
</body>
</html>`

func TestExtractJobText_PrefersJobContainer(t *testing.T) {
	text, err := ExtractJobText(postingHTML)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Threat Researcher")
	assert.Contains(t, text, "malware analysis")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright Acme")
	assert.NotContains(t, text, "trackUser")
}

func TestExtractJobText_FallsBackToBody(t *testing.T) {
	text, err := ExtractJobText("<html><body><p>plain posting text</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "plain posting text", text)
}

func TestExtractJobText_CollapsesBlankLines(t *testing.T) {
	text, err := ExtractJobText("<html><body><p>first</p>\n\n\n<p>second</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", text)
}

func TestJobPosting_FetchesAndExtracts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	result, err := JobPosting(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.Text, "ransomware expertise")
}

func TestJobPosting_InvalidURL(t *testing.T) {
	_, err := JobPosting(context.Background(), "not a url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
}

func TestJobPosting_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := JobPosting(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

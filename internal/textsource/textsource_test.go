package textsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/finstatement/internal/logging"
)

func TestFromFilePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	content := "CHASE CREDIT CARD STATEMENT\n01/15 STARBUCKS $5.75\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s := New(logging.NewMockLogger())
	assert.Equal(t, content, s.FromFile(path))
}

func TestFromFileMissingFile(t *testing.T) {
	log := logging.NewMockLogger()
	s := New(log)

	text := s.FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, ExtractionFailedSentinel, text)
	assert.True(t, log.HasEntry("WARN", "could not read statement file"))
}

func TestFromPDFUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o600))

	log := logging.NewMockLogger()
	s := New(log)

	text := s.FromFile(path)
	assert.Equal(t, ExtractionFailedSentinel, text)
	assert.True(t, log.HasEntry("WARN", "PDF text extraction failed"))
}

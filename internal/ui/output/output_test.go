package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/lnms-install/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_NoColorWritesPlainText(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := output.New(buf)
	styled := out.String("hello").Foreground(termenv.RGBColor("#FF0000")).Bold()

	_, err := out.WriteString(styled.String())
	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}

func TestNewWithProfile_UsesSelector(t *testing.T) {
	buf := &bytes.Buffer{}
	out := output.NewWithProfile(buf, func() termenv.Profile { return termenv.ANSI })

	assert.Equal(t, termenv.ANSI, out.Profile)
}

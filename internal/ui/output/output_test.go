package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/endotarter/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_NoColorWritesPlainText(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := output.New(buf)
	_, err := out.WriteString(out.String("nation_1").Foreground(termenv.RGBColor("#22A06B")).Bold().String())
	assert.NoError(t, err)
	assert.Equal(t, "nation_1", buf.String())
}

func TestNewWithProfile(t *testing.T) {
	buf := &bytes.Buffer{}
	out := output.NewWithProfile(buf, func() termenv.Profile { return termenv.ANSI })
	assert.Equal(t, termenv.ANSI, out.Profile)
}

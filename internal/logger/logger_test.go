package logger

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Level:   logrus.WarnLevel,
		Message: "column is not wide enough",
		Data:    Fields{"row": 2, "col": 1},
	}
	out, err := PlainFormatter{}.Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	got := string(out)
	if got != "W: column is not wide enough col=1 row=2\n" {
		t.Fatalf("Format = %q", got)
	}
}

func TestPlainFormatter_NoFields(t *testing.T) {
	entry := &logrus.Entry{
		Level:   logrus.ErrorLevel,
		Message: "boom",
	}
	out, err := PlainFormatter{}.Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if string(out) != "E: boom\n" {
		t.Fatalf("Format = %q", string(out))
	}
}

func TestNamed_AttachesComponent(t *testing.T) {
	entry := Named("planner")
	if entry.Data["component"] != "planner" {
		t.Fatalf("component = %v, want planner", entry.Data["component"])
	}
}

func TestPlainFormatter_WritesSingleLineThroughLogger(t *testing.T) {
	l := logrus.New()
	var sb strings.Builder
	l.SetOutput(&sb)
	l.SetFormatter(PlainFormatter{})
	l.Warnf("over-width line in column %d", 3)
	if got := sb.String(); got != "W: over-width line in column 3\n" {
		t.Fatalf("log output = %q", got)
	}
}

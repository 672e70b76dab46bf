package common

import (
	"bytes"
	"strings"
	"testing"

	_ "github.com/Adebola11/Smart-Home-Controller-Pro/pkg/testing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

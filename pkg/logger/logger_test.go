package logger

import "testing"

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Log == nil {
		t.Fatal("Log should never be nil")
	}
	// 默认记录器不应 panic
	Named("test").Info("hello")
}

func TestInitRejectsInvalidLevel(t *testing.T) {
	if err := Init(9, ""); err == nil {
		t.Error("Expected error for invalid log level")
	}
	if err := Init(-2, ""); err == nil {
		t.Error("Expected error for invalid log level")
	}
}

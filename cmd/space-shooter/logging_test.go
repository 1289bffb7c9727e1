package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer func() {
		log.SetOutput(io.Discard)
		logFile.Close()
	}()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Expected log file to be created")
	}

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_AppendsAcrossSessions(t *testing.T) {
	t.Chdir(t.TempDir())
	logPath := filepath.Join(logDir, logFileName)

	first := setupLogging(true)
	log.Println("first session")
	first.Close()
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	size := info.Size()

	second := setupLogging(true)
	log.Println("second session")
	second.Close()
	log.SetOutput(io.Discard)

	info, err = os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() <= size {
		t.Errorf("Expected log to grow, size %d -> %d", size, info.Size())
	}
}

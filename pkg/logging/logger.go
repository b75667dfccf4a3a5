package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	debugLog *log.Logger
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger

	debugEnabled bool
)

// Init sets up the leveled loggers. Output goes to stdout/stderr plus a
// size-rotated file under logDir.
func Init(logDir string, debug bool) {
	if logDir == "" {
		logDir = "logs"
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "intervia.log"),
		MaxSize:    20, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}

	outWriter := io.MultiWriter(os.Stdout, fileWriter)
	errWriter := io.MultiWriter(os.Stderr, fileWriter)

	debugLog = log.New(outWriter, "DEBUG: ", log.Ldate|log.Ltime)
	infoLog = log.New(outWriter, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(outWriter, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(errWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	debugEnabled = debug

	// Redirect Go's default logger as well.
	log.SetOutput(outWriter)
}

func Debug(format string, v ...interface{}) {
	if debugEnabled && debugLog != nil {
		debugLog.Printf(format, v...)
	}
}

func Info(format string, v ...interface{}) {
	if infoLog == nil {
		log.Printf(format, v...)
		return
	}
	infoLog.Printf(format, v...)
}

func Warn(format string, v ...interface{}) {
	if warnLog == nil {
		log.Printf(format, v...)
		return
	}
	warnLog.Printf(format, v...)
}

func Error(format string, v ...interface{}) {
	if errorLog == nil {
		log.Printf(format, v...)
		return
	}
	errorLog.Printf(format, v...)
}

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger provides TUI-safe logging functionality
type Logger struct {
	fileLogger  *log.Logger
	eventLogger *log.Logger
	logFile     *os.File
	eventFile   *os.File
	mu          sync.Mutex
}

// Init initializes the global logger instance, writing into dir
func Init(dir string) error {
	var err error
	once.Do(func() {
		instance, err = newLogger(dir)
	})
	return err
}

// newLogger creates a new logger instance
func newLogger(dir string) (*Logger, error) {
	if dir == "" {
		dir = "logs"
	}

	// Create logs directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Open main log file
	logPath := filepath.Join(dir, "kanacombo.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Open event log file
	eventPath := filepath.Join(dir, "events.log")
	eventFile, err := os.OpenFile(eventPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to open event log file: %w", err)
	}

	return &Logger{
		fileLogger:  log.New(logFile, "", log.LstdFlags|log.Lshortfile),
		eventLogger: log.New(eventFile, "", log.LstdFlags|log.Lmicroseconds),
		logFile:     logFile,
		eventFile:   eventFile,
	}, nil
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if instance != nil {
		instance.log("INFO", format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if instance != nil {
		instance.log("ERROR", format, args...)
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if instance != nil {
		instance.log("DEBUG", format, args...)
	}
}

// Event logs a control event or effect to the dedicated event log file
func Event(name string, data interface{}) {
	if instance != nil {
		instance.eventLog(name, data)
	}
}

// log writes a formatted message to the main log file
func (l *Logger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	l.fileLogger.Output(3, fmt.Sprintf("[%s] %s", level, message))
}

// eventLog writes event data to the event log file
func (l *Logger) eventLog(name string, data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.eventLogger.Printf("[%s] %+v", name, data)
}

// Close closes both log files
func Close() error {
	if instance != nil {
		var err1, err2 error
		if instance.logFile != nil {
			err1 = instance.logFile.Close()
		}
		if instance.eventFile != nil {
			err2 = instance.eventFile.Close()
		}
		if err1 != nil {
			return err1
		}
		return err2
	}
	return nil
}

// SetOutput allows changing the output destination (useful for testing)
func SetOutput(w io.Writer) {
	if instance != nil {
		instance.mu.Lock()
		defer instance.mu.Unlock()
		instance.fileLogger.SetOutput(w)
		instance.eventLogger.SetOutput(w)
	}
}

package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// sensitiveHeaderPatterns contains regex patterns for headers that must be
// redacted before logging
var sensitiveHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)authorization`),
	regexp.MustCompile(`(?i)api[-_]?key`),
	regexp.MustCompile(`(?i)bearer`),
	regexp.MustCompile(`(?i)cookie`),
	regexp.MustCompile(`(?i)session`),
}

// LoggerConfig holds configuration for the logger middleware
type LoggerConfig struct {
	Format string // "json" or "pretty"
	Level  string // "debug" logs request bodies, anything else does not
}

// LogEntry represents a structured request log entry
type LogEntry struct {
	Timestamp   string            `json:"timestamp"`
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	StatusCode  int               `json:"status_code"`
	Latency     string            `json:"latency"`
	ClientIP    string            `json:"client_ip"`
	Headers     map[string]string `json:"headers,omitempty"`
	RequestBody interface{}       `json:"request_body,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// RequestResponseLogger creates a middleware that logs every API request
// with its status and latency. At debug level the request body is logged
// too, with sensitive headers redacted.
func RequestResponseLogger(config LoggerConfig) gin.HandlerFunc {
	debug := config.Level == "debug"

	return func(c *gin.Context) {
		startTime := time.Now()

		var requestBody []byte
		if debug && c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			// Restore the body for the next handler
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		entry := LogEntry{
			Timestamp:  time.Now().Format(time.RFC3339),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Latency:    time.Since(startTime).String(),
			ClientIP:   c.ClientIP(),
		}

		if debug {
			entry.Headers = redactHeaders(c.Request.Header)
			if len(requestBody) > 0 {
				entry.RequestBody = parseBody(requestBody)
			}
		}

		if len(c.Errors) > 0 {
			entry.Error = c.Errors.String()
		}

		if config.Format == "pretty" {
			printPrettyLog(entry)
		} else {
			printJSONLog(entry)
		}
	}
}

// redactHeaders redacts sensitive headers
func redactHeaders(headers map[string][]string) map[string]string {
	redacted := make(map[string]string)
	for key, values := range headers {
		if isSensitiveHeader(key) {
			redacted[key] = "[REDACTED]"
		} else {
			redacted[key] = strings.Join(values, ", ")
		}
	}
	return redacted
}

// isSensitiveHeader checks if a header name is sensitive
func isSensitiveHeader(headerName string) bool {
	for _, pattern := range sensitiveHeaderPatterns {
		if pattern.MatchString(headerName) {
			return true
		}
	}
	return false
}

// parseBody parses a JSON body for structured logging, falling back to a
// truncated string for non-JSON payloads
func parseBody(body []byte) interface{} {
	var jsonBody interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		bodyStr := string(body)
		if len(bodyStr) > 1000 {
			bodyStr = bodyStr[:1000] + "... (truncated)"
		}
		return bodyStr
	}
	return jsonBody
}

// printJSONLog outputs the log entry as JSON
func printJSONLog(entry LogEntry) {
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		fmt.Printf(`{"error": "failed to marshal log entry: %v"}%s`, err, "\n")
		return
	}
	fmt.Println(string(jsonBytes))
}

// printPrettyLog outputs the log entry in a human-readable format
func printPrettyLog(entry LogEntry) {
	fmt.Printf("[%s] %s %s -> %d (%s) from %s\n",
		entry.Timestamp, entry.Method, entry.Path,
		entry.StatusCode, entry.Latency, entry.ClientIP)

	if entry.RequestBody != nil {
		fmt.Printf("  body: %v\n", entry.RequestBody)
	}
	if entry.Error != "" {
		fmt.Printf("  error: %s\n", entry.Error)
	}
}

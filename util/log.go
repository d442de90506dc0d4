// Copyright 2016, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"log"
)

// Severity is an RFC 5424-style log severity level
type Severity int

// Log severities, most to least severe
const (
	EMERGENCY Severity = iota
	ALERT
	CRITICAL
	ERROR
	WARNING
	NOTICE
	INFO
	DEBUG
)

var severityNames = map[Severity]string{
	EMERGENCY: "EMERGENCY",
	ALERT:     "ALERT",
	CRITICAL:  "CRITICAL",
	ERROR:     "ERROR",
	WARNING:   "WARNING",
	NOTICE:    "NOTICE",
	INFO:      "INFO",
	DEBUG:     "DEBUG",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SEVERITY(%d)", int(s))
}

// LogContext is the context for a log message
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for operations with no richer context
type BasicLogContext struct {
	sessionID string
}

// AppName returns an empty string
func (c *BasicLogContext) AppName() string {
	return ""
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// LogAuditInput is the set of inputs for an audit log message
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

func writeLog(context LogContext, severity Severity, message string) {
	appName := context.AppName()
	if appName == "" {
		appName = "-"
	}
	log.Printf("%s [%s] (%s) %s", severity, appName, context.SessionID(), message)
}

// LogInfo logs an informational message
func LogInfo(context LogContext, message string) {
	writeLog(context, INFO, message)
}

// LogAlert logs a message that needs operator attention
func LogAlert(context LogContext, message string) {
	writeLog(context, ALERT, message)
}

// LogSimpleErr logs a message with its underlying error and returns an
// error containing both, suitable for returning up the call stack
func LogSimpleErr(context LogContext, message string, err error) error {
	result := Error{LogMsg: message, SimpleMsg: message}
	if err != nil {
		result.LogMsg = message + " " + err.Error()
	}
	writeLog(context, ERROR, result.LogMsg)
	return result
}

// LogAudit logs an auditable actor/action/actee event
func LogAudit(context LogContext, input LogAuditInput) {
	writeLog(context, input.Severity, fmt.Sprintf("[audit] actor: %s, action: %s, actee: %s :: %s", input.Actor, input.Action, input.Actee, input.Message))
}

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
	"net/http"
)

// Error is a general error container distinguishing the message that is
// logged from the simpler message surfaced to API consumers
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Response   string
	URL        string
	HTTPStatus int
}

func (err Error) Error() string {
	if err.SimpleMsg != "" {
		return err.SimpleMsg
	}
	return err.LogMsg
}

// Log writes the full error detail to the log, with an optional message
// prefix, and returns the error for further propagation
func (err Error) Log(context LogContext, prefix string) error {
	message := err.LogMsg
	if prefix != "" {
		message = prefix + ": " + message
	}
	if err.URL != "" {
		message += fmt.Sprintf("\nURL: %s", err.URL)
	}
	if err.HTTPStatus != 0 {
		message += fmt.Sprintf("\nHTTP Status: %d", err.HTTPStatus)
	}
	if err.Response != "" {
		message += fmt.Sprintf("\nResponse: %s", err.Response)
	}
	writeLog(context, ERROR, message)
	return err
}

// HTTPError writes an error response to the client and logs it
func HTTPError(request *http.Request, writer http.ResponseWriter, context LogContext, message string, status int) {
	if message == "" {
		message = http.StatusText(status)
	}
	LogAudit(context, LogAuditInput{Actor: "util/HTTPError", Action: "response", Actee: request.URL.String(), Message: message, Severity: ERROR})
	http.Error(writer, message, status)
}

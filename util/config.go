// Copyright 2018, RadiantBlue Technologies, Inc.
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
	"os"
	"strconv"
	"time"
)

// Environment variables
const (
	SENTINEL_HOST      = "SENTINEL_HOST"
	SENTINEL_SAS_TOKEN = "SENTINEL_SAS_TOKEN"
	HTTP_TIMEOUT_SEC   = "HTTP_TIMEOUT_SEC"
)

const defaultHTTPTimeout = 60 * time.Second

// GetSentinelHost returns a string for the SENTINEL_HOST environment variable
func GetSentinelHost() string {
	sentinelHost, ok := os.LookupEnv(SENTINEL_HOST)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get Sentinel Host URL from the environment. Relative archive hrefs will not resolve.")
	}
	return sentinelHost
}

// GetSentinelSASToken returns the shared access token to append to remote
// archive hrefs, or an empty string if none is configured
func GetSentinelSASToken() string {
	return os.Getenv(SENTINEL_SAS_TOKEN)
}

// GetHTTPTimeout returns the configured timeout for outbound HTTP requests,
// falling back to a default when unset or unparseable
func GetHTTPTimeout() time.Duration {
	timeoutStr, ok := os.LookupEnv(HTTP_TIMEOUT_SEC)
	if !ok {
		return defaultHTTPTimeout
	}
	seconds, err := strconv.Atoi(timeoutStr)
	if err != nil || seconds <= 0 {
		LogAlert(&BasicLogContext{}, "Invalid "+HTTP_TIMEOUT_SEC+" value: "+timeoutStr)
		return defaultHTTPTimeout
	}
	return time.Duration(seconds) * time.Second
}

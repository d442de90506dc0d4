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
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
)

var (
	httpClient     *http.Client
	httpClientOnce sync.Once
)

// HTTPClient returns the shared HTTP client for outbound requests
func HTTPClient() *http.Client {
	httpClientOnce.Do(func() {
		httpClient = &http.Client{Timeout: GetHTTPTimeout()}
	})
	return httpClient
}

// ReadHrefBytes reads the full contents of an href. Hrefs with an http or
// https scheme are fetched with the shared client; anything else is treated
// as a local file path.
func ReadHrefBytes(context LogContext, href string) ([]byte, error) {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		response, err := HTTPClient().Get(href)
		if err != nil {
			return nil, LogSimpleErr(context, fmt.Sprintf("Failed to fetch %v.", href), err)
		}
		defer response.Body.Close()
		if response.StatusCode != http.StatusOK {
			fetchErr := Error{
				LogMsg:     fmt.Sprintf("Failed to fetch %v.", href),
				SimpleMsg:  fmt.Sprintf("Failed to fetch %v: %v.", href, response.Status),
				URL:        href,
				HTTPStatus: response.StatusCode,
			}
			return nil, fetchErr.Log(context, "")
		}
		return io.ReadAll(response.Body)
	}

	data, err := os.ReadFile(href)
	if err != nil {
		return nil, LogSimpleErr(context, fmt.Sprintf("Failed to read %v.", href), err)
	}
	return data, nil
}
